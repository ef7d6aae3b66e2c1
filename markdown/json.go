package markdown

import "encoding/json"

// Every node marshals to a "type"-tagged object so the tree can be handed to
// a data-driven template or filtered with jq. Serialization is one-way: the
// tree is always produced by parsing, never decoded back.

func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	blocks := make([]Block, len(d))
	copy(blocks, d)
	return json.Marshal(blocks)
}

func (h Heading) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Level    int      `json:"level"`
		Children []Inline `json:"children"`
	}{"heading", h.Level, h.Children})
}

func (p Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Children []Inline `json:"children"`
	}{"paragraph", p.Children})
}

func (Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"hr"})
}

func (c CodeBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Language string `json:"language"`
		Content  string `json:"content"`
	}{"codeblock", c.Language, c.Content})
}

func (b Blockquote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Children []Inline `json:"children"`
	}{"blockquote", b.Children})
}

func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Ordered bool       `json:"ordered"`
		Items   []ListItem `json:"items"`
	}{"list", l.Ordered, l.Items})
}

func (i ListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string   `json:"type"`
		Children []Inline `json:"children"`
		Nested   *List    `json:"nested,omitempty"`
	}{"item", i.Children, i.Nested})
}

func (t Text) MarshalJSON() ([]byte, error)   { return marshalSpan("text", string(t)) }
func (b Bold) MarshalJSON() ([]byte, error)   { return marshalSpan("bold", string(b)) }
func (i Italic) MarshalJSON() ([]byte, error) { return marshalSpan("italic", string(i)) }
func (s Strike) MarshalJSON() ([]byte, error) { return marshalSpan("strike", string(s)) }
func (c Code) MarshalJSON() ([]byte, error)   { return marshalSpan("code", string(c)) }

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
		Href string `json:"href"`
	}{"link", l.Text, l.Href})
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Alt  string `json:"alt"`
		Src  string `json:"src"`
	}{"image", i.Alt, i.Src})
}

func marshalSpan(kind, content string) ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{kind, content})
}
