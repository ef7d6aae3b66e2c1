package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInline(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Inline
	}{
		{
			name:  "empty input yields one empty text node",
			input: "",
			want:  []Inline{Text("")},
		},
		{
			name:  "plain text",
			input: "just words",
			want:  []Inline{Text("just words")},
		},
		{
			name:  "bold asterisks",
			input: "**strong**",
			want:  []Inline{Bold("strong")},
		},
		{
			name:  "bold underscores",
			input: "__strong__",
			want:  []Inline{Bold("strong")},
		},
		{
			name:  "italic asterisk",
			input: "*slanted*",
			want:  []Inline{Italic("slanted")},
		},
		{
			name:  "italic underscore",
			input: "_slanted_",
			want:  []Inline{Italic("slanted")},
		},
		{
			name:  "strike",
			input: "~~gone~~",
			want:  []Inline{Strike("gone")},
		},
		{
			name:  "inline code",
			input: "`x := 1`",
			want:  []Inline{Code("x := 1")},
		},
		{
			name:  "link",
			input: "[docs](https://example.com)",
			want:  []Inline{Link{Text: "docs", Href: "https://example.com"}},
		},
		{
			name:  "image",
			input: "![alt text](https://example.com/a.png)",
			want:  []Inline{Image{Alt: "alt text", Src: "https://example.com/a.png"}},
		},
		{
			name:  "image wins over link",
			input: "![a](b)[c](d)",
			want: []Inline{
				Image{Alt: "a", Src: "b"},
				Link{Text: "c", Href: "d"},
			},
		},
		{
			name:  "mixed runs",
			input: "see **bold** and `code` here",
			want: []Inline{
				Text("see "),
				Bold("bold"),
				Text(" and "),
				Code("code"),
				Text(" here"),
			},
		},
		{
			name:  "unpaired asterisk falls back to text",
			input: "a * b",
			want:  []Inline{Text("a * b")},
		},
		{
			name:  "unpaired delimiters merge into one text node",
			input: "*_~`![",
			want:  []Inline{Text("*_~`![")},
		},
		{
			name:  "bracket without closing paren stays literal",
			input: "[text] only",
			want:  []Inline{Text("[text] only")},
		},
		{
			name:  "code wins over emphasis inside",
			input: "`**not bold**`",
			want:  []Inline{Code("**not bold**")},
		},
		{
			name:  "empty link text and href",
			input: "[]()",
			want:  []Inline{Link{}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, parseInline(c.input))
		})
	}
}

// Golden behavior for overlapping emphasis: determined by rule priority, not
// CommonMark semantics. Pinned so it cannot drift.
func TestParseInline_OverlappingEmphasis(t *testing.T) {
	want := []Inline{Italic("a"), Italic("b"), Text("c*")}
	assert.Equal(t, want, parseInline("*a**b*c*"))
}

func TestParseInline_NoAdjacentText(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"*_~`![ loose specials ] * _",
		"a*b*c*d",
		"**x** *y* ~~z~~",
		"![i](s)[l](h)`c`",
		"* * * not a rule here",
	}

	for _, input := range inputs {
		tokens := parseInline(input)
		if len(tokens) == 0 {
			t.Errorf("no tokens for %q", input)
			continue
		}
		for i := 1; i < len(tokens); i++ {
			_, prevText := tokens[i-1].(Text)
			_, curText := tokens[i].(Text)
			if prevText && curText {
				t.Errorf("adjacent text nodes at %d for %q: %#v", i, input, tokens)
			}
		}
	}
}

// Stripping markup must preserve the visible text: concatenating every
// token's payload (label for links, alt for images) reconstructs the input
// minus delimiters, with nothing dropped or duplicated.
func TestParseInline_VisibleTextCoverage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"**bold** rest", "bold rest"},
		{"a __b__ c _d_ e", "a b c d e"},
		{"~~strike~~ and `code`", "strike and code"},
		{"[label](href) tail", "label tail"},
		{"![alt](src) tail", "alt tail"},
		{"a * b", "a * b"},
	}

	for _, c := range cases {
		var got string
		for _, tok := range parseInline(c.input) {
			switch v := tok.(type) {
			case Text:
				got += string(v)
			case Bold:
				got += string(v)
			case Italic:
				got += string(v)
			case Strike:
				got += string(v)
			case Code:
				got += string(v)
			case Link:
				got += v.Text
			case Image:
				got += v.Alt
			}
		}
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}
