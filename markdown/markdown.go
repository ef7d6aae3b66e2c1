// Package markdown parses a small markdown subset into a typed node tree
// suitable for declarative rendering. The parser runs in two phases: a block
// scanner walks the input line by line, and each block that carries text
// hands it to the inline tokenizer for its children.
//
// Parsing is total: any input produces some tree, never an error or panic.
// Nodes are immutable after construction and every invocation owns its own
// state, so Parse is safe for concurrent use.
package markdown

import "strings"

// Block is a structural unit of the document.
type Block interface{ block() }

// Inline is a span-level unit within a block's text.
type Inline interface{ inline() }

// Document is an ordered sequence of blocks.
type Document []Block

type Heading struct {
	Level    int
	Children []Inline
}

type Paragraph struct {
	Children []Inline
}

// Rule is a horizontal rule.
type Rule struct{}

// CodeBlock content is verbatim: fenced lines joined by \n, never
// inline-parsed.
type CodeBlock struct {
	Language string
	Content  string
}

type Blockquote struct {
	Children []Inline
}

type List struct {
	Ordered bool
	Items   []ListItem
}

// ListItem optionally carries one nested list, always of the opposite
// orderedness of its parent. Nesting stops there.
type ListItem struct {
	Children []Inline
	Nested   *List
}

func (Heading) block()    {}
func (Paragraph) block()  {}
func (Rule) block()       {}
func (CodeBlock) block()  {}
func (Blockquote) block() {}
func (List) block()       {}

type (
	Text   string
	Bold   string
	Italic string
	Strike string
	Code   string
)

type Link struct {
	Text string
	Href string
}

type Image struct {
	Alt string
	Src string
}

func (Text) inline()   {}
func (Bold) inline()   {}
func (Italic) inline() {}
func (Strike) inline() {}
func (Code) inline()   {}
func (Link) inline()   {}
func (Image) inline()  {}

// Parse converts raw text into a document. Lines are split on \n; blocks are
// classified in order until the input is exhausted. The empty string yields
// an empty document.
func Parse(text string) Document {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var doc Document
	for i := 0; i < len(lines); {
		block, consumed := scanBlock(lines, i)
		if block != nil {
			doc = append(doc, block)
		}
		i += consumed
	}
	return doc
}
