// Package wxml renders markdown node trees as WXML markup and interprets
// the tap events raised by the rendered elements. Rendering is pure and
// deterministic; the side effects behind a tap (navigation, clipboard,
// preview) stay with the caller.
package wxml

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/nexvx/md2wxml/markdown"
)

const bullet = "•"

// Options control class naming and event binding in the produced markup.
// Zero values fall back to the defaults.
type Options struct {
	ClassPrefix  string // class prefix for every element, default "md"
	LinkHandler  string // bindtap handler for links, default "onLinkTap"
	ImageHandler string // bindtap handler for images, default "onImageTap"
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.ClassPrefix == "" {
		opts.ClassPrefix = "md"
	}
	if opts.LinkHandler == "" {
		opts.LinkHandler = "onLinkTap"
	}
	if opts.ImageHandler == "" {
		opts.ImageHandler = "onImageTap"
	}
	return &Renderer{opts: opts}
}

// Render walks the document and returns WXML markup, one top-level element
// per block, in document order.
func (r *Renderer) Render(doc markdown.Document) string {
	var b strings.Builder
	for _, block := range doc {
		r.renderBlock(&b, block)
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) renderBlock(b *strings.Builder, block markdown.Block) {
	switch v := block.(type) {
	case markdown.Heading:
		fmt.Fprintf(b, `<view class="%s %s">`,
			r.class("heading"), r.class("h"+strconv.Itoa(v.Level)))
		r.renderInlines(b, v.Children)
		b.WriteString("</view>")

	case markdown.Paragraph:
		fmt.Fprintf(b, `<view class="%s">`, r.class("paragraph"))
		r.renderInlines(b, v.Children)
		b.WriteString("</view>")

	case markdown.Rule:
		fmt.Fprintf(b, `<view class="%s"></view>`, r.class("hr"))

	case markdown.CodeBlock:
		classes := r.class("codeblock")
		if v.Language != "" {
			classes += " " + r.class("lang-"+v.Language)
		}
		fmt.Fprintf(b, `<view class="%s"><text space="nbsp">%s</text></view>`,
			classes, escape(v.Content))

	case markdown.Blockquote:
		fmt.Fprintf(b, `<view class="%s">`, r.class("blockquote"))
		r.renderInlines(b, v.Children)
		b.WriteString("</view>")

	case markdown.List:
		r.renderList(b, v)
	}
}

func (r *Renderer) renderList(b *strings.Builder, list markdown.List) {
	kind := "unordered"
	if list.Ordered {
		kind = "ordered"
	}
	fmt.Fprintf(b, `<view class="%s %s">`, r.class("list"), r.class(kind))
	for i, item := range list.Items {
		fmt.Fprintf(b, `<view class="%s">`, r.class("item"))
		fmt.Fprintf(b, `<text class="%s">%s</text>`, r.class("marker"), marker(list.Ordered, i))
		r.renderInlines(b, item.Children)
		if item.Nested != nil {
			r.renderList(b, *item.Nested)
		}
		b.WriteString("</view>")
	}
	b.WriteString("</view>")
}

func (r *Renderer) renderInlines(b *strings.Builder, nodes []markdown.Inline) {
	for _, node := range nodes {
		r.renderInline(b, node)
	}
}

func (r *Renderer) renderInline(b *strings.Builder, node markdown.Inline) {
	switch v := node.(type) {
	case markdown.Text:
		r.span(b, "text", string(v))
	case markdown.Bold:
		r.span(b, "bold", string(v))
	case markdown.Italic:
		r.span(b, "italic", string(v))
	case markdown.Strike:
		r.span(b, "strike", string(v))
	case markdown.Code:
		r.span(b, "code", string(v))
	case markdown.Link:
		fmt.Fprintf(b, `<text class="%s" data-href="%s" bindtap="%s">%s</text>`,
			r.class("link"), escape(v.Href), escape(r.opts.LinkHandler), escape(v.Text))
	case markdown.Image:
		fmt.Fprintf(b, `<image class="%s" src="%s" data-src="%s" alt="%s" bindtap="%s" mode="widthFix"></image>`,
			r.class("image"), escape(v.Src), escape(v.Src), escape(v.Alt), escape(r.opts.ImageHandler))
	}
}

func (r *Renderer) span(b *strings.Builder, kind, content string) {
	fmt.Fprintf(b, `<text class="%s">%s</text>`, r.class(kind), escape(content))
}

// class builds an attribute-safe class name; the prefix and, for code
// blocks, the language come from the outside.
func (r *Renderer) class(name string) string {
	return escape(r.opts.ClassPrefix + "-" + name)
}

func marker(ordered bool, index int) string {
	if ordered {
		return strconv.Itoa(index+1) + "."
	}
	return bullet
}

func escape(s string) string {
	return html.EscapeString(s)
}
