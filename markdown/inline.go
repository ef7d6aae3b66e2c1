package markdown

import (
	"regexp"
	"strings"
)

// inlineSpecials are the characters that can open an inline rule.
const inlineSpecials = "`*_~!["

type inlineRule struct {
	pattern *regexp.Regexp
	build   func(m []string) Inline
}

// inlineRules are tried in order against the start of the unconsumed suffix.
// The first match wins, regardless of length.
var inlineRules = []inlineRule{
	{
		regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]*)\)`),
		func(m []string) Inline { return Image{Alt: m[1], Src: m[2]} },
	},
	{
		regexp.MustCompile(`^\[([^\]]*)\]\(([^)]*)\)`),
		func(m []string) Inline { return Link{Text: m[1], Href: m[2]} },
	},
	{
		regexp.MustCompile("^`([^`]+)`"),
		func(m []string) Inline { return Code(m[1]) },
	},
	{
		regexp.MustCompile(`^(?:\*\*([^*_]+)\*\*|__([^*_]+)__)`),
		func(m []string) Inline { return Bold(m[1] + m[2]) },
	},
	{
		regexp.MustCompile(`^(?:\*([^*_]+)\*|_([^*_]+)_)`),
		func(m []string) Inline { return Italic(m[1] + m[2]) },
	},
	{
		regexp.MustCompile(`^~~([^~]+)~~`),
		func(m []string) Inline { return Strike(m[1]) },
	},
}

// parseInline tokenizes a logical text string into inline nodes. The result
// always holds at least one node, and never two adjacent text nodes. Every
// iteration consumes at least one character, so the loop terminates for any
// input.
func parseInline(text string) []Inline {
	if text == "" {
		return []Inline{Text("")}
	}

	var tokens []Inline
	rest := text
	for rest != "" {
		if tok, width := matchInline(rest); tok != nil {
			tokens = append(tokens, tok)
			rest = rest[width:]
			continue
		}

		idx := strings.IndexAny(rest, inlineSpecials)
		switch {
		case idx < 0:
			tokens = append(tokens, Text(rest))
			rest = ""
		case idx == 0:
			// An unpaired special: emit it alone to guarantee progress.
			tokens = append(tokens, Text(rest[:1]))
			rest = rest[1:]
		default:
			tokens = append(tokens, Text(rest[:idx]))
			rest = rest[idx:]
		}
	}
	return mergeText(tokens)
}

func matchInline(s string) (Inline, int) {
	for _, rule := range inlineRules {
		if m := rule.pattern.FindStringSubmatch(s); m != nil {
			return rule.build(m), len(m[0])
		}
	}
	return nil, 0
}

// mergeText collapses consecutive text tokens into one. This also folds the
// single-character fallback fragments back together.
func mergeText(tokens []Inline) []Inline {
	merged := make([]Inline, 0, len(tokens))
	for _, tok := range tokens {
		if t, ok := tok.(Text); ok && len(merged) > 0 {
			if prev, ok := merged[len(merged)-1].(Text); ok {
				merged[len(merged)-1] = prev + t
				continue
			}
		}
		merged = append(merged, tok)
	}
	return merged
}
