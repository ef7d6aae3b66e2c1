package markdown

import (
	"regexp"
	"strings"
)

const fence = "```"

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	rulePattern      = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
	orderedPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedPattern = regexp.MustCompile(`^[-*+]\s+(.*)$`)
)

// scanBlock classifies the run of lines starting at start and returns the
// resulting block plus the number of lines consumed (always at least 1).
// A nil block means the line produced nothing (a skipped blank line).
//
// Classification is first-match-wins on the trimmed line: fence, heading,
// horizontal rule, blockquote, list marker, then paragraph as the fallback.
func scanBlock(lines []string, start int) (Block, int) {
	line := lines[start]
	if line == "" {
		return nil, 1
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		// Whitespace-only lines keep their place as empty paragraphs.
		return Paragraph{Children: parseInline("")}, 1
	}

	if strings.HasPrefix(trimmed, fence) {
		return scanCodeBlock(lines, start)
	}
	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		return Heading{Level: len(m[1]), Children: parseInline(m[2])}, 1
	}
	if rulePattern.MatchString(trimmed) {
		return Rule{}, 1
	}
	if strings.HasPrefix(trimmed, ">") {
		return scanBlockquote(lines, start)
	}
	if orderedPattern.MatchString(trimmed) {
		return scanList(lines, start, true)
	}
	if unorderedPattern.MatchString(trimmed) {
		return scanList(lines, start, false)
	}

	// Paragraphs consume exactly one line; no multi-line joining.
	return Paragraph{Children: parseInline(trimmed)}, 1
}

// scanCodeBlock consumes everything between the opening fence and the next
// fence line, verbatim. An unterminated fence absorbs the rest of the input.
func scanCodeBlock(lines []string, start int) (Block, int) {
	opening := strings.TrimSpace(lines[start])
	language := strings.TrimSpace(strings.TrimPrefix(opening, fence))

	var content []string
	i := start + 1
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), fence) {
			i++ // closing fence is consumed but not kept
			break
		}
		content = append(content, lines[i])
		i++
	}
	return CodeBlock{Language: language, Content: strings.Join(content, "\n")}, i - start
}

// scanBlockquote consumes consecutive > lines. A blank line is kept as an
// empty body line when the quote resumes right after it, which allows
// multi-paragraph quotes.
func scanBlockquote(lines []string, start int) (Block, int) {
	var body []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, ">") {
			body = append(body, strings.TrimLeft(strings.TrimPrefix(trimmed, ">"), " \t"))
			i++
			continue
		}
		if trimmed == "" && i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), ">") {
			body = append(body, "")
			i++
			continue
		}
		break
	}
	return Blockquote{Children: parseInline(strings.Join(body, "\n"))}, i - start
}

// scanList collects items matching the marker family of the first line.
// After each item a run of opposite-marker lines becomes that item's nested
// list (one level only). A single blank line keeps the list alive when the
// next line still carries an active marker.
func scanList(lines []string, start int, ordered bool) (Block, int) {
	main, nested := unorderedPattern, orderedPattern
	if ordered {
		main, nested = orderedPattern, unorderedPattern
	}

	var items []ListItem
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if main.MatchString(next) || nested.MatchString(next) {
					i++
					continue
				}
			}
			break
		}

		m := main.FindStringSubmatch(trimmed)
		if m == nil {
			break
		}
		item := ListItem{Children: parseInline(m[1])}
		i = scanNestedList(lines, i+1, nested, &item, !ordered)
		items = append(items, item)
	}
	return List{Ordered: ordered, Items: items}, i - start
}

// scanNestedList attaches a run of opposite-marker lines to item. Nested
// items are never nested further.
func scanNestedList(lines []string, i int, marker *regexp.Regexp, item *ListItem, ordered bool) int {
	var sub []ListItem
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			if i+1 < len(lines) && marker.MatchString(strings.TrimSpace(lines[i+1])) {
				i++
				continue
			}
			break
		}
		m := marker.FindStringSubmatch(trimmed)
		if m == nil {
			break
		}
		sub = append(sub, ListItem{Children: parseInline(m[1])})
		i++
	}
	if len(sub) > 0 {
		item.Nested = &List{Ordered: ordered, Items: sub}
	}
	return i
}
