package wxml

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Validate tokenizes markup and reports the first structural problem: a
// stray end tag or an element left open. Rendered output is expected to
// always pass; the check backs the CLI --check flag and the renderer tests.
func Validate(markup string) error {
	z := html.NewTokenizer(strings.NewReader(markup))
	var open []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if err != io.EOF {
				return errors.Wrap(err, "could not tokenize markup")
			}
			if len(open) > 0 {
				return errors.Errorf("unclosed <%s>", open[len(open)-1])
			}
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			open = append(open, string(name))

		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 {
				return errors.Errorf("unexpected </%s>", name)
			}
			if open[len(open)-1] != string(name) {
				return errors.Errorf("expected </%s>, found </%s>", open[len(open)-1], name)
			}
			open = open[:len(open)-1]
		}
	}
}
