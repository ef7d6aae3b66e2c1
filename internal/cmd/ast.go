package cmd

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/itchyny/gojq"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nexvx/md2wxml/markdown"
)

var queryExpr string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed node tree as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		doc := markdown.Parse(string(data))
		if debug {
			pp.Fprintln(cmd.ErrOrStderr(), doc)
		}

		raw, err := json.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "could not encode tree")
		}

		if queryExpr != "" {
			return runQuery(cmd.OutOrStdout(), raw, queryExpr)
		}

		out := cmd.OutOrStdout()
		if isTerminal(out) {
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				return errors.Wrap(err, "could not format tree")
			}
			raw = pretty.Bytes()
		}
		raw = append(raw, '\n')
		_, err = out.Write(raw)
		return err
	},
}

func init() {
	astCmd.Flags().StringVar(&queryExpr, "query", "", "jq expression to filter the JSON tree")
}

// runQuery pipes the JSON tree through a jq expression and prints every
// result on its own line.
func runQuery(w io.Writer, raw []byte, expr string) error {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return errors.Wrap(err, "invalid --query")
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return errors.Wrap(err, "invalid --query")
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return errors.Wrap(err, "could not decode tree")
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	iter := code.Run(tree)
	for {
		v, ok := iter.Next()
		if !ok {
			return nil
		}
		if err, isErr := v.(error); isErr {
			return errors.Wrap(err, "query failed")
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
}
