package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nexvx/md2wxml/markdown"
	"github.com/nexvx/md2wxml/wxml"
)

var (
	checkOutput bool
	printStats  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render markdown as WXML markup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		doc := markdown.Parse(string(data))
		if debug {
			pp.Fprintln(cmd.ErrOrStderr(), doc)
		}

		var output string
		switch cfg.OutputFormat {
		case "", "wxml":
			renderer := wxml.NewRenderer(wxml.Options{
				ClassPrefix:  cfg.ClassPrefix,
				LinkHandler:  cfg.LinkHandler,
				ImageHandler: cfg.ImageHandler,
			})
			output = renderer.Render(doc)
			if checkOutput {
				if err := wxml.Validate(output); err != nil {
					return errors.Wrap(err, "produced markup failed validation")
				}
			}

		case "json":
			raw, err := json.Marshal(doc)
			if err != nil {
				return errors.Wrap(err, "could not encode tree")
			}
			output = string(raw) + "\n"

		default:
			return errors.Errorf("invalid output_format %q (expected wxml or json)", cfg.OutputFormat)
		}

		if printStats {
			fmt.Fprintf(cmd.ErrOrStderr(), "input: %s, blocks: %s, output: %s\n",
				humanize.Bytes(uint64(len(data))),
				humanize.Comma(int64(len(doc))),
				humanize.Bytes(uint64(len(output))))
		}

		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&checkOutput, "check", false, "Validate the produced markup before printing it")
	renderCmd.Flags().BoolVar(&printStats, "stats", false, "Print input and node statistics to stderr")
}
