package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nexvx/md2wxml/wxml"
)

var tapCmd = &cobra.Command{
	Use:   "tap <link|image> <payload>",
	Short: "Decide how a tap on a rendered node is handled",
	Long: `tap applies the configured routing to a link href or an image src
and prints the resulting action: navigate, copy, or preview. Hrefs matching
a configured nav_prefixes entry navigate inside the app; everything else is
copied to the clipboard. Image taps always open a preview.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		router := wxml.Router{NavPrefixes: cfg.NavPrefixes}

		var action wxml.Action
		switch args[0] {
		case "link":
			action = router.LinkTap(args[1])
		case "image":
			action = router.ImageTap(args[1])
		default:
			return errors.Errorf("unknown tap kind %q (expected link or image)", args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), action)
		return nil
	},
}
