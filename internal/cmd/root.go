// Package cmd implements the md2wxml command tree.
package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nexvx/md2wxml/internal/config"
)

var (
	configFile string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "md2wxml",
	Short: "Convert a markdown subset to WXML",
	Long: `md2wxml parses a small markdown subset into a typed node tree and
renders it as WXML markup for declarative mini-program templates, or prints
the tree itself as JSON.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/md2wxml/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump the parsed node tree to stderr")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(tapCmd)
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

// readInput reads the file named by the first argument, or stdin when no
// argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		return data, errors.Wrap(err, "could not read input")
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	return data, errors.Wrap(err, "could not read stdin")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
