package main

import (
	"os"

	"github.com/nexvx/md2wxml/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
