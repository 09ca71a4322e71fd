package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "hosctl",
		Short:         "Normalize driver duty logs and print daily recaps offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSheetsCmd(), newRecapCmd(), newNormalizeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
