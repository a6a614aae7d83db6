package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "callnotes-api",
		Short:        "Backend for the sales-training web suite",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newAnnotateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
