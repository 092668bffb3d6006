package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "promptdeck",
		Short: "A self-hosted prompt assembly tool",
		Long:  "Promptdeck keeps a reusable library of prompt elements and composes them into final prompts.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAssembleCmd())
	rootCmd.AddCommand(newElementsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
