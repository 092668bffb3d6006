package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aaronwr/promptdeck/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("promptdeck %s (%s, %s)\n", build.Version, build.Commit, build.Branch)
		},
	}
}
