package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronwr/promptdeck/internal/config"
	"github.com/aaronwr/promptdeck/internal/store"
)

func newElementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Export or bulk-import the element library",
	}
	cmd.AddCommand(newElementsExportCmd())
	cmd.AddCommand(newElementsImportCmd())
	return cmd
}

func newElementsExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the elements CSV to stdout or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return store.NewElementStore(cfg.DataDir).ExportCSV(out)
		},
	}

	cmd.Flags().StringVar(&outputPath, "output", "", "Write CSV to a file (default: stdout)")
	return cmd
}

func newElementsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Replace the element library with an external CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			r := csv.NewReader(f)
			r.FieldsPerRecord = -1
			records, err := r.ReadAll()
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if len(records) == 0 {
				return store.ErrMissingColumns
			}

			if err := store.NewElementStore(cfg.DataDir).ReplaceAll(records[0], records[1:]); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "imported %d rows\n", len(records)-1)
			return nil
		},
	}
}
