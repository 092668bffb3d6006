package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaronwr/promptdeck/internal/assemble"
	"github.com/aaronwr/promptdeck/internal/config"
	"github.com/aaronwr/promptdeck/internal/store"
)

// selectionFile is the JSON shape read by the assemble command, mirroring
// the POST /api/v1/assemble request body.
type selectionFile struct {
	Sections          assemble.Selection `json:"sections"`
	RecursiveFeedback bool               `json:"recursive_feedback"`
}

func newAssembleCmd() *cobra.Command {
	var (
		requestPath string
		outputPath  string
		saveName    string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a prompt from a JSON selection file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if requestPath == "" {
				return fmt.Errorf("--request is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			reqBytes, err := os.ReadFile(requestPath)
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			var req selectionFile
			if err := json.Unmarshal(reqBytes, &req); err != nil {
				return fmt.Errorf("parse request: %w", err)
			}

			elements, err := store.NewElementStore(cfg.DataDir).Load()
			if err != nil {
				return err
			}

			out := assemble.Assemble(req.Sections, elements, req.RecursiveFeedback)

			if outputPath == "" {
				fmt.Println(out)
			} else if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if saveName != "" {
				if strings.TrimSpace(out) == "" {
					return fmt.Errorf("refusing to save an empty prompt")
				}
				history := store.NewHistoryStore(cfg.DataDir, cfg.Location)
				rec, err := history.Append(strings.TrimSpace(saveName), strings.TrimSpace(out))
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "saved %q at %s\n", rec.Name, rec.Timestamp)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&requestPath, "request", "", "Path to JSON selection file")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the prompt to a file (default: stdout)")
	cmd.Flags().StringVar(&saveName, "save", "", "Also save the prompt to history under this name")
	return cmd
}
