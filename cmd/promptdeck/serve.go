package main

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronwr/promptdeck/internal/backup"
	"github.com/aaronwr/promptdeck/internal/config"
	"github.com/aaronwr/promptdeck/internal/handler"
	"github.com/aaronwr/promptdeck/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return err
			}

			elements := store.NewElementStore(cfg.DataDir)
			history := store.NewHistoryStore(cfg.DataDir, cfg.Location)

			// Touch both stores once at startup so the CSV files exist
			// with the canonical schema before any request arrives.
			rows, err := elements.Load()
			if err != nil {
				return err
			}
			if _, err := history.List(); err != nil {
				return err
			}
			log.Printf("loaded %d elements from %s", len(rows), cfg.DataDir)

			if cfg.Backup.Enabled {
				runner := backup.New(cfg.DataDir, cfg.Backup.Dir, cfg.Backup.Keep)
				if err := runner.Start(cfg.Backup.Schedule); err != nil {
					return err
				}
				defer runner.Stop()
			}

			router := handler.NewRouter(handler.Deps{
				Elements: elements,
				History:  history,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
