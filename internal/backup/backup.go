// Package backup takes scheduled snapshot copies of the CSV data files.
package backup

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/aaronwr/promptdeck/internal/metrics"
	"github.com/aaronwr/promptdeck/internal/store"
)

// Runner copies the element and history CSV files into a backup directory
// on a cron schedule and prunes old snapshots per source file.
type Runner struct {
	dataDir string
	dir     string
	keep    int
	cron    *cron.Cron
}

// New creates a Runner that snapshots the CSVs under dataDir into dir,
// keeping at most keep snapshots per file.
func New(dataDir, dir string, keep int) *Runner {
	return &Runner{dataDir: dataDir, dir: dir, keep: keep, cron: cron.New()}
}

// Start schedules Run on the given cron expression (standard five fields)
// and starts the scheduler.
func (r *Runner) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, func() {
		if err := r.Run(); err != nil {
			metrics.BackupsTotal.WithLabelValues("error").Inc()
			log.Printf("backup: %v", err)
			return
		}
		metrics.BackupsTotal.WithLabelValues("ok").Inc()
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	r.cron.Start()
	log.Printf("backup: scheduled %q into %s (keep %d)", schedule, r.dir, r.keep)
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}

// Run takes one snapshot pass. Source files that do not exist yet are
// skipped silently.
func (r *Runner) Run() error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	for _, name := range []string{store.ElementsFile, store.HistoryFile} {
		src := filepath.Join(r.dataDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}

		base := strings.TrimSuffix(name, ".csv")
		dst := filepath.Join(r.dir, fmt.Sprintf("%s-%s-%s.csv", base, stamp, uuid.New().String()[:8]))
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("snapshot %s: %w", name, err)
		}
		if err := r.prune(base); err != nil {
			return fmt.Errorf("prune %s: %w", base, err)
		}
	}
	return nil
}

// prune deletes the oldest snapshots of one source file beyond the keep
// limit. Snapshot names embed a UTC timestamp, so lexicographic order is
// chronological.
func (r *Runner) prune(base string) error {
	matches, err := filepath.Glob(filepath.Join(r.dir, base+"-*.csv"))
	if err != nil {
		return err
	}
	if len(matches) <= r.keep {
		return nil
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-r.keep] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
