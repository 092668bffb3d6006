package store

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// HistoryFile is the name of the CSV file backing the prompt history.
const HistoryFile = "prompt_history.csv"

var historyColumns = []string{"name", "timestamp", "prompt"}

// PromptRecord is a saved, fully-assembled prompt. Records are append-only:
// the store never mutates or deletes them.
type PromptRecord struct {
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Prompt    string `json:"prompt"`
}

// HistoryStore persists assembled prompts to a CSV file. Timestamps are
// RFC 3339 in the single location given at construction; keeping the offset
// format consistent across writes is what makes the lexicographic timestamp
// sort below equivalent to chronological order.
type HistoryStore struct {
	path string
	loc  *time.Location
}

// NewHistoryStore creates a history store backed by prompt_history.csv
// under dataDir, stamping new records in loc.
func NewHistoryStore(dataDir string, loc *time.Location) *HistoryStore {
	return &HistoryStore{path: filepath.Join(dataDir, HistoryFile), loc: loc}
}

// Append stamps the current time and appends a record. Validation of name
// and prompt is the caller's responsibility.
func (s *HistoryStore) Append(name, prompt string) (PromptRecord, error) {
	t, err := s.load()
	if err != nil {
		return PromptRecord{}, err
	}

	rec := PromptRecord{
		Name:      name,
		Timestamp: time.Now().In(s.loc).Format(time.RFC3339),
		Prompt:    prompt,
	}
	t.rows = append(t.rows, []string{rec.Name, rec.Timestamp, rec.Prompt})
	if err := t.write(s.path); err != nil {
		return PromptRecord{}, err
	}
	return rec, nil
}

// List returns all records ordered by timestamp descending (newest first).
func (s *HistoryStore) List() ([]PromptRecord, error) {
	t, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]PromptRecord, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, PromptRecord{Name: row[0], Timestamp: row[1], Prompt: row[2]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out, nil
}

// Search returns the descending-ordered records whose name or prompt
// contains q, case-insensitively. An empty query returns everything.
func (s *HistoryStore) Search(q string) ([]PromptRecord, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return records, nil
	}

	out := make([]PromptRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Prompt), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *HistoryStore) load() (*table, error) {
	return loadTable(s.path, historyColumns)
}
