package store_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aaronwr/promptdeck/internal/store"
	"github.com/aaronwr/promptdeck/internal/testutil"
)

func TestElementStore_Load_CreatesFile(t *testing.T) {
	dir := testutil.NewDataDir(t)
	s := store.NewElementStore(dir)

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elements) != 0 {
		t.Fatalf("len = %d, want 0", len(elements))
	}

	raw := testutil.ReadFile(t, dir, store.ElementsFile)
	if raw != "title,type,content\n" {
		t.Errorf("new file = %q, want header only", raw)
	}
}

func TestElementStore_Load_RepairsSchema(t *testing.T) {
	dir := testutil.NewDataDir(t)
	testutil.WriteCSV(t, dir, store.ElementsFile, [][]string{
		{"title", "content"},
		{"Helpful Assistant", "You are a helpful assistant."},
	})

	s := store.NewElementStore(dir)
	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("len = %d, want 1", len(elements))
	}
	if elements[0].Title != "Helpful Assistant" || elements[0].Type != "" {
		t.Errorf("row = %+v, want preserved title and empty type", elements[0])
	}

	raw := testutil.ReadFile(t, dir, store.ElementsFile)
	if !strings.HasPrefix(raw, "title,type,content\n") {
		t.Errorf("repaired header = %q, want canonical order", raw)
	}
}

func TestElementStore_AddAndLoad(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	added, err := s.Add("  Helpful Assistant ", "role", " You are a helpful assistant.  ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.Title != "Helpful Assistant" {
		t.Errorf("title = %q, want trimmed", added.Title)
	}

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("len = %d, want 1", len(elements))
	}
	got := elements[0]
	if got.Title != "Helpful Assistant" || got.Type != "role" || got.Content != "You are a helpful assistant." {
		t.Errorf("loaded = %+v, want trimmed values", got)
	}
}

func TestElementStore_Add_Validation(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	if _, err := s.Add("   ", "role", "content"); !errors.Is(err, store.ErrTitleRequired) {
		t.Errorf("blank title: err = %v, want ErrTitleRequired", err)
	}
	if _, err := s.Add("Title", "role", " \t\n"); !errors.Is(err, store.ErrContentRequired) {
		t.Errorf("blank content: err = %v, want ErrContentRequired", err)
	}
	if _, err := s.Add("Title", "persona", "content"); !errors.Is(err, store.ErrInvalidType) {
		t.Errorf("unknown type: err = %v, want ErrInvalidType", err)
	}
}

func TestElementStore_Add_Duplicate(t *testing.T) {
	dir := testutil.NewDataDir(t)
	s := store.NewElementStore(dir)

	if _, err := s.Add("Concise", "tone", "Be concise."); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before := testutil.ReadFile(t, dir, store.ElementsFile)

	_, err := s.Add(" Concise ", "tone", "Different content.")
	if !errors.Is(err, store.ErrDuplicateElement) {
		t.Fatalf("duplicate Add: err = %v, want ErrDuplicateElement", err)
	}

	after := testutil.ReadFile(t, dir, store.ElementsFile)
	if before != after {
		t.Errorf("file changed on failed Add:\nbefore %q\nafter  %q", before, after)
	}
}

func TestElementStore_Add_SameTitleDifferentType(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	if _, err := s.Add("Concise", "tone", "Be concise."); err != nil {
		t.Fatalf("Add tone: %v", err)
	}
	if _, err := s.Add("Concise", "output", "Short bullet points."); err != nil {
		t.Fatalf("Add output with same title: %v", err)
	}
}

func TestElementStore_Update(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))
	seed := []store.Element{
		{Title: "A", Type: "role", Content: "a"},
		{Title: "B", Type: "goal", Content: "b"},
		{Title: "C", Type: "tone", Content: "c"},
	}
	for _, e := range seed {
		if _, err := s.Add(e.Title, e.Type, e.Content); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if _, err := s.Update(1, " B2 ", "goal", " updated "); err != nil {
		t.Fatalf("Update: %v", err)
	}

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []store.Element{
		{Title: "A", Type: "role", Content: "a"},
		{Title: "B2", Type: "goal", Content: "updated"},
		{Title: "C", Type: "tone", Content: "c"},
	}
	for i, w := range want {
		if elements[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, elements[i], w)
		}
	}
}

func TestElementStore_Update_OutOfRange(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	if _, err := s.Update(0, "T", "role", "c"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update(0) on empty table: err = %v, want ErrNotFound", err)
	}
}

func TestElementStore_Delete(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))
	for _, e := range []store.Element{
		{Title: "A", Type: "role", Content: "a"},
		{Title: "B", Type: "goal", Content: "b"},
		{Title: "C", Type: "tone", Content: "c"},
	} {
		if _, err := s.Add(e.Title, e.Type, e.Content); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("len = %d, want 2", len(elements))
	}
	if elements[0] != (store.Element{Title: "A", Type: "role", Content: "a"}) {
		t.Errorf("row 0 = %+v, want A unchanged", elements[0])
	}
	if elements[1] != (store.Element{Title: "C", Type: "tone", Content: "c"}) {
		t.Errorf("row 1 = %+v, want C shifted down", elements[1])
	}
}

func TestElementStore_Delete_OutOfRange(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	if err := s.Delete(3); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Delete(3) on empty table: err = %v, want ErrNotFound", err)
	}
}

func TestElementStore_ReplaceAll(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	// Extra columns are dropped; rows are not validated (blank title kept).
	header := []string{"extra", "content", "title", "type"}
	rows := [][]string{
		{"x", "You are terse.", "Terse", "tone"},
		{"y", "orphan content", "", "mystery"},
	}
	if err := s.ReplaceAll(header, rows); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []store.Element{
		{Title: "Terse", Type: "tone", Content: "You are terse."},
		{Title: "", Type: "mystery", Content: "orphan content"},
	}
	if len(elements) != len(want) {
		t.Fatalf("len = %d, want %d", len(elements), len(want))
	}
	for i, w := range want {
		if elements[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, elements[i], w)
		}
	}
}

func TestElementStore_ReplaceAll_MissingColumns(t *testing.T) {
	dir := testutil.NewDataDir(t)
	s := store.NewElementStore(dir)
	if _, err := s.Add("Keep", "role", "kept"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := testutil.ReadFile(t, dir, store.ElementsFile)

	err := s.ReplaceAll([]string{"title", "content"}, [][]string{{"T", "c"}})
	if !errors.Is(err, store.ErrMissingColumns) {
		t.Fatalf("ReplaceAll: err = %v, want ErrMissingColumns", err)
	}

	if after := testutil.ReadFile(t, dir, store.ElementsFile); before != after {
		t.Errorf("file changed on rejected import")
	}
}

func TestElementStore_Filter(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))
	for _, e := range []store.Element{
		{Title: "Zeta", Type: "tone", Content: "calm and patient"},
		{Title: "Developers", Type: "audience", Content: "Software developers."},
		{Title: "Alpha", Type: "tone", Content: "direct"},
	} {
		if _, err := s.Add(e.Title, e.Type, e.Content); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// No filters: everything, sorted by (type, title).
	rows, err := s.Filter("", "")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	gotTitles := make([]string, 0, len(rows))
	for _, r := range rows {
		gotTitles = append(gotTitles, r.Title)
	}
	want := []string{"Developers", "Alpha", "Zeta"}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotTitles, want)
		}
	}

	// Positions index the full table, not the filtered view.
	if rows[0].Position != 1 {
		t.Errorf("Developers position = %d, want 1", rows[0].Position)
	}

	// Case-insensitive content search intersected with type filter.
	rows, err = s.Filter("SOFTWARE", "audience")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Developers" {
		t.Errorf("query match = %+v, want Developers only", rows)
	}

	rows, err = s.Filter("software", "tone")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("mismatched type filter returned %d rows, want 0", len(rows))
	}
}

func TestElementStore_RoundTrip_Escaping(t *testing.T) {
	s := store.NewElementStore(testutil.NewDataDir(t))

	content := "Line one, with a comma.\nLine two has \"quotes\"."
	if _, err := s.Add("Tricky", "context", content); err != nil {
		t.Fatalf("Add: %v", err)
	}

	elements, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if elements[0].Content != content {
		t.Errorf("content = %q, want %q", elements[0].Content, content)
	}
}
