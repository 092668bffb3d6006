package assemble_test

import (
	"strings"
	"testing"

	"github.com/aaronwr/promptdeck/internal/assemble"
	"github.com/aaronwr/promptdeck/internal/store"
)

var snapshot = []store.Element{
	{Title: "Helpful Assistant", Type: "role", Content: "You are a helpful assistant."},
	{Title: "Developers", Type: "audience", Content: "Software developers."},
	{Title: "Managers", Type: "audience", Content: "Engineering managers."},
	{Title: "Project background", Type: "context", Content: "We ship a CLI tool."},
	{Title: "Bullet list", Type: "output", Content: "Respond with bullet points."},
	{Title: "Concise", Type: "tone", Content: "Be concise."},
}

func single(title string) assemble.SectionSelection {
	return assemble.SectionSelection{Selected: []string{title}}
}

func TestAssemble_SingleChoiceSections(t *testing.T) {
	sel := assemble.Selection{
		"role": single("Helpful Assistant"),
		"tone": single("Concise"),
	}

	got := assemble.Assemble(sel, snapshot, false)
	want := "Role: You are a helpful assistant.\n\nTone: Be concise."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_MultiChoiceWithCustom(t *testing.T) {
	sel := assemble.Selection{
		"audience": {Selected: []string{"Developers"}, Custom: "and hobbyists"},
	}

	got := assemble.Assemble(sel, snapshot, false)
	want := "Target Audience:\nSoftware developers.\nand hobbyists"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_MultiChoicePreservesSelectionOrder(t *testing.T) {
	sel := assemble.Selection{
		"audience": {Selected: []string{"Managers", "Developers"}},
	}

	got := assemble.Assemble(sel, snapshot, false)
	want := "Target Audience:\nEngineering managers.\nSoftware developers."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_SectionOrderIsFixed(t *testing.T) {
	// Selections arrive as a map; output order must follow the fixed
	// section order regardless.
	sel := assemble.Selection{
		"tone":    single("Concise"),
		"output":  {Selected: []string{"Bullet list"}},
		"context": {Selected: []string{"Project background"}},
		"role":    single("Helpful Assistant"),
	}

	got := assemble.Assemble(sel, snapshot, false)
	want := strings.Join([]string{
		"Role: You are a helpful assistant.",
		"Context:\nWe ship a CLI tool.",
		"Output:\nRespond with bullet points.",
		"Tone: Be concise.",
	}, "\n\n")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_SkipAll(t *testing.T) {
	sel := assemble.Selection{
		"role":     single(assemble.Skip),
		"goal":     {},
		"audience": {Selected: []string{assemble.Skip, assemble.Skip}},
	}

	if got := assemble.Assemble(sel, snapshot, false); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestAssemble_WriteYourOwn(t *testing.T) {
	sel := assemble.Selection{
		"goal": {Selected: []string{assemble.WriteYourOwn}, Custom: "  Summarize the report.  "},
	}

	got := assemble.Assemble(sel, snapshot, false)
	if got != "Goal: Summarize the report." {
		t.Errorf("got %q, want trimmed custom goal", got)
	}
}

func TestAssemble_WriteYourOwnBlankCustom(t *testing.T) {
	sel := assemble.Selection{
		"goal": {Selected: []string{assemble.WriteYourOwn}, Custom: "   "},
	}

	if got := assemble.Assemble(sel, snapshot, false); got != "" {
		t.Errorf("got %q, want empty (blank custom contributes nothing)", got)
	}
}

func TestAssemble_MissingTitleIsSilent(t *testing.T) {
	sel := assemble.Selection{
		"role":     single("Deleted Element"),
		"audience": {Selected: []string{"Developers", "Gone"}},
	}

	got := assemble.Assemble(sel, snapshot, false)
	want := "Target Audience:\nSoftware developers."
	if got != want {
		t.Errorf("got %q, want %q (missing titles skipped silently)", got, want)
	}
}

func TestAssemble_CrossTypeCollisionFirstMatchWins(t *testing.T) {
	collided := []store.Element{
		{Title: "Shared", Type: "goal", Content: "goal content"},
		{Title: "Shared", Type: "tone", Content: "tone content"},
	}
	sel := assemble.Selection{
		"tone": single("Shared"),
	}

	got := assemble.Assemble(sel, collided, false)
	if got != "Tone: goal content" {
		t.Errorf("got %q, want first match in snapshot order", got)
	}
}

func TestAssemble_RecursiveFeedback(t *testing.T) {
	sel := assemble.Selection{"tone": single("Concise")}

	got := assemble.Assemble(sel, snapshot, true)
	want := "Tone: Be concise.\n\n" + assemble.FeedbackSuffix
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	sel := assemble.Selection{
		"role":     single("Helpful Assistant"),
		"audience": {Selected: []string{"Developers"}, Custom: "and hobbyists"},
		"tone":     single("Concise"),
	}

	first := assemble.Assemble(sel, snapshot, true)
	second := assemble.Assemble(sel, snapshot, true)
	if first != second {
		t.Errorf("assembly is not idempotent:\nfirst  %q\nsecond %q", first, second)
	}
}
