// Package assemble composes a final prompt from per-section selections and
// the current element snapshot. Assembly is a pure function of its inputs.
package assemble

import (
	"strings"

	"github.com/aaronwr/promptdeck/internal/store"
)

// Selection sentinels. "Skip" suppresses a section; "Write your own" routes
// a single-choice section to its custom text. Both are excluded from title
// lookups in multi-choice sections.
const (
	Skip         = "Skip"
	WriteYourOwn = "Write your own"
)

// FeedbackSuffix is the fixed instruction appended when recursive feedback
// is requested.
const FeedbackSuffix = "Before you provide the response, ask any clarifying questions that " +
	"would improve the output. If you already have enough info, proceed."

// sections lists the section keys in output order. The order is an
// observable property of the assembled prompt.
var sections = []string{"role", "goal", "audience", "context", "output", "tone"}

var multi = map[string]bool{
	"audience": true,
	"context":  true,
	"output":   true,
}

var headers = map[string]string{
	"role":     "Role",
	"goal":     "Goal",
	"audience": "Target Audience",
	"context":  "Context",
	"output":   "Output",
	"tone":     "Tone",
}

// SectionSelection is one section's worth of user input: chosen element
// titles (possibly sentinels) plus optional custom free text. Single-choice
// sections use at most the first entry of Selected.
type SectionSelection struct {
	Selected []string `json:"selected"`
	Custom   string   `json:"custom"`
}

// Selection maps section keys to their selections. Missing keys are
// treated as skipped.
type Selection map[string]SectionSelection

// Sections returns the section keys in assembly order.
func Sections() []string {
	return append([]string(nil), sections...)
}

// Header returns the display header for a section key, or "" for an
// unknown key.
func Header(key string) string {
	return headers[key]
}

// Multi reports whether the section accepts multiple selections.
func Multi(key string) bool {
	return multi[key]
}

// Assemble produces the final prompt text. Sections are processed in fixed
// order; sections that yield no content are omitted entirely, and the
// non-empty blocks are joined with a blank line. Titles that no longer
// exist in the snapshot contribute nothing rather than failing.
func Assemble(sel Selection, elements []store.Element, recursiveFeedback bool) string {
	var parts []string

	for _, key := range sections {
		s := sel[key]
		if skipped(s.Selected) {
			continue
		}

		if multi[key] {
			if block := buildMulti(key, s, elements); block != "" {
				parts = append(parts, block)
			}
			continue
		}
		if block := buildSingle(key, s, elements); block != "" {
			parts = append(parts, block)
		}
	}

	prompt := strings.Join(parts, "\n\n")
	if recursiveFeedback {
		prompt += "\n\n" + FeedbackSuffix
	}
	return prompt
}

// skipped reports whether a selection contributes nothing: it is empty or
// consists solely of the Skip sentinel.
func skipped(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s != Skip {
			return false
		}
	}
	return true
}

// buildMulti collects the contents of each chosen title in selection order,
// appends the trimmed custom text as a final item, and emits a header line
// followed by the newline-joined items.
func buildMulti(key string, s SectionSelection, elements []store.Element) string {
	var items []string
	for _, title := range s.Selected {
		if title == Skip || title == WriteYourOwn {
			continue
		}
		if c, ok := contentByTitle(elements, title); ok && c != "" {
			items = append(items, c)
		}
	}
	if custom := strings.TrimSpace(s.Custom); custom != "" {
		items = append(items, custom)
	}

	content := strings.Join(items, "\n")
	if content == "" {
		return ""
	}
	return headers[key] + ":\n" + content
}

// buildSingle resolves the single chosen title (or the custom text when
// "Write your own" is selected) and emits header and content on one line.
func buildSingle(key string, s SectionSelection, elements []store.Element) string {
	choice := s.Selected[0]

	var content string
	if choice == WriteYourOwn {
		content = strings.TrimSpace(s.Custom)
	} else if c, ok := contentByTitle(elements, choice); ok {
		content = c
	}

	if content == "" {
		return ""
	}
	return headers[key] + ": " + content
}

// contentByTitle looks up element content by exact title. Lookups are not
// type-qualified: when titles collide across types, the first match in
// snapshot order wins.
func contentByTitle(elements []store.Element, title string) (string, bool) {
	for _, e := range elements {
		if e.Title == title {
			return e.Content, true
		}
	}
	return "", false
}
