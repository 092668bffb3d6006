package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTitleRequired is returned when a title is empty after trimming.
	ErrTitleRequired = errors.New("title is required")

	// ErrContentRequired is returned when content is empty after trimming.
	ErrContentRequired = errors.New("content is required")

	// ErrInvalidType is returned when an element type is not one of the
	// six known section types.
	ErrInvalidType = errors.New("type must be one of: role, goal, audience, context, output, tone")

	// ErrDuplicateElement is returned when an element with the same trimmed
	// title and the same type already exists.
	ErrDuplicateElement = errors.New("an element with this title and type already exists")

	// ErrMissingColumns is returned by bulk import when the supplied CSV
	// lacks one of the required element columns.
	ErrMissingColumns = errors.New("CSV must have columns: title, type, content")

	// ErrNotFound is returned when a row position is out of range.
	ErrNotFound = errors.New("not found")
)

// ElementTypes is the closed set of section types, in assembly order.
var ElementTypes = []string{"role", "goal", "audience", "context", "output", "tone"}

// ValidType reports whether typ is one of the known element types.
func ValidType(typ string) bool {
	for _, t := range ElementTypes {
		if typ == t {
			return true
		}
	}
	return false
}

// validateElement trims title and content and checks the invariants enforced
// at the storage boundary for Add and Update. The type enum is a hard
// invariant here; bulk import stays permissive.
func validateElement(title, typ, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", "", ErrTitleRequired
	}
	if content == "" {
		return "", "", ErrContentRequired
	}
	if !ValidType(typ) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	return title, content, nil
}
