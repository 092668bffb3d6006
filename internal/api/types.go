package api

import "github.com/aaronwr/promptdeck/internal/assemble"

// --- Element types ---

// CreateElementRequest is the request body for POST /api/v1/elements.
type CreateElementRequest struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// UpdateElementRequest is the request body for PUT /api/v1/elements/{position}.
type UpdateElementRequest struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ElementResponse is the JSON representation of a single element. Position
// is the row's index in the stored table and is what Update and Delete
// address; it is only stable until the next mutation.
type ElementResponse struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

// ElementListResponse is the response for element list endpoints.
type ElementListResponse struct {
	Elements []ElementResponse `json:"elements"`
}

// --- Assembly types ---

// AssembleRequest is the request body for POST /api/v1/assemble. Section
// keys missing from Sections are skipped.
type AssembleRequest struct {
	Sections          assemble.Selection `json:"sections"`
	RecursiveFeedback bool               `json:"recursive_feedback"`
}

// AssembleResponse carries the assembled prompt text.
type AssembleResponse struct {
	Prompt string `json:"prompt"`
}

// --- Prompt history types ---

// SavePromptRequest is the request body for POST /api/v1/prompts.
type SavePromptRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// PromptResponse is the JSON representation of a saved prompt.
type PromptResponse struct {
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Prompt    string `json:"prompt"`
}

// PromptListResponse is the response for GET /api/v1/prompts.
type PromptListResponse struct {
	Prompts []PromptResponse `json:"prompts"`
}

// --- Section metadata ---

// SectionResponse describes one section: its key, display header, and
// whether it accepts multiple selections.
type SectionResponse struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Multi  bool   `json:"multi"`
}

// SectionListResponse is the response for GET /api/v1/types. Sentinels are
// the literal selection values that mean "skip this section" and "use the
// custom text".
type SectionListResponse struct {
	Sections  []SectionResponse `json:"sections"`
	Sentinels struct {
		Skip   string `json:"skip"`
		Custom string `json:"custom"`
	} `json:"sentinels"`
}
