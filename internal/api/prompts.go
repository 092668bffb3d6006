package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aaronwr/promptdeck/internal/assemble"
	"github.com/aaronwr/promptdeck/internal/metrics"
	"github.com/aaronwr/promptdeck/internal/store"
)

// promptsAPIHandler provides handlers for assembly and prompt history.
type promptsAPIHandler struct {
	elements *store.ElementStore
	history  *store.HistoryStore
}

// registerPromptRoutes registers assembly, history, and section metadata
// routes on r.
func registerPromptRoutes(r chi.Router, elements *store.ElementStore, history *store.HistoryStore) {
	h := &promptsAPIHandler{elements: elements, history: history}
	r.Post("/assemble", h.Assemble)
	r.Post("/prompts", h.Save)
	r.Get("/prompts", h.List)
	r.Get("/types", h.Sections)
}

// Assemble composes a prompt from the posted selections and the current
// element snapshot.
// POST /api/v1/assemble
//
// @Summary      Assemble a prompt
// @Description  Composes the final prompt from per-section selections, custom text, and the current element library. All-skip selections yield an empty prompt.
// @Tags         Prompts
// @Accept       json
// @Produce      json
// @Param        body  body      AssembleRequest  true  "Selections"
// @Success      200   {object}  AssembleResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /assemble [post]
func (h *promptsAPIHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	var req AssembleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	elements, err := h.elements.Load()
	if err != nil {
		writeStoreError(w, "load elements", err)
		return
	}

	prompt := assemble.Assemble(req.Sections, elements, req.RecursiveFeedback)
	metrics.AssembliesTotal.Inc()
	writeJSON(w, http.StatusOK, AssembleResponse{Prompt: prompt})
}

// Save appends an assembled prompt to history. Name and prompt must both be
// non-empty after trimming; the store itself does not validate.
// POST /api/v1/prompts
//
// @Summary      Save a prompt
// @Description  Appends the prompt to history with a timestamp in the configured timezone. Duplicate names are allowed.
// @Tags         Prompts
// @Accept       json
// @Produce      json
// @Param        body  body      SavePromptRequest  true  "Prompt to save"
// @Success      201   {object}  PromptResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /prompts [post]
func (h *promptsAPIHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SavePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	name := strings.TrimSpace(req.Name)
	prompt := strings.TrimSpace(req.Prompt)
	if name == "" || prompt == "" {
		writeError(w, http.StatusBadRequest, "both a name and a non-empty prompt are required", "VALIDATION")
		return
	}

	rec, err := h.history.Append(name, prompt)
	if err != nil {
		writeStoreError(w, "save prompt", err)
		return
	}

	metrics.PromptsSavedTotal.Inc()
	writeJSON(w, http.StatusCreated, PromptResponse{
		Name:      rec.Name,
		Timestamp: rec.Timestamp,
		Prompt:    rec.Prompt,
	})
}

// List returns saved prompts newest first, optionally filtered by a search
// query against name or content.
// GET /api/v1/prompts
//
// @Summary      List saved prompts
// @Description  Returns history ordered by timestamp descending. q filters by case-insensitive substring match on name or prompt.
// @Tags         Prompts
// @Produce      json
// @Param        q    query     string  false  "Search query"
// @Success      200  {object}  PromptListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /prompts [get]
func (h *promptsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.history.Search(r.URL.Query().Get("q"))
	if err != nil {
		writeStoreError(w, "list prompts", err)
		return
	}

	resp := PromptListResponse{Prompts: make([]PromptResponse, 0, len(records))}
	for _, rec := range records {
		resp.Prompts = append(resp.Prompts, PromptResponse{
			Name:      rec.Name,
			Timestamp: rec.Timestamp,
			Prompt:    rec.Prompt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Sections returns the fixed section metadata so clients never hardcode
// the type enum, headers, or sentinels.
// GET /api/v1/types
//
// @Summary      List section types
// @Description  Returns the six section keys in assembly order with display headers, multi-select flags, and the selection sentinels.
// @Tags         Prompts
// @Produce      json
// @Success      200  {object}  SectionListResponse
// @Router       /types [get]
func (h *promptsAPIHandler) Sections(w http.ResponseWriter, r *http.Request) {
	var resp SectionListResponse
	for _, key := range assemble.Sections() {
		resp.Sections = append(resp.Sections, SectionResponse{
			Key:    key,
			Header: assemble.Header(key),
			Multi:  assemble.Multi(key),
		})
	}
	resp.Sentinels.Skip = assemble.Skip
	resp.Sentinels.Custom = assemble.WriteYourOwn
	writeJSON(w, http.StatusOK, resp)
}
