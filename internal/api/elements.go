package api

import (
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aaronwr/promptdeck/internal/metrics"
	"github.com/aaronwr/promptdeck/internal/store"
)

// elementsAPIHandler provides REST handlers for the element library.
type elementsAPIHandler struct {
	elements *store.ElementStore
}

// registerElementRoutes registers element CRUD and import/export routes on r.
func registerElementRoutes(r chi.Router, elements *store.ElementStore) {
	h := &elementsAPIHandler{elements: elements}
	r.Get("/elements", h.List)
	r.Post("/elements", h.Create)
	r.Get("/elements/export", h.Export)
	r.Post("/elements/import", h.Import)
	r.Put("/elements/{position}", h.Update)
	r.Delete("/elements/{position}", h.Delete)
}

// List returns elements matching the optional search query and type filter,
// ordered ascending by (type, title).
// GET /api/v1/elements
//
// @Summary      List elements
// @Description  Returns elements matching q (title/content substring, case-insensitive) and type. Each item carries its row position.
// @Tags         Elements
// @Produce      json
// @Param        q     query     string  false  "Search query"
// @Param        type  query     string  false  "Type filter (role, goal, audience, context, output, tone, or all)"
// @Success      200   {object}  ElementListResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /elements [get]
func (h *elementsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	typ := r.URL.Query().Get("type")

	rows, err := h.elements.Filter(q, typ)
	if err != nil {
		writeStoreError(w, "list elements", err)
		return
	}
	if q == "" && (typ == "" || typ == "all") {
		metrics.ElementsTotal.Set(float64(len(rows)))
	}

	resp := ElementListResponse{Elements: make([]ElementResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Elements = append(resp.Elements, ElementResponse{
			Position: row.Position,
			Title:    row.Title,
			Type:     row.Type,
			Content:  row.Content,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new element to the library.
// POST /api/v1/elements
//
// @Summary      Create an element
// @Description  Adds a snippet. Title and content are trimmed; blank values, unknown types, and duplicate (title, type) pairs are rejected.
// @Tags         Elements
// @Accept       json
// @Produce      json
// @Param        body  body      CreateElementRequest  true  "Element to create"
// @Success      201   {object}  ElementResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /elements [post]
func (h *elementsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	e, err := h.elements.Add(req.Title, req.Type, req.Content)
	if err != nil {
		writeStoreError(w, "create element", err)
		return
	}

	rows, err := h.elements.Filter("", "")
	if err == nil {
		metrics.ElementsTotal.Set(float64(len(rows)))
	}

	writeJSON(w, http.StatusCreated, ElementResponse{
		Position: positionOf(rows, e),
		Title:    e.Title,
		Type:     e.Type,
		Content:  e.Content,
	})
}

// Update overwrites the element at the given row position.
// PUT /api/v1/elements/{position}
//
// @Summary      Update an element
// @Description  Overwrites the row at position with trimmed values.
// @Tags         Elements
// @Accept       json
// @Produce      json
// @Param        position  path      int                   true  "Row position"
// @Param        body      body      UpdateElementRequest  true  "New values"
// @Success      200       {object}  ElementResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /elements/{position} [put]
func (h *elementsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	position, ok := parsePosition(w, r)
	if !ok {
		return
	}

	var req UpdateElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	e, err := h.elements.Update(position, req.Title, req.Type, req.Content)
	if err != nil {
		writeStoreError(w, "update element", err)
		return
	}

	writeJSON(w, http.StatusOK, ElementResponse{
		Position: position,
		Title:    e.Title,
		Type:     e.Type,
		Content:  e.Content,
	})
}

// Delete removes the element at the given row position.
// DELETE /api/v1/elements/{position}
//
// @Summary      Delete an element
// @Description  Removes the row at position. Remaining rows shift down.
// @Tags         Elements
// @Param        position  path  int  true  "Row position"
// @Success      204       "No Content"
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /elements/{position} [delete]
func (h *elementsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	position, ok := parsePosition(w, r)
	if !ok {
		return
	}

	if err := h.elements.Delete(position); err != nil {
		writeStoreError(w, "delete element", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the full elements table as a CSV download, verbatim.
// GET /api/v1/elements/export
//
// @Summary      Export elements CSV
// @Description  Downloads the full elements table as CSV, no transformation applied.
// @Tags         Elements
// @Produce      text/csv
// @Success      200 {string}  string  "CSV payload"
// @Failure      500 {object}  ErrorResponse
// @Router       /elements/export [get]
func (h *elementsAPIHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="prompt_elements.csv"`)
	if err := h.elements.ExportCSV(w); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("elements").Inc()
	}
}

// Import replaces the entire element table with an uploaded CSV. The upload
// may be a multipart "file" field or a raw CSV request body.
// POST /api/v1/elements/import
//
// @Summary      Import elements CSV
// @Description  Replaces the whole element table. The CSV must include the title, type, and content columns; rows are written verbatim without per-row validation.
// @Tags         Elements
// @Accept       text/csv
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /elements/import [post]
func (h *elementsAPIHandler) Import(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if f := multipartFile(r); f != nil {
		defer f.Close()
		body = f
	}

	cr := csv.NewReader(body)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil || len(records) == 0 {
		writeError(w, http.StatusBadRequest, "invalid CSV upload", "BAD_REQUEST")
		return
	}

	if err := h.elements.ReplaceAll(records[0], records[1:]); err != nil {
		writeStoreError(w, "import elements", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// multipartFile returns the uploaded "file" part when the request is
// multipart, or nil to fall back to the raw body.
func multipartFile(r *http.Request) multipart.File {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil
	}
	return f
}

// parsePosition parses the {position} URL parameter, writing a 400 when it
// is not an integer.
func parsePosition(w http.ResponseWriter, r *http.Request) (int, bool) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "position must be an integer", "BAD_REQUEST")
		return 0, false
	}
	return position, true
}

// positionOf finds the stored position of a just-created element. Creation
// appends, so the match is searched from the end.
func positionOf(rows []store.ElementRow, e store.Element) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Element == e {
			return rows[i].Position
		}
	}
	return -1
}
