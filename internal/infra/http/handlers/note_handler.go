package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

type NoteHandler struct {
	NotesUC *usecase.NoteUseCase
}

func NewNoteHandler(notesUC *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{NotesUC: notesUC}
}

// List (GET /api/leads/{id}/notes) returns the thread most recent first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string]any{
		"notes": h.NotesUC.Thread(r.Context(), leadID),
	})
}

// Create (POST /api/leads/{id}/notes) appends to the thread, attributed to
// the calling operator by display name.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	operator, _ := middleware.OperatorFrom(r.Context())

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	note, err := h.NotesUC.Add(r.Context(), leadID, body.Text, operator)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// Update (PUT /api/notes/{id}) replaces the note text in place.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := h.NotesUC.Edit(r.Context(), noteID, body.Text); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": noteID, "text": body.Text})
}

// Delete (DELETE /api/notes/{id})
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")

	if err := h.NotesUC.Delete(r.Context(), noteID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
