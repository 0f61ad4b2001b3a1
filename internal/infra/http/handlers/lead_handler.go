package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

type LeadHandler struct {
	Leads    entity.LeadRepositoryInterface
	Contacts usecase.ContactRepositoryInterface
	NotesUC  *usecase.NoteUseCase
	OpsUC    *usecase.LeadOpsUseCase
	Log      *slog.Logger
}

func NewLeadHandler(
	leads entity.LeadRepositoryInterface,
	contacts usecase.ContactRepositoryInterface,
	notesUC *usecase.NoteUseCase,
	opsUC *usecase.LeadOpsUseCase,
	log *slog.Logger,
) *LeadHandler {
	return &LeadHandler{
		Leads:    leads,
		Contacts: contacts,
		NotesUC:  notesUC,
		OpsUC:    opsUC,
		Log:      log,
	}
}

// GetLead (GET /api/leads/{id}) returns the lead with its note thread and
// contact graph. Either sub-read failing degrades that section to empty
// instead of failing the whole view. A lead outside the operator's scope is
// indistinguishable from a missing one.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	viewer, _ := middleware.OperatorFrom(r.Context())

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
		return
	}
	if !viewer.IsAdmin() && lead.AssignedTo != viewer.ID {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
		return
	}

	contacts, err := h.Contacts.FindGraphByLeadID(r.Context(), id)
	if err != nil {
		h.Log.Error("contact graph load failed", "lead_id", id, "err", err)
		contacts = nil
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lead":     lead,
		"notes":    h.NotesUC.Thread(r.Context(), id),
		"contacts": contacts,
	})
}

// UpdateStatus (PATCH /api/leads/{id}/status)
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := h.OpsUC.UpdateStatus(r.Context(), id, body.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": body.Status})
}

// Assign (PATCH /api/leads/{id}/assignee) sets or clears the assignee.
// Admin only.
func (h *LeadHandler) Assign(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}
	id := chi.URLParam(r, "id")

	var body struct {
		OperatorID string `json:"operator_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := h.OpsUC.Assign(r.Context(), id, body.OperatorID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "assigned_to": body.OperatorID})
}

// Delete (DELETE /api/leads/{id}) removes the lead and every dependent row.
// Admin only.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.OpsUC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordLeadsDeleted(1)
	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	IDs        []string `json:"ids"`
	OperatorID string   `json:"operator_id,omitempty"`
}

// BulkAssign (POST /api/leads/bulk/assign). Admin only.
func (h *LeadHandler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}

	var body bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, h.OpsUC.BulkAssign(r.Context(), body.IDs, body.OperatorID))
}

// BulkDelete (POST /api/leads/bulk/delete). Admin only.
func (h *LeadHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}

	var body bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result := h.OpsUC.BulkDelete(r.Context(), body.IDs)
	middleware.RecordLeadsDeleted(result.Succeeded)
	writeJSON(w, http.StatusOK, result)
}
