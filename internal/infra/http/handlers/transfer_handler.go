package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/query"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

type TransferHandler struct {
	Leads      entity.LeadRepositoryInterface
	TransferUC *usecase.TransferUseCase
	Log        *slog.Logger
}

func NewTransferHandler(leads entity.LeadRepositoryInterface, transferUC *usecase.TransferUseCase, log *slog.Logger) *TransferHandler {
	return &TransferHandler{Leads: leads, TransferUC: transferUC, Log: log}
}

// Export (GET /api/export) downloads the current projection in the external
// exchange schema. The same filter/search/sort query parameters as
// /api/leads apply, so what the operator sees is what exports. Admin only.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}

	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load leads", Cause: err})
		return
	}

	q := r.URL.Query()
	projected := query.Project(leads, viewer, query.Filters{
		Status:   q.Get("status"),
		LeadType: q.Get("type"),
		County:   q.Get("county"),
		State:    q.Get("state"),
	}, q.Get("q"), query.Sort{
		Key: query.SortKey(q.Get("sort")),
		Dir: query.SortDir(q.Get("dir")),
	})

	data, err := h.TransferUC.Export(projected)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := "leads_" + time.Now().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import (POST /api/import) upserts a lead batch from the external schema.
// Admin only.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())
	if !viewer.IsAdmin() {
		forbidden(w)
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read payload"})
		return
	}

	count, err := h.TransferUC.Import(r.Context(), payload)
	if err != nil {
		h.Log.Error("lead import failed", "imported", count, "err", err)
		middleware.RecordLeadsImported(count)
		writeError(w, err)
		return
	}

	middleware.RecordLeadsImported(count)
	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
