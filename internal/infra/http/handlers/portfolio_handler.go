package handlers

import (
	"log/slog"
	"net/http"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/query"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

// PortfolioHandler serves the role-scoped lead portfolio and its filtered,
// sorted, aggregated projections.
type PortfolioHandler struct {
	Leads entity.LeadRepositoryInterface
	Users usecase.UserRepositoryInterface
	Log   *slog.Logger
}

func NewPortfolioHandler(leads entity.LeadRepositoryInterface, users usecase.UserRepositoryInterface, log *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{Leads: leads, Users: users, Log: log}
}

// GetPortfolio (GET /api/portfolio) returns the operator's full visible lead
// set plus the operator roster for the assignment picker.
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())

	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load leads", Cause: err})
		return
	}

	operators, err := h.Users.FindAll(r.Context())
	if err != nil {
		// The roster only drives the assignment picker; a load failure
		// degrades to an empty list rather than blocking the portfolio.
		h.Log.Error("operator roster load failed", "err", err)
		operators = nil
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"leads":     query.Scope(leads, viewer),
		"operators": operators,
		"read_only": viewer.ReadOnly(),
	})
}

// ListLeads (GET /api/leads) applies filters, search and sort from the query
// string and returns the projection together with stats and the distinct
// county/state menus. Stats and menus cover the whole scoped set, not the
// filtered subset.
func (h *PortfolioHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.OperatorFrom(r.Context())

	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load leads", Cause: err})
		return
	}

	q := r.URL.Query()
	filters := query.Filters{
		Status:   q.Get("status"),
		LeadType: q.Get("type"),
		County:   q.Get("county"),
		State:    q.Get("state"),
	}
	sort := query.Sort{
		Key: query.SortKey(q.Get("sort")),
		Dir: query.SortDir(q.Get("dir")),
	}

	scoped := query.Scope(leads, viewer)
	writeJSON(w, http.StatusOK, map[string]any{
		"leads":    query.Project(scoped, viewer, filters, q.Get("q"), sort),
		"stats":    query.Stats(scoped),
		"counties": query.Counties(scoped),
		"states":   query.States(scoped),
	})
}
