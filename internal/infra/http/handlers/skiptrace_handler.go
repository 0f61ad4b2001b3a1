package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

type SkipTraceHandler struct {
	SaveUC *usecase.SaveSkipTraceUseCase
}

func NewSkipTraceHandler(saveUC *usecase.SaveSkipTraceUseCase) *SkipTraceHandler {
	return &SkipTraceHandler{SaveUC: saveUC}
}

// Save (POST /api/leads/{id}/skiptrace) persists the traced contact graph.
// A partial save is reported with the step that failed and the tiers that
// already landed, since nothing is rolled back.
func (h *SkipTraceHandler) Save(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	operator, _ := middleware.OperatorFrom(r.Context())

	var input usecase.SkipTraceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	output, err := h.SaveUC.Execute(r.Context(), leadID, input, operator)
	if err != nil {
		var partial *usecase.PartialSaveError
		if errors.As(err, &partial) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":     partial.Error(),
				"step":      partial.Step,
				"completed": partial.Completed,
			})
			return
		}
		writeError(w, err)
		return
	}

	middleware.RecordSkipTraceSaved()
	writeJSON(w, http.StatusCreated, output)
}
