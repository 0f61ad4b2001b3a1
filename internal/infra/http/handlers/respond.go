package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/reboundcg/lead-portal/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the usecase error taxonomy onto HTTP statuses. Validation
// failures are the caller's fault; everything else is a generic failure
// notice with the detail kept server side.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsDomainError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func forbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin role required"})
}
