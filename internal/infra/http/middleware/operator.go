package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reboundcg/lead-portal/internal/entity"
)

// OperatorHeader carries the authenticated operator id. Authentication runs
// upstream of this service; the header is trusted.
const OperatorHeader = "X-Operator-ID"

type operatorKey struct{}

// OperatorResolver looks the operator row up by id.
type OperatorResolver interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// Operator resolves the request's operator identity and stashes it in the
// context. Requests without a resolvable operator are rejected: every core
// operation needs the viewer for role scoping.
func Operator(users OperatorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(OperatorHeader)
			if id == "" {
				unauthorized(w, "missing "+OperatorHeader+" header")
				return
			}

			user, err := users.FindByID(r.Context(), id)
			if err != nil {
				unauthorized(w, "unknown operator")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), *user)))
		})
	}
}

// WithOperator returns a context carrying the operator. Exposed for handler
// tests.
func WithOperator(ctx context.Context, user entity.User) context.Context {
	return context.WithValue(ctx, operatorKey{}, user)
}

// OperatorFrom extracts the operator placed by the middleware.
func OperatorFrom(ctx context.Context) (entity.User, bool) {
	user, ok := ctx.Value(operatorKey{}).(entity.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
