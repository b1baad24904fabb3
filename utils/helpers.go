package utils

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/andrewpaige1/mealbook-api/models"
)

type contextKey string

const userKey = contextKey("user")

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the user attached to the request by the auth
// middleware, if any.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
