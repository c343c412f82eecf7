package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/middlewares"
)

// NewProfileHandler returns an HTTP handler exposing the raw identity
// provider claims of the authenticated user.
// @Summary Get identity provider claims
// @Tags profile
// @Produce json
// @Success 200 {object} oidc.Claims "Provider claims"
// @Failure 401 {object} handlers.NameErrorResponse "Not authenticated"
// @Router /profile [get]
// @Security SessionCookie
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(NameErrorResponse{Message: "Not authenticated"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(claims)
	}
}
