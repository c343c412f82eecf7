package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/middlewares"
)

// NameResponse represents a successful response with the user's given name
// swagger:model NameResponse
type NameResponse struct {
	// Given name of the authenticated user
	// default: John
	Name string `json:"name"`
}

// NameErrorResponse represents an error response for the name lookup
// swagger:model NameErrorResponse
type NameErrorResponse struct {
	// Error message
	// default: Not authenticated
	Message string `json:"message"`
}

// NewGetNameHandler returns an HTTP handler for fetching the authenticated
// user's given name.
// @Summary Get authenticated user's given name
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.NameResponse "Given name"
// @Failure 401 {object} handlers.NameErrorResponse "Not authenticated"
// @Router /getName [get]
// @Security SessionCookie
func NewGetNameHandler() http.HandlerFunc {
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
		json.NewEncoder(w).Encode(NameResponse{Name: claims.GivenName})
	}
}
