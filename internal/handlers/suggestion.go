package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/middlewares"
	"github.com/mtsfitness/fitness-backend/internal/services"
)

// Suggester defines the interface that the suggestion service must implement.
type Suggester interface {
	Suggest(ctx context.Context, email string) ([]json.RawMessage, error)
}

// SuggestionErrorResponse represents an error response for suggestions
// swagger:model SuggestionErrorResponse
type SuggestionErrorResponse struct {
	// Error message
	// default: Internal Server Error
	Message string `json:"message"`
}

// NewSuggestionHandler returns an HTTP handler serving today's exercise
// suggestions for the authenticated user.
// @Summary Get exercise suggestions for today
// @Description Returns catalog payloads for today's muscle-group rotation, selected by the user's gender and the current day of week. Muscle groups whose catalog call failed are absent from the result.
// @Tags suggestions
// @Produce json
// @Success 200 {array} object "Catalog payloads in rotation order"
// @Failure 401 {object} handlers.SuggestionErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.SuggestionErrorResponse "Profile not completed"
// @Failure 500 {object} handlers.SuggestionErrorResponse "Internal server error"
// @Router /suggestion [get]
// @Security SessionCookie
func NewSuggestionHandler(svc Suggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SuggestionErrorResponse{Message: "Not authenticated"})
			return
		}

		result, err := svc.Suggest(ctx, claims.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrDetailsNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SuggestionErrorResponse{Message: "Profile not completed"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SuggestionErrorResponse{Message: "Internal Server Error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
