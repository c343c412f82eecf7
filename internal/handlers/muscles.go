package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mtsfitness/fitness-backend/internal/logger"
)

// muscleQueryLimit is the per-request result limit for the direct
// muscle-group pass-through.
const muscleQueryLimit = 10

// CatalogReader fetches exercise payloads from the external catalog.
type CatalogReader interface {
	GetByTarget(ctx context.Context, muscle string, limit int) ([]byte, error)
}

// MusclesErrorResponse represents an error response for the pass-through
// swagger:model MusclesErrorResponse
type MusclesErrorResponse struct {
	// Error message
	// default: Failed to retrieve exercises
	Message string `json:"message"`
}

// NewMuscleExercisesHandler returns an HTTP handler proxying catalog
// lookups for a single muscle group.
// @Summary Get exercises for one muscle group
// @Tags suggestions
// @Produce json
// @Param muscle path string true "Target muscle group name"
// @Success 200 {array} object "Catalog payload"
// @Failure 502 {object} handlers.MusclesErrorResponse "Catalog unavailable"
// @Router /api/exercises/muscles/{muscle} [get]
func NewMuscleExercisesHandler(catalog CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		muscle := chi.URLParam(r, "muscle")

		payload, err := catalog.GetByTarget(r.Context(), muscle, muscleQueryLimit)
		if err != nil {
			logger.Log.Errorw("failed to fetch exercises", "muscle", muscle, "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(MusclesErrorResponse{Message: "Failed to retrieve exercises"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}
