package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/middlewares"
	"github.com/mtsfitness/fitness-backend/internal/models"
	"github.com/mtsfitness/fitness-backend/internal/services"
)

// UserGetter defines the interface that the onboarding service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, email string) (*models.UserDB, error)
}

// UserIDResponse represents a successful response with the caller's user id
// swagger:model UserIDResponse
type UserIDResponse struct {
	// Identity row id
	ID uuid.UUID `json:"id"`
}

// UserErrorResponse represents an error response for the user lookup
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User not found
	Message string `json:"message"`
}

// NewGetUserHandler returns an HTTP handler resolving the identity id for
// the authenticated email.
// @Summary Get identity id for the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserIDResponse "Identity id"
// @Failure 401 {object} handlers.UserErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /getUser [get]
// @Security SessionCookie
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Message: "Not authenticated"})
			return
		}

		user, err := svc.GetUser(ctx, claims.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Message: "Internal Server Error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserIDResponse{ID: user.UserID})
	}
}
