package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/models"
)

// UsersLister defines the interface that the onboarding service must implement.
type UsersLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// UsersErrorResponse represents an error response for the users listing
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: Internal Server Error
	Message string `json:"message"`
}

// NewListUsersHandler returns an HTTP handler listing all identity rows.
// The route requires an authenticated session.
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Identity rows"
// @Failure 401 {object} handlers.UsersErrorResponse "Not authenticated"
// @Failure 500 {object} handlers.UsersErrorResponse "Internal server error"
// @Router /users [get]
// @Security SessionCookie
func NewListUsersHandler(svc UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{Message: "Internal Server Error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
