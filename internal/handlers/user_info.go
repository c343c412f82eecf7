package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/middlewares"
	"github.com/mtsfitness/fitness-backend/internal/models"
	"github.com/mtsfitness/fitness-backend/internal/services"
)

// DetailsAdder defines the interface that the onboarding service must implement.
type DetailsAdder interface {
	AddDetails(ctx context.Context, email string, height, weight float64, gender, goal string, age int, focus string) error
}

// DetailsGetter defines the interface that the onboarding service must implement.
type DetailsGetter interface {
	GetDetails(ctx context.Context, email string) (*models.UserDetailsDB, error)
}

// AddUserInfoRequest represents the JSON body for the onboarding submission
// swagger:model AddUserInfoRequest
type AddUserInfoRequest struct {
	// Height in cm
	// default: 180
	Height float64 `json:"height"`

	// Weight in kg
	// default: 75
	Weight float64 `json:"weight"`

	// Gender
	// default: male
	Gender string `json:"gender"`

	// Fitness goal
	// default: strength
	Goal string `json:"goal"`

	// Age in years
	// default: 30
	Age int `json:"age"`

	// Focus area
	// default: upper
	Focus string `json:"focus"`
}

// AddUserInfoResponse represents a successful onboarding submission
// swagger:model AddUserInfoResponse
type AddUserInfoResponse struct {
	// Success message
	// default: User info saved
	Message string `json:"message"`
}

// UserInfoErrorResponse represents an error response for onboarding details
// swagger:model UserInfoErrorResponse
type UserInfoErrorResponse struct {
	// Error message
	// default: Internal Server Error
	Message string `json:"message"`
}

// NewAddUserInfoHandler returns an HTTP handler for the one-time onboarding
// details submission.
// @Summary Submit onboarding details
// @Tags users
// @Accept json
// @Produce json
// @Param addUserInfoRequest body handlers.AddUserInfoRequest true "Onboarding details"
// @Success 200 {object} handlers.AddUserInfoResponse "Details saved"
// @Failure 400 {object} handlers.UserInfoErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.UserInfoErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.UserInfoErrorResponse "User not found"
// @Failure 500 {object} handlers.UserInfoErrorResponse "Internal server error"
// @Router /addUserInfo [post]
// @Security SessionCookie
func NewAddUserInfoHandler(svc DetailsAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "Not authenticated"})
			return
		}

		var req AddUserInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "invalid request body"})
			return
		}

		err := svc.AddDetails(ctx, claims.Email, req.Height, req.Weight, req.Gender, req.Goal, req.Age, req.Focus)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "Internal Server Error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddUserInfoResponse{Message: "User info saved"})
	}
}

// NewGetUserInfoHandler returns an HTTP handler serving the caller's
// onboarding details.
// @Summary Get onboarding details
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDetailsDB "Onboarding details"
// @Failure 401 {object} handlers.UserInfoErrorResponse "Not authenticated"
// @Failure 404 {object} handlers.UserInfoErrorResponse "Details not found"
// @Failure 500 {object} handlers.UserInfoErrorResponse "Internal server error"
// @Router /getUserInfo [get]
// @Security SessionCookie
func NewGetUserInfoHandler(svc DetailsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "Not authenticated"})
			return
		}

		details, err := svc.GetDetails(ctx, claims.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrDetailsNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "Details not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserInfoErrorResponse{Message: "Internal Server Error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(details)
	}
}
