package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
)

// SessionResolver resolves the authenticated claims carried by a request,
// returning (nil, nil) when the request has no valid session.
type SessionResolver interface {
	FromRequest(ctx context.Context, r *http.Request) (*oidc.Claims, error)
}

// UserEnsurer defines the interface that the onboarding service must implement.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, claims *oidc.Claims) (bool, error)
}

// RootErrorResponse represents an error response for the bootstrap route
// swagger:model RootErrorResponse
type RootErrorResponse struct {
	// Error message
	// default: Internal Server Error
	Message string `json:"message"`
}

// NewRootHandler returns the first-visit bootstrap handler. An authenticated
// first visit creates the identity row and redirects to onboarding; a
// returning user is sent to the dashboard; an unauthenticated request is
// sent to the frontend landing page.
// @Summary First-visit bootstrap and redirect
// @Tags auth
// @Success 302 "Redirect to questionaire, dashboard or landing page"
// @Failure 500 {object} handlers.RootErrorResponse "Internal server error"
// @Router / [get]
func NewRootHandler(resolver SessionResolver, svc UserEnsurer, frontendHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := resolver.FromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to resolve session", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RootErrorResponse{Message: "Internal Server Error"})
			return
		}

		if claims == nil {
			http.Redirect(w, r, fmt.Sprintf("http://%s", frontendHost), http.StatusFound)
			return
		}

		created, err := svc.EnsureUser(ctx, claims)
		if err != nil {
			logger.Log.Errorw("failed to ensure user", "email", claims.Email, "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RootErrorResponse{Message: "Internal Server Error"})
			return
		}

		if created {
			// New account: collect the remaining details first.
			http.Redirect(w, r, fmt.Sprintf("http://%s/questionaire", frontendHost), http.StatusFound)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("http://%s/dashboard", frontendHost), http.StatusFound)
	}
}
