package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
	"github.com/mtsfitness/fitness-backend/internal/sessions"
)

// AuthorizeURLBuilder builds the identity provider authorize URL.
type AuthorizeURLBuilder interface {
	AuthorizeURL(redirectURI string) string
}

// TokenVerifier validates provider ID tokens.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, tokenString string) (*oidc.Claims, error)
}

// SessionSaver stores claims and returns a new session id.
type SessionSaver interface {
	Save(ctx context.Context, claims *oidc.Claims) (string, error)
}

// CallbackErrorResponse represents an error response for the auth callback
// swagger:model CallbackErrorResponse
type CallbackErrorResponse struct {
	// Error message
	// default: Not authenticated
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler redirecting to the identity
// provider authorize endpoint.
// @Summary Start login via the identity provider
// @Tags auth
// @Success 302 "Redirect to the provider authorize endpoint"
// @Router /login [get]
func NewLoginHandler(provider AuthorizeURLBuilder, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirectURI := fmt.Sprintf("%s/callback", baseURL)
		http.Redirect(w, r, provider.AuthorizeURL(redirectURI), http.StatusFound)
	}
}

// NewCallbackHandler returns an HTTP handler completing the login: it
// verifies the ID token posted back by the provider, stores a session and
// sets the session cookie.
// @Summary Identity provider callback
// @Tags auth
// @Success 302 "Redirect to the bootstrap route"
// @Failure 401 {object} handlers.CallbackErrorResponse "Invalid ID token"
// @Failure 500 {object} handlers.CallbackErrorResponse "Internal server error"
// @Router /callback [get]
func NewCallbackHandler(verifier TokenVerifier, store SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		idToken := r.FormValue("id_token")
		if idToken == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CallbackErrorResponse{Message: "Not authenticated"})
			return
		}

		claims, err := verifier.VerifyIDToken(ctx, idToken)
		if err != nil {
			logger.Log.Errorw("ID token verification failed", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CallbackErrorResponse{Message: "Not authenticated"})
			return
		}

		sessionID, err := store.Save(ctx, claims)
		if err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CallbackErrorResponse{Message: "Internal Server Error"})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
		})

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
