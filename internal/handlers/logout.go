package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/sessions"
)

// SessionDeleter removes a session by id.
type SessionDeleter interface {
	Delete(ctx context.Context, sessionID string) error
}

// LogoutURLBuilder builds the identity provider logout URL.
type LogoutURLBuilder interface {
	LogoutURL(returnTo string) string
}

// NewLogoutHandler returns an HTTP handler that drops the local session and
// redirects to the identity provider logout endpoint.
// @Summary Log out
// @Tags auth
// @Success 302 "Redirect to the identity provider logout endpoint"
// @Router /logout [get]
func NewLogoutHandler(store SessionDeleter, provider LogoutURLBuilder, frontendHost string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if cookie, err := r.Cookie(sessions.CookieName); err == nil {
			if err := store.Delete(ctx, cookie.Value); err != nil {
				logger.Log.Errorw("failed to delete session", "err", err)
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessions.CookieName,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})
		}

		returnTo := fmt.Sprintf("http://%s/logout-success", frontendHost)
		http.Redirect(w, r, provider.LogoutURL(returnTo), http.StatusFound)
	}
}
