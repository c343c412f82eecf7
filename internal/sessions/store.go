package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
)

// CookieName is the name of the session cookie set on successful login.
const CookieName = "fitness_session"

// Store keeps authenticated sessions in Redis, keyed by a random session id.
type Store struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// New creates a new session Store with the given session lifetime.
func New(client *redis.Client, expiration time.Duration) *Store {
	return &Store{
		client: client,
		exp:    expiration,
	}
}

// Save stores the claims under a fresh session id and returns the id.
func (s *Store) Save(ctx context.Context, claims *oidc.Claims) (string, error) {
	sessionID := uuid.NewString()
	key := sessionKey(sessionID)

	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	err = s.client.Set(ctx, key, data, s.exp).Err()

	logger.Log.Infow(
		"key", key,
		"email", claims.Email,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get returns the claims stored for a session id, or (nil, nil) if the
// session does not exist or has expired.
func (s *Store) Get(ctx context.Context, sessionID string) (*oidc.Claims, error) {
	key := sessionKey(sessionID)

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read session", "key", key, "error", err)
		return nil, err
	}

	var claims oidc.Claims
	if err := json.Unmarshal([]byte(val), &claims); err != nil {
		logger.Log.Errorw("failed to decode session payload", "key", key, "error", err)
		return nil, err
	}

	return &claims, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// FromRequest resolves the claims for the session cookie carried by the
// request. Returns (nil, nil) when the request has no valid session.
func (s *Store) FromRequest(ctx context.Context, r *http.Request) (*oidc.Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}
	return s.Get(ctx, cookie.Value)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
