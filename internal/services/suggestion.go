package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/suggestions"
)

// ExerciseCatalogReader fetches exercise payloads from the external catalog.
type ExerciseCatalogReader interface {
	GetByTarget(ctx context.Context, muscle string, limit int) ([]byte, error)
}

// ExerciseCacheReader fetches and stores cached exercise payloads.
type ExerciseCacheReader interface {
	GetByTarget(ctx context.Context, muscle string, limit int) ([]byte, error)
	SetByTarget(ctx context.Context, muscle string, limit int, payload []byte) error
}

// SuggestionService builds day-of-week exercise suggestions for a user.
type SuggestionService struct {
	userReader    UserReader
	detailsReader UserDetailsReader
	catalog       ExerciseCatalogReader
	cache         ExerciseCacheReader
	limit         int // per-muscle-group result limit
	now           func() time.Time
}

// NewSuggestionService creates a new service instance. The clock is injected
// so the day-of-week lookup is testable.
func NewSuggestionService(
	userReader UserReader,
	detailsReader UserDetailsReader,
	catalog ExerciseCatalogReader,
	cache ExerciseCacheReader,
	limit int,
	now func() time.Time,
) *SuggestionService {
	if now == nil {
		now = time.Now
	}
	return &SuggestionService{
		userReader:    userReader,
		detailsReader: detailsReader,
		catalog:       catalog,
		cache:         cache,
		limit:         limit,
		now:           now,
	}
}

// Suggest returns the catalog payloads for today's muscle-group rotation of
// the user owning an email. Failed catalog calls are logged and skipped, so
// the result can be shorter than the plan; relative order of successes
// matches the plan order.
func (svc *SuggestionService) Suggest(ctx context.Context, email string) ([]json.RawMessage, error) {
	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	details, err := svc.detailsReader.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user details", "userID", user.UserID, "err", err)
		return nil, err
	}
	if details == nil {
		return nil, ErrDetailsNotFound
	}

	gender := suggestions.ParseGender(details.Gender)
	plan := suggestions.PlanFor(gender, svc.now().Weekday())

	result := make([]json.RawMessage, 0, len(plan))
	for _, muscle := range plan {
		payload, err := svc.fetch(ctx, muscle)
		if err != nil {
			logger.Log.Errorw("failed to fetch exercises, skipping muscle group",
				"muscle", muscle, "error", err)
			continue
		}
		result = append(result, payload)
	}

	return result, nil
}

// fetch returns the payload for one muscle group, trying the cache first and
// falling back to the catalog.
func (svc *SuggestionService) fetch(ctx context.Context, muscle string) ([]byte, error) {
	if svc.cache != nil {
		if payload, err := svc.cache.GetByTarget(ctx, muscle, svc.limit); err == nil {
			return payload, nil
		}
	}

	payload, err := svc.catalog.GetByTarget(ctx, muscle, svc.limit)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetByTarget(ctx, muscle, svc.limit, payload); err != nil {
			logger.Log.Errorw("failed to cache exercises", "muscle", muscle, "error", err)
		}
	}

	return payload, nil
}
