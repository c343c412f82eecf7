package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/models"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
)

// Error variables
var (
	ErrUserNotFound    = errors.New("user does not exist")
	ErrDetailsNotFound = errors.New("user details not found")
)

// UserReader defines read-only operations for identity rows.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for identity rows.
type UserWriter interface {
	SaveIfAbsent(ctx context.Context, firstName, lastName, email string, createdAt time.Time) (bool, error)
}

// UserDetailsReader defines read operations for onboarding details.
type UserDetailsReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserDetailsDB, error)
}

// UserDetailsWriter defines write operations for onboarding details.
type UserDetailsWriter interface {
	Save(ctx context.Context, userID uuid.UUID, height, weight float64, gender, goal string, age int, focus string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OnboardingService handles first-visit bootstrap and profile details.
type OnboardingService struct {
	userReader    UserReader
	userWriter    UserWriter
	detailsReader UserDetailsReader
	detailsWriter UserDetailsWriter
	kafkaWriter   KafkaWriter
	now           func() time.Time
}

// NewOnboardingService creates a new OnboardingService instance.
func NewOnboardingService(
	userReader UserReader,
	userWriter UserWriter,
	detailsReader UserDetailsReader,
	detailsWriter UserDetailsWriter,
	kafkaWriter KafkaWriter,
	now func() time.Time,
) *OnboardingService {
	if now == nil {
		now = time.Now
	}
	return &OnboardingService{
		userReader:    userReader,
		userWriter:    userWriter,
		detailsReader: detailsReader,
		detailsWriter: detailsWriter,
		kafkaWriter:   kafkaWriter,
		now:           now,
	}
}

// publishSignup publishes a signup event to Kafka.
func (svc *OnboardingService) publishSignup(ctx context.Context, event models.SignupEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal signup event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish signup event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Signup event published to Kafka", "event_id", event.EventID, "email", event.Email)
	}
}

// EnsureUser creates an identity row for the authenticated claims on first
// visit. Returns created=true only when a new row was inserted; a concurrent
// or earlier visit with the same email yields created=false.
func (svc *OnboardingService) EnsureUser(ctx context.Context, claims *oidc.Claims) (bool, error) {
	created, err := svc.userWriter.SaveIfAbsent(ctx, claims.GivenName, claims.FamilyName, claims.Email, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", claims.Email, "err", err)
		return false, err
	}

	if created {
		svc.publishSignup(ctx, models.SignupEvent{
			EventID:   uuid.NewString(),
			Timestamp: svc.now().Unix(),
			Email:     claims.Email,
			FirstName: claims.GivenName,
			LastName:  claims.FamilyName,
		})
	}

	return created, nil
}

// GetUser returns the identity row for an email.
func (svc *OnboardingService) GetUser(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns all identity rows.
func (svc *OnboardingService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.userReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// GetDetails returns the onboarding details for the user owning an email.
func (svc *OnboardingService) GetDetails(ctx context.Context, email string) (*models.UserDetailsDB, error) {
	user, err := svc.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}

	details, err := svc.detailsReader.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user details", "userID", user.UserID, "err", err)
		return nil, err
	}
	if details == nil {
		return nil, ErrDetailsNotFound
	}
	return details, nil
}

// AddDetails inserts the one-time onboarding row for the user owning an
// email. Field values pass through from caller input unvalidated.
func (svc *OnboardingService) AddDetails(ctx context.Context, email string, height, weight float64, gender, goal string, age int, focus string) error {
	user, err := svc.GetUser(ctx, email)
	if err != nil {
		return err
	}

	if err := svc.detailsWriter.Save(ctx, user.UserID, height, weight, gender, goal, age, focus); err != nil {
		logger.Log.Errorw("failed to save user details", "userID", user.UserID, "err", err)
		return err
	}

	return nil
}
