package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/models"
)

// UserDetailsReadRepository handles onboarding details read operations
type UserDetailsReadRepository struct {
	db *sqlx.DB
}

func NewUserDetailsReadRepository(db *sqlx.DB) *UserDetailsReadRepository {
	return &UserDetailsReadRepository{db: db}
}

// GetByUserID returns the onboarding details row for a user, or (nil, nil)
// when the user has not completed onboarding.
func (r *UserDetailsReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserDetailsDB, error) {
	const query = `
		SELECT user_id, height, weight, gender, goal, age, focus, created_at
		FROM user_details
		WHERE user_id = $1
		LIMIT 1
	`

	var details models.UserDetailsDB
	err := r.db.GetContext(ctx, &details, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", details,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// UserDetailsWriteRepository handles onboarding details write operations
type UserDetailsWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserDetailsWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserDetailsWriteRepository {
	return &UserDetailsWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the one-time onboarding row for a user. Values pass through
// from caller input unvalidated.
func (r *UserDetailsWriteRepository) Save(ctx context.Context, userID uuid.UUID, height, weight float64, gender, goal string, age int, focus string) error {
	query := `
		INSERT INTO user_details (user_id, height, weight, gender, goal, age, focus, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	args := []any{userID, height, weight, gender, goal, age, focus}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
