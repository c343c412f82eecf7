package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// Save must go through the request-scoped transaction when one is present.
func TestUserDetailsWriteRepository_UsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_details").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	assert.NoError(t, err)

	repo := NewUserDetailsWriteRepository(sqlxDB, func(ctx context.Context) *sqlx.Tx {
		return tx
	})

	err = repo.Save(context.Background(), uuid.New(), 170, 60, "female", "endurance", 25, "lower")
	assert.NoError(t, err)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDetailsWriteRepository_NoTxFallsBackToDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectExec("INSERT INTO user_details").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserDetailsWriteRepository(sqlxDB, func(ctx context.Context) *sqlx.Tx {
		return nil
	})

	err = repo.Save(context.Background(), uuid.New(), 170, 60, "female", "endurance", 25, "lower")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
