package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mtsfitness/fitness-backend/internal/models"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
	"github.com/mtsfitness/fitness-backend/internal/services"
)

var fixedNow = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

func TestOnboardingService_EnsureUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &oidc.Claims{GivenName: "John", FamilyName: "Doe", Email: "john@example.com"}

	tests := []struct {
		name        string
		created     bool
		writerErr   error
		expectEvent bool
		wantCreated bool
		wantErr     bool
	}{
		{
			name:        "first visit creates row and publishes event",
			created:     true,
			expectEvent: true,
			wantCreated: true,
		},
		{
			name:        "returning user creates nothing",
			created:     false,
			wantCreated: false,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockDetailsReader := services.NewMockUserDetailsReader(ctrl)
			mockDetailsWriter := services.NewMockUserDetailsWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			mockWriter.EXPECT().
				SaveIfAbsent(gomock.Any(), "John", "Doe", "john@example.com", fixedNow).
				Return(tt.created, tt.writerErr)

			if tt.expectEvent {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := services.NewOnboardingService(
				mockReader, mockWriter, mockDetailsReader, mockDetailsWriter, mockKafka, nowFn)

			created, err := svc.EnsureUser(context.Background(), claims)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestOnboardingService_EnsureUser_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockWriter.EXPECT().
		SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)

	svc := services.NewOnboardingService(nil, mockWriter, nil, nil, nil, nowFn)

	created, err := svc.EnsureUser(context.Background(), &oidc.Claims{Email: "x@example.com"})
	assert.NoError(t, err)
	assert.True(t, created)
}

func TestOnboardingService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "found",
			user: &models.UserDB{UserID: userID, Email: "john@example.com"},
		},
		{
			name:    "not found",
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "john@example.com").
				Return(tt.user, tt.readerErr)

			svc := services.NewOnboardingService(mockReader, nil, nil, nil, nil, nowFn)

			user, err := svc.GetUser(context.Background(), "john@example.com")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, userID, user.UserID)
		})
	}
}

func TestOnboardingService_GetDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "john@example.com"}
	details := &models.UserDetailsDB{UserID: userID, Gender: "male", Height: 180}

	tests := []struct {
		name       string
		user       *models.UserDB
		details    *models.UserDetailsDB
		detailsErr error
		wantErr    error
	}{
		{
			name:    "found",
			user:    user,
			details: details,
		},
		{
			name:    "user missing",
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "details missing",
			user:    user,
			wantErr: services.ErrDetailsNotFound,
		},
		{
			name:       "details read error",
			user:       user,
			detailsErr: errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockDetailsReader := services.NewMockUserDetailsReader(ctrl)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "john@example.com").
				Return(tt.user, nil)
			if tt.user != nil {
				mockDetailsReader.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(tt.details, tt.detailsErr)
			}

			svc := services.NewOnboardingService(mockReader, nil, mockDetailsReader, nil, nil, nowFn)

			got, err := svc.GetDetails(context.Background(), "john@example.com")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, details, got)
		})
	}
}

func TestOnboardingService_AddDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "john@example.com"}

	t.Run("inserts one row referencing the caller's id", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockDetailsWriter := services.NewMockUserDetailsWriter(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(user, nil)
		mockDetailsWriter.EXPECT().
			Save(gomock.Any(), userID, 180.0, 75.0, "male", "strength", 30, "upper").
			Return(nil)

		svc := services.NewOnboardingService(mockReader, nil, nil, mockDetailsWriter, nil, nowFn)

		err := svc.AddDetails(context.Background(), "john@example.com", 180, 75, "male", "strength", 30, "upper")
		assert.NoError(t, err)
	})

	t.Run("user missing", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(nil, nil)

		svc := services.NewOnboardingService(mockReader, nil, nil, nil, nil, nowFn)

		err := svc.AddDetails(context.Background(), "john@example.com", 180, 75, "male", "strength", 30, "upper")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockDetailsWriter := services.NewMockUserDetailsWriter(ctrl)

		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(user, nil)
		mockDetailsWriter.EXPECT().
			Save(gomock.Any(), userID, 180.0, 75.0, "male", "strength", 30, "upper").
			Return(errors.New("insert failed"))

		svc := services.NewOnboardingService(mockReader, nil, nil, mockDetailsWriter, nil, nowFn)

		err := svc.AddDetails(context.Background(), "john@example.com", 180, 75, "male", "strength", 30, "upper")
		assert.EqualError(t, err, "insert failed")
	})
}

func TestOnboardingService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.UserDB{
		{UserID: uuid.New(), Email: "a@example.com"},
		{UserID: uuid.New(), Email: "b@example.com"},
	}

	mockReader := services.NewMockUserReader(ctrl)
	mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

	svc := services.NewOnboardingService(mockReader, nil, nil, nil, nil, nowFn)

	got, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}
