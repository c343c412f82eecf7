package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mtsfitness/fitness-backend/internal/models"
	"github.com/mtsfitness/fitness-backend/internal/services"
)

// 2025-03-05 is a Wednesday: male plan is Pectorals, Triceps, Abs.
var wednesday = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

func wednesdayFn() time.Time { return wednesday }

const suggestionLimit = 3

func suggestionFixtures() (*models.UserDB, *models.UserDetailsDB) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "john@example.com"}
	details := &models.UserDetailsDB{UserID: userID, Gender: "male"}
	return user, details
}

func TestSuggestionService_Suggest_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user, details := suggestionFixtures()

	mockUsers := services.NewMockUserReader(ctrl)
	mockDetails := services.NewMockUserDetailsReader(ctrl)
	mockCatalog := services.NewMockExerciseCatalogReader(ctrl)
	mockCache := services.NewMockExerciseCacheReader(ctrl)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil)
	mockDetails.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(details, nil)

	for _, muscle := range []string{"Pectorals", "Triceps", "Abs"} {
		payload := []byte(`[{"target":"` + muscle + `"}]`)
		mockCache.EXPECT().GetByTarget(gomock.Any(), muscle, suggestionLimit).
			Return(nil, errors.New("cache miss"))
		mockCatalog.EXPECT().GetByTarget(gomock.Any(), muscle, suggestionLimit).
			Return(payload, nil)
		mockCache.EXPECT().SetByTarget(gomock.Any(), muscle, suggestionLimit, payload).
			Return(nil)
	}

	svc := services.NewSuggestionService(mockUsers, mockDetails, mockCatalog, mockCache, suggestionLimit, wednesdayFn)

	result, err := svc.Suggest(context.Background(), "john@example.com")
	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, json.RawMessage(`[{"target":"Pectorals"}]`), result[0])
	assert.Equal(t, json.RawMessage(`[{"target":"Triceps"}]`), result[1])
	assert.Equal(t, json.RawMessage(`[{"target":"Abs"}]`), result[2])
}

func TestSuggestionService_Suggest_FailedCallIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user, details := suggestionFixtures()

	mockUsers := services.NewMockUserReader(ctrl)
	mockDetails := services.NewMockUserDetailsReader(ctrl)
	mockCatalog := services.NewMockExerciseCatalogReader(ctrl)
	mockCache := services.NewMockExerciseCacheReader(ctrl)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil)
	mockDetails.EXPECT().GetByUserID(gomock.Any(), user.UserID).Return(details, nil)

	mockCache.EXPECT().GetByTarget(gomock.Any(), gomock.Any(), suggestionLimit).
		Return(nil, errors.New("cache miss")).Times(3)

	mockCatalog.EXPECT().GetByTarget(gomock.Any(), "Pectorals", suggestionLimit).
		Return([]byte(`["p"]`), nil)
	// Middle call fails: its group is absent from the result, no error surfaces.
	mockCatalog.EXPECT().GetByTarget(gomock.Any(), "Triceps", suggestionLimit).
		Return(nil, errors.New("upstream 429"))
	mockCatalog.EXPECT().GetByTarget(gomock.Any(), "Abs", suggestionLimit).
		Return([]byte(`["a"]`), nil)

	mockCache.EXPECT().SetByTarget(gomock.Any(), "Pectorals", suggestionLimit, []byte(`["p"]`)).Return(nil)
	mockCache.EXPECT().SetByTarget(gomock.Any(), "Abs", suggestionLimit, []byte(`["a"]`)).Return(nil)

	svc := services.NewSuggestionService(mockUsers, mockDetails, mockCatalog, mockCache, suggestionLimit, wednesdayFn)

	result, err := svc.Suggest(context.Background(), "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []json.RawMessage{
		json.RawMessage(`["p"]`),
		json.RawMessage(`["a"]`),
	}, result)
}

func TestSuggestionService_Suggest_CacheHitSkipsCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "jane@example.com"}
	// Unrecognized gender falls back to the female plan.
	details := &models.UserDetailsDB{UserID: userID, Gender: "unspecified"}

	// Sunday: female plan is a single cardio group.
	sunday := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)

	mockUsers := services.NewMockUserReader(ctrl)
	mockDetails := services.NewMockUserDetailsReader(ctrl)
	mockCatalog := services.NewMockExerciseCatalogReader(ctrl)
	mockCache := services.NewMockExerciseCacheReader(ctrl)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(user, nil)
	mockDetails.EXPECT().GetByUserID(gomock.Any(), userID).Return(details, nil)

	mockCache.EXPECT().GetByTarget(gomock.Any(), "cardiovascular system", suggestionLimit).
		Return([]byte(`["cached"]`), nil)

	svc := services.NewSuggestionService(mockUsers, mockDetails, mockCatalog, mockCache, suggestionLimit,
		func() time.Time { return sunday })

	result, err := svc.Suggest(context.Background(), "jane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []json.RawMessage{json.RawMessage(`["cached"]`)}, result)
}

func TestSuggestionService_Suggest_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "john@example.com"}

	tests := []struct {
		name       string
		user       *models.UserDB
		userErr    error
		details    *models.UserDetailsDB
		detailsErr error
		wantErr    error
	}{
		{
			name:    "user not found",
			wantErr: services.ErrUserNotFound,
		},
		{
			name:    "user read error",
			userErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
		{
			name:    "details not found",
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
			mockUsers := services.NewMockUserReader(ctrl)
			mockDetails := services.NewMockUserDetailsReader(ctrl)

			mockUsers.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
				Return(tt.user, tt.userErr)
			if tt.user != nil && tt.userErr == nil {
				mockDetails.EXPECT().GetByUserID(gomock.Any(), userID).
					Return(tt.details, tt.detailsErr)
			}

			svc := services.NewSuggestionService(mockUsers, mockDetails, nil, nil, suggestionLimit, wednesdayFn)

			result, err := svc.Suggest(context.Background(), "john@example.com")
			assert.EqualError(t, err, tt.wantErr.Error())
			assert.Nil(t, result)
		})
	}
}
