package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtsfitness/fitness-backend/internal/handlers"
)

func TestMuscleExercisesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		muscle         string
		setupMocks     func(catalog *handlers.MockCatalogReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "successful pass-through",
			muscle: "biceps",
			setupMocks: func(catalog *handlers.MockCatalogReader) {
				catalog.EXPECT().GetByTarget(gomock.Any(), "biceps", 10).
					Return([]byte(`[{"name":"barbell curl"}]`), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"name":"barbell curl"}]`,
		},
		{
			name:   "catalog unavailable",
			muscle: "lats",
			setupMocks: func(catalog *handlers.MockCatalogReader) {
				catalog.EXPECT().GetByTarget(gomock.Any(), "lats", 10).
					Return(nil, errors.New("upstream 429"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"message":"Failed to retrieve exercises"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := handlers.NewMockCatalogReader(ctrl)
			tt.setupMocks(catalog)

			router := chi.NewRouter()
			router.Get("/api/exercises/muscles/{muscle}", handlers.NewMuscleExercisesHandler(catalog))

			req := httptest.NewRequest(http.MethodGet, "/api/exercises/muscles/"+tt.muscle, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
