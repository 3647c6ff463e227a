package repository_test

import (
	"context"
	"testing"
	"time"

	"guidely/internal/infra"
	"guidely/internal/infra/repository"
	repositorymock "guidely/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRatingStatsRepository_Recalc(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		recalcErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: stats row rebuilt"},
		{
			name:       "error: guide row missing",
			recalcErr:  &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{name: "error: database error", recalcErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRatingStatsWriteQueries(ctrl)
			db := mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries, db)
			guideID := uuid.New()

			mockQueries.EXPECT().RecalcGuideRatingStats(ctx, db, guideID, now).Return(tc.recalcErr)

			err := repo.Recalc(ctx, guideID, now)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
