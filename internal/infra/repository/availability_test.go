package repository_test

import (
	"context"
	"testing"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository"
	"guidely/internal/pkg/errs"
	repositorymock "guidely/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityRepository_UpsertWeekly(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockAvailabilityWriteQueries(ctrl)
	repo := repository.NewAvailabilityRepository(mockQueries, mockDBTX{})

	morning, err := availability.NewTimeRange("09:00", "11:00")
	require.NoError(t, err)
	w, err := availability.NewWeeklyAvailability(uuid.New(), "Asia/Tokyo",
		map[time.Weekday][]availability.TimeRange{time.Tuesday: {morning}}, time.Now())
	require.NoError(t, err)

	mockQueries.EXPECT().UpsertWeeklyAvailability(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgquery.DBTX, row pgquery.WeeklyAvailability) error {
			assert.Equal(t, w.GuideID(), row.GuideID)
			assert.Equal(t, "Asia/Tokyo", row.Timezone)
			assert.JSONEq(t, `{"tuesday":[{"start":540,"end":660}]}`, string(row.Days))
			return nil
		})

	assert.NoError(t, repo.UpsertWeekly(ctx, w))
}

func TestAvailabilityRepository_RemoveUnavailableDate(t *testing.T) {
	ctx := context.Background()
	guideID := uuid.New()
	date := availability.Date{Year: 2026, Month: time.March, Day: 9}

	testCases := []struct {
		name       string
		deleted    int64
		deleteErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: date unblocked", deleted: 1},
		{name: "error: date was not blocked", deleted: 0, expectKind: infra.KindNotFound},
		{name: "error: database error", deleteErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockAvailabilityWriteQueries(ctrl)
			repo := repository.NewAvailabilityRepository(mockQueries, mockDBTX{})

			mockQueries.EXPECT().DeleteUnavailableDate(ctx, gomock.Any(), guideID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, _ uuid.UUID, d pgtype.Date) (int64, error) {
					assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), d.Time)
					return tc.deleted, tc.deleteErr
				})

			err := repo.RemoveUnavailableDate(ctx, guideID, date)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
			if tc.expectKind == infra.KindNotFound {
				assert.True(t, errs.Is(err, errs.ErrNotFound))
			}
		})
	}
}
