package repository_test

import (
	"context"
	"errors"
	"testing"

	"guidely/internal/domain/booking"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository"
	"guidely/internal/pkg/errs"
	"guidely/tests/common/builder"
	repositorymock "guidely/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }

func (mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		insertErr  error
		expectKind infra.RepositoryErrorKind
		category   error
	}{
		{
			name: "success: booking inserted",
		},
		{
			name:       "error: overlapping window hits the exclusion constraint",
			insertErr:  &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_guide_no_overlap"},
			expectKind: infra.KindConflict,
			category:   errs.ErrSlotUnavailable,
		},
		{
			name:       "error: duplicate id",
			insertErr:  &pgconn.PgError{Code: "23505"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: unknown service",
			insertErr:  &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database error",
			insertErr:  errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			db := mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, db)
			b := builder.NewBookingBuilder().BuildDomain()

			mockQueries.EXPECT().InsertBooking(ctx, db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, row pgquery.Bookings) error {
					assert.Equal(t, b.ID(), row.ID)
					assert.Equal(t, b.ScheduledEnd(), row.ScheduledEnd)
					assert.Equal(t, "pending", row.Status)
					return tc.insertErr
				})

			err := repo.Create(ctx, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			if tc.category != nil {
				assert.True(t, errs.Is(err, tc.category))
			}
		})
	}
}

// =============================================================================
// Update Booking Tests
// =============================================================================

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		updateErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row written", rows: 1},
		{name: "error: status or version moved on", rows: 0, expectKind: infra.KindStale},
		{
			name:       "error: rescheduled onto a taken window",
			updateErr:  &pgconn.PgError{Code: "23P01"},
			expectKind: infra.KindConflict,
		},
		{name: "error: database error", updateErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			db := mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, db)

			rec := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).Record()
			rec.Version = 3
			b := booking.Reconstruct(rec)

			mockQueries.EXPECT().UpdateBooking(ctx, db, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateBookingParams) (int64, error) {
					assert.Equal(t, "pending", arg.ExpectedStatus)
					assert.Equal(t, int64(3), arg.ExpectedVersion)
					assert.Equal(t, "confirmed", arg.Row.Status)
					return tc.rows, tc.updateErr
				})

			err := repo.Update(ctx, b, booking.StatusPending)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	repo := repository.NewBookingRepository(mockQueries, mockDBTX{})
	b := builder.NewBookingBuilder().BuildDomain()

	mockQueries.EXPECT().FindBookingByID(ctx, gomock.Any(), b.ID()).Return(pgquery.Bookings{}, pgx.ErrNoRows)

	_, err := repo.FindByID(ctx, b.ID())

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
