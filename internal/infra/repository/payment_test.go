package repository_test

import (
	"context"
	"testing"
	"time"

	"guidely/internal/domain/payment"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository"
	"guidely/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentQueries struct {
	got pgquery.Payments
	err error
}

func (q *paymentQueries) UpsertPayment(ctx context.Context, _ pgquery.DBTX, arg pgquery.Payments) error {
	if _, ok := ctx.Deadline(); !ok {
		return errDBConnectionLost
	}
	q.got = arg
	return q.err
}

func TestPaymentRecorder_RecordPayment(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		upsertErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row written with the clock's time"},
		{
			name:       "error: unknown booking",
			upsertErr:  &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{name: "error: database error", upsertErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &paymentQueries{err: tc.upsertErr}
			rec := repository.NewPaymentRecorder(q, mockDBTX{}, clock.NewMockClock(now))
			bookingID := uuid.New()

			err := rec.RecordPayment(context.Background(), bookingID, 4500, payment.StatusPending)

			assert.Equal(t, pgquery.Payments{
				BookingID:   bookingID,
				AmountCents: 4500,
				Status:      string(payment.StatusPending),
				UpdatedAt:   now,
			}, q.got)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
