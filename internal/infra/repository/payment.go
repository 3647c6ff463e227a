package repository

import (
	"context"
	"time"

	"guidely/internal/domain/payment"
	"guidely/internal/infra/pgquery"
	"guidely/internal/pkg/clock"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	UpsertPayment(ctx context.Context, db pgquery.DBTX, arg pgquery.Payments) error
}

// PaymentRecorder writes payment rows outside the booking transaction.
type PaymentRecorder struct {
	queries PaymentWriteQueries
	db      pgquery.DBTX
	clock   clock.Clock
	timeout time.Duration
}

func NewPaymentRecorder(queries PaymentWriteQueries, db pgquery.DBTX, clk clock.Clock) *PaymentRecorder {
	return &PaymentRecorder{queries: queries, db: db, clock: clk, timeout: 5 * time.Second}
}

func (r *PaymentRecorder) RecordPayment(ctx context.Context, bookingID uuid.UUID, amountCents int64, status payment.Status) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.queries.UpsertPayment(ctx, r.db, pgquery.Payments{
		BookingID:   bookingID,
		AmountCents: amountCents,
		Status:      string(status),
		UpdatedAt:   r.clock.Now(),
	})
	if err != nil {
		return classifyWriteErr("failed to record payment", err)
	}
	return nil
}
