package pgquery

import "context"

const upsertPayment = `INSERT INTO payments (booking_id, amount_cents, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (booking_id) DO UPDATE SET
	amount_cents = EXCLUDED.amount_cents,
	status = EXCLUDED.status,
	updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertPayment(ctx context.Context, db DBTX, arg Payments) error {
	_, err := db.Exec(ctx, upsertPayment, arg.BookingID, arg.AmountCents, arg.Status, arg.UpdatedAt)
	return err
}
