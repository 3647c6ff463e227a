package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, learner_id, guide_id, service_id, service_name, duration_minutes, price_cents,
	scheduled_start, scheduled_end, status, meeting_link, rating, feedback, session_notes, achievements,
	cancellation_reason, cancelled_by, started_at, completed_at, reschedule_history, created_at, updated_at, version`

func scanBooking(row pgx.Row) (Bookings, error) {
	var b Bookings
	err := row.Scan(
		&b.ID, &b.LearnerID, &b.GuideID, &b.ServiceID, &b.ServiceName, &b.DurationMinutes, &b.PriceCents,
		&b.ScheduledStart, &b.ScheduledEnd, &b.Status, &b.MeetingLink, &b.Rating, &b.Feedback, &b.SessionNotes, &b.Achievements,
		&b.CancellationReason, &b.CancelledBy, &b.StartedAt, &b.CompletedAt, &b.RescheduleHistory, &b.CreatedAt, &b.UpdatedAt, &b.Version,
	)
	return b, err
}

func collectBookings(rows pgx.Rows) ([]Bookings, error) {
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const insertBooking = `INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg Bookings) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID, arg.LearnerID, arg.GuideID, arg.ServiceID, arg.ServiceName, arg.DurationMinutes, arg.PriceCents,
		arg.ScheduledStart, arg.ScheduledEnd, arg.Status, arg.MeetingLink, arg.Rating, arg.Feedback, arg.SessionNotes, arg.Achievements,
		arg.CancellationReason, arg.CancelledBy, arg.StartedAt, arg.CompletedAt, arg.RescheduleHistory, arg.CreatedAt, arg.UpdatedAt, arg.Version,
	)
	return err
}

const updateBooking = `UPDATE bookings SET
	scheduled_start = $2,
	scheduled_end = $3,
	status = $4,
	meeting_link = $5,
	rating = $6,
	feedback = $7,
	session_notes = $8,
	achievements = $9,
	cancellation_reason = $10,
	cancelled_by = $11,
	started_at = $12,
	completed_at = $13,
	reschedule_history = $14,
	updated_at = $15,
	version = version + 1
WHERE id = $1 AND status = $16 AND version = $17`

// UpdateBooking returns the number of rows written; 0 means the stored row
// no longer carries the expected status and version.
func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	r := arg.Row
	tag, err := db.Exec(ctx, updateBooking,
		r.ID, r.ScheduledStart, r.ScheduledEnd, r.Status, r.MeetingLink, r.Rating, r.Feedback, r.SessionNotes,
		r.Achievements, r.CancellationReason, r.CancelledBy, r.StartedAt, r.CompletedAt, r.RescheduleHistory, r.UpdatedAt,
		arg.ExpectedStatus, arg.ExpectedVersion,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) FindBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findBookingByID, id))
}

const listBookings = `SELECT ` + bookingColumns + ` FROM bookings
WHERE ($1::uuid IS NULL OR learner_id = $1 OR guide_id = $1)
  AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
  AND ($3::timestamptz IS NULL OR (scheduled_start, id) < ($3, $4::uuid))
ORDER BY scheduled_start DESC, id DESC
LIMIT $5`

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Bookings, error) {
	var before any
	if !arg.BeforeStart.IsZero() {
		before = arg.BeforeStart
	}
	statuses := arg.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := db.Query(ctx, listBookings, nullableUUID(arg.ParticipantID), statuses, before, arg.BeforeID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Pending rows are due once their start passed, confirmed and in-progress
// rows once their window closed.
const listSweepCandidates = `SELECT ` + bookingColumns + ` FROM bookings
WHERE ($2::uuid IS NULL OR learner_id = $2 OR guide_id = $2)
  AND (
    (status = 'pending' AND scheduled_start <= $1)
    OR (status IN ('confirmed', 'in-progress') AND scheduled_end <= $1)
  )
ORDER BY scheduled_start
LIMIT $3`

func (q *Queries) ListSweepCandidates(ctx context.Context, db DBTX, arg ListSweepCandidatesParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listSweepCandidates, arg.Now, nullableUUID(arg.ParticipantID), arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBusyWindows = `SELECT scheduled_start, scheduled_end FROM bookings
WHERE guide_id = $1
  AND status IN ('pending', 'confirmed', 'in-progress')
  AND tstzrange(scheduled_start, scheduled_end, '[)') && tstzrange($2, $3, '[)')
  AND ($4::uuid IS NULL OR id <> $4)
ORDER BY scheduled_start`

func (q *Queries) ListBusyWindows(ctx context.Context, db DBTX, arg ListBusyWindowsParams) ([]BusyWindow, error) {
	rows, err := db.Query(ctx, listBusyWindows, arg.GuideID, arg.From, arg.To, nullableUUID(arg.ExcludeID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BusyWindow
	for rows.Next() {
		var w BusyWindow
		if err := rows.Scan(&w.ScheduledStart, &w.ScheduledEnd); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func nullableUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
