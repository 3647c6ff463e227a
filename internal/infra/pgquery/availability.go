package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertWeeklyAvailability = `INSERT INTO weekly_availability (guide_id, timezone, days, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (guide_id) DO UPDATE SET
	timezone = EXCLUDED.timezone,
	days = EXCLUDED.days,
	updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertWeeklyAvailability(ctx context.Context, db DBTX, arg WeeklyAvailability) error {
	_, err := db.Exec(ctx, upsertWeeklyAvailability, arg.GuideID, arg.Timezone, arg.Days, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const findWeeklyAvailability = `SELECT guide_id, timezone, days, created_at, updated_at
FROM weekly_availability WHERE guide_id = $1`

func (q *Queries) FindWeeklyAvailability(ctx context.Context, db DBTX, guideID uuid.UUID) (WeeklyAvailability, error) {
	var w WeeklyAvailability
	err := db.QueryRow(ctx, findWeeklyAvailability, guideID).Scan(&w.GuideID, &w.Timezone, &w.Days, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

// Re-adding a date keeps the original row and refreshes its reason.
const upsertUnavailableDate = `INSERT INTO unavailable_dates (guide_id, date, reason, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (guide_id, date) DO UPDATE SET reason = EXCLUDED.reason`

func (q *Queries) UpsertUnavailableDate(ctx context.Context, db DBTX, arg UnavailableDates) error {
	_, err := db.Exec(ctx, upsertUnavailableDate, arg.GuideID, arg.Date, arg.Reason, arg.CreatedAt)
	return err
}

const deleteUnavailableDate = `DELETE FROM unavailable_dates WHERE guide_id = $1 AND date = $2`

func (q *Queries) DeleteUnavailableDate(ctx context.Context, db DBTX, guideID uuid.UUID, date pgtype.Date) (int64, error) {
	tag, err := db.Exec(ctx, deleteUnavailableDate, guideID, date)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listUnavailableDates = `SELECT guide_id, date, reason, created_at FROM unavailable_dates
WHERE guide_id = $1
  AND ($2::date IS NULL OR date >= $2)
  AND ($3::date IS NULL OR date < $3)
ORDER BY date`

func (q *Queries) ListUnavailableDates(ctx context.Context, db DBTX, arg ListUnavailableDatesParams) ([]UnavailableDates, error) {
	rows, err := db.Query(ctx, listUnavailableDates, arg.GuideID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []UnavailableDates
	for rows.Next() {
		var d UnavailableDates
		if err := rows.Scan(&d.GuideID, &d.Date, &d.Reason, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
