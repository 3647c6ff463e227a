package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceColumns = `id, guide_id, name, duration_minutes, price_cents, active, created_at, updated_at`

func scanService(row pgx.Row) (Services, error) {
	var s Services
	err := row.Scan(&s.ID, &s.GuideID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const insertService = `INSERT INTO services (` + serviceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) InsertService(ctx context.Context, db DBTX, arg Services) error {
	_, err := db.Exec(ctx, insertService,
		arg.ID, arg.GuideID, arg.Name, arg.DurationMinutes, arg.PriceCents, arg.Active, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateService = `UPDATE services SET name = $2, duration_minutes = $3, price_cents = $4, active = $5, updated_at = $6
WHERE id = $1`

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg Services) (int64, error) {
	tag, err := db.Exec(ctx, updateService, arg.ID, arg.Name, arg.DurationMinutes, arg.PriceCents, arg.Active, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findServiceByID = `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

func (q *Queries) FindServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (Services, error) {
	return scanService(db.QueryRow(ctx, findServiceByID, id))
}

const listServicesByGuide = `SELECT ` + serviceColumns + ` FROM services
WHERE guide_id = $1 AND (NOT $2 OR active)
ORDER BY created_at, id`

func (q *Queries) ListServicesByGuide(ctx context.Context, db DBTX, guideID uuid.UUID, activeOnly bool) ([]Services, error) {
	rows, err := db.Query(ctx, listServicesByGuide, guideID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Services
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
