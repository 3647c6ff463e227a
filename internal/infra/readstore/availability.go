package readstore

import (
	"context"

	"guidely/internal/domain/availability"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/readstore/availability.go -package=readstoremock

type AvailabilityReadQueries interface {
	FindWeeklyAvailability(ctx context.Context, db pgquery.DBTX, guideID uuid.UUID) (pgquery.WeeklyAvailability, error)
	ListUnavailableDates(ctx context.Context, db pgquery.DBTX, arg pgquery.ListUnavailableDatesParams) ([]pgquery.UnavailableDates, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      pgquery.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db pgquery.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{queries: queries, db: db}
}

// WeeklyAvailability returns nil without error for a guide that never saved
// a schedule.
func (r *AvailabilityReadStore) WeeklyAvailability(ctx context.Context, guideID uuid.UUID) (*availability.WeeklyAvailability, error) {
	row, err := r.queries.FindWeeklyAvailability(ctx, r.db, guideID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find weekly availability", err)
	}
	w, err := converter.WeeklyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode weekly availability", err)
	}
	return w, nil
}

func (r *AvailabilityReadStore) UnavailableDates(ctx context.Context, guideID uuid.UUID, from, to availability.Date) ([]availability.UnavailableDate, error) {
	rows, err := r.queries.ListUnavailableDates(ctx, r.db, pgquery.ListUnavailableDatesParams{
		GuideID: guideID,
		From:    pgconv.DateToPgtype(from),
		To:      pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable dates", err)
	}
	out := make([]availability.UnavailableDate, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.UnavailableDateFromRow(row))
	}
	return out, nil
}
