package repository

import (
	"context"

	"guidely/internal/domain/availability"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/repository/availability.go -package=repositorymock

type AvailabilityWriteQueries interface {
	UpsertWeeklyAvailability(ctx context.Context, db pgquery.DBTX, arg pgquery.WeeklyAvailability) error
	UpsertUnavailableDate(ctx context.Context, db pgquery.DBTX, arg pgquery.UnavailableDates) error
	DeleteUnavailableDate(ctx context.Context, db pgquery.DBTX, guideID uuid.UUID, date pgtype.Date) (int64, error)
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
	db      pgquery.DBTX
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries, db pgquery.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{queries: queries, db: db}
}

func (r *AvailabilityRepository) UpsertWeekly(ctx context.Context, w *availability.WeeklyAvailability) error {
	row, err := converter.WeeklyToRow(w)
	if err != nil {
		return infra.WrapRepoErr("failed to encode weekly availability", err)
	}
	if err := r.queries.UpsertWeeklyAvailability(ctx, r.db, row); err != nil {
		return classifyWriteErr("failed to save weekly availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) AddUnavailableDate(ctx context.Context, d availability.UnavailableDate) error {
	if err := r.queries.UpsertUnavailableDate(ctx, r.db, converter.UnavailableDateToRow(d)); err != nil {
		return classifyWriteErr("failed to add unavailable date", err)
	}
	return nil
}

func (r *AvailabilityRepository) RemoveUnavailableDate(ctx context.Context, guideID uuid.UUID, date availability.Date) error {
	n, err := r.queries.DeleteUnavailableDate(ctx, r.db, guideID, pgconv.DateToPgtype(date))
	if err != nil {
		return infra.WrapRepoErr("failed to remove unavailable date", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("date "+date.String()+" is not blocked", nil, infra.KindNotFound)
	}
	return nil
}
