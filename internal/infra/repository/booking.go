package repository

import (
	"context"

	"guidely/internal/domain/booking"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

type BookingWriteQueries interface {
	FindBookingByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Bookings, error)
	InsertBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.Bookings) error
	UpdateBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}
	if err := r.queries.InsertBooking(ctx, r.db, row); err != nil {
		return classifyWriteErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking, expected booking.Status) error {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}
	n, err := r.queries.UpdateBooking(ctx, r.db, pgquery.UpdateBookingParams{
		Row:             row,
		ExpectedStatus:  expected.String(),
		ExpectedVersion: b.Version(),
	})
	if err != nil {
		return classifyWriteErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking changed since it was read", nil, infra.KindStale)
	}
	return nil
}

func classifyWriteErr(msg string, err error) error {
	switch {
	case pgconv.HasCode(err, pgconv.PgErrCodeExclusionViolation):
		return infra.WrapRepoErr("slot overlaps an active booking", err, infra.KindConflict)
	case pgconv.HasCode(err, pgconv.PgErrCodeUniqueViolation):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.HasCode(err, pgconv.PgErrCodeForeignKeyViolation):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
