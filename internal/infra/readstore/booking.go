package readstore

import (
	"context"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/booking"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
	"guidely/internal/pkg/pgconv"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

type BookingReadQueries interface {
	FindBookingByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Bookings, error)
	ListBookings(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBookingsParams) ([]pgquery.Bookings, error)
	ListSweepCandidates(ctx context.Context, db pgquery.DBTX, arg pgquery.ListSweepCandidatesParams) ([]pgquery.Bookings, error)
	ListBusyWindows(ctx context.Context, db pgquery.DBTX, arg pgquery.ListBusyWindowsParams) ([]pgquery.BusyWindow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
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

func (r *BookingReadStore) List(ctx context.Context, q queries.BookingListQuery) ([]*booking.Booking, error) {
	statuses := make([]string, 0, len(q.Statuses))
	for _, s := range q.Statuses {
		statuses = append(statuses, s.String())
	}
	rows, err := r.queries.ListBookings(ctx, r.db, pgquery.ListBookingsParams{
		ParticipantID: q.ParticipantID,
		Statuses:      statuses,
		BeforeStart:   q.BeforeStart,
		BeforeID:      q.BeforeID,
		Limit:         int32(q.Limit), // #nosec G115 -- bounded by queries.MaxListLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return decodeBookings(rows)
}

func (r *BookingReadStore) SweepCandidates(ctx context.Context, q shared.SweepQuery) ([]*booking.Booking, error) {
	rows, err := r.queries.ListSweepCandidates(ctx, r.db, pgquery.ListSweepCandidatesParams{
		Now:           q.Now,
		ParticipantID: q.ParticipantID,
		Limit:         int32(q.Limit), // #nosec G115 -- sweep batch size
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sweep candidates", err)
	}
	return decodeBookings(rows)
}

func (r *BookingReadStore) BusyWindows(ctx context.Context, guideID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]availability.Window, error) {
	rows, err := r.queries.ListBusyWindows(ctx, r.db, pgquery.ListBusyWindowsParams{
		GuideID:   guideID,
		From:      from,
		To:        to,
		ExcludeID: exclude,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy windows", err)
	}
	out := make([]availability.Window, 0, len(rows))
	for _, w := range rows {
		out = append(out, availability.Window{Start: w.ScheduledStart, End: w.ScheduledEnd})
	}
	return out, nil
}

func decodeBookings(rows []pgquery.Bookings) ([]*booking.Booking, error) {
	items, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return items, nil
}
