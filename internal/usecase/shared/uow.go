package shared

import (
	"context"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/booking"
	"guidely/internal/domain/service"
	"guidely/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Pool-backed reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Availability() AvailabilityRepository
	Services() ServiceRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
}

// CommandReads is the read surface the write side validates against.
// Lookups of a single row return a NOT_FOUND repository error when absent,
// except WeeklyAvailability which returns nil for a guide without a schedule.
type CommandReads interface {
	SlotSource
	ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Contact(ctx context.Context, userID uuid.UUID) (user.Contact, error)
	SweepCandidates(ctx context.Context, q SweepQuery) ([]*booking.Booking, error)
}

type SlotSource interface {
	WeeklyAvailability(ctx context.Context, guideID uuid.UUID) (*availability.WeeklyAvailability, error)
	// UnavailableDates lists blocked dates in [from, to). A zero to leaves
	// the range open.
	UnavailableDates(ctx context.Context, guideID uuid.UUID, from, to availability.Date) ([]availability.UnavailableDate, error)
	// BusyWindows lists active booking windows overlapping [from, to).
	// exclude skips one booking, uuid.Nil skips none.
	BusyWindows(ctx context.Context, guideID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]availability.Window, error)
}

type SweepQuery struct {
	Now time.Time
	// uuid.Nil sweeps every participant
	ParticipantID uuid.UUID
	Limit         int
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Create fails with a CONFLICT repository error when the window
	// overlaps another active booking of the guide.
	Create(ctx context.Context, b *booking.Booking) error
	// Update writes b only if the stored row still carries expected and
	// b's version, and fails with a STALE repository error otherwise.
	Update(ctx context.Context, b *booking.Booking, expected booking.Status) error
}

type AvailabilityRepository interface {
	UpsertWeekly(ctx context.Context, w *availability.WeeklyAvailability) error
	AddUnavailableDate(ctx context.Context, d availability.UnavailableDate) error
	RemoveUnavailableDate(ctx context.Context, guideID uuid.UUID, date availability.Date) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *service.Service) error
	Update(ctx context.Context, s *service.Service) error
}

type RatingStatsRepository interface {
	// Recalc rebuilds the guide's rating stats from the ratings written so
	// far in the same transaction.
	Recalc(ctx context.Context, guideID uuid.UUID, now time.Time) error
}
