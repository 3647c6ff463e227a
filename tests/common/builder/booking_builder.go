package builder

import (
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	"guidely/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	record booking.Record
}

// NewBookingBuilder starts from a pending hour-long paid booking on
// 2026-03-02 09:00 UTC.
func NewBookingBuilder() *BookingBuilder {
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		record: booking.Record{
			ID:             uuid.New(),
			LearnerID:      uuid.New(),
			GuideID:        uuid.New(),
			ServiceID:      uuid.New(),
			Service:        booking.ServiceSnapshot{Name: "Go code review", DurationMinutes: 60, PriceCents: 4500},
			ScheduledStart: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Status:         booking.StatusPending,
			Achievements:   []string{},
			CreatedAt:      created,
			UpdatedAt:      created,
		},
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.record.ID = id
	return b
}

func (b *BookingBuilder) WithLearner(id uuid.UUID) *BookingBuilder {
	b.record.LearnerID = id
	return b
}

func (b *BookingBuilder) WithGuide(id uuid.UUID) *BookingBuilder {
	b.record.GuideID = id
	return b
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.record.ServiceID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.record.Status = s
	return b
}

func (b *BookingBuilder) WithStart(t time.Time) *BookingBuilder {
	b.record.ScheduledStart = t
	return b
}

func (b *BookingBuilder) WithDuration(minutes int) *BookingBuilder {
	b.record.Service.DurationMinutes = minutes
	return b
}

func (b *BookingBuilder) WithPrice(cents int64) *BookingBuilder {
	b.record.Service.PriceCents = cents
	return b
}

func (b *BookingBuilder) WithRating(score int) *BookingBuilder {
	b.record.Rating = &booking.Rating{Score: score, RatedAt: b.record.ScheduledStart}
	return b
}

func (b *BookingBuilder) WithStartedAt(t time.Time) *BookingBuilder {
	b.record.StartedAt = &t
	return b
}

func (b *BookingBuilder) Learner() user.Actor {
	return user.Actor{UserID: b.record.LearnerID, Role: user.RoleLearner}
}

func (b *BookingBuilder) Guide() user.Actor {
	return user.Actor{UserID: b.record.GuideID, Role: user.RoleGuide}
}

func (b *BookingBuilder) Record() booking.Record {
	return b.record
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(b.record)
}

// BuildView renders the booking as the read side would at now.
func (b *BookingBuilder) BuildView(now time.Time) *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain(), now)
}
