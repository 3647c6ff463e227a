package commands_test

import (
	"testing"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/service"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"
	"guidely/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	// Friday; the guide works Monday mornings
	fixtureNow  = time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)
	nextMonday  = availability.Date{Year: 2026, Month: time.March, Day: 2}
	mondayAt9   = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	mondayAt10  = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	servicePaid = int64(4500)
)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	payments *memstore.Payments
	queue    *memstore.RetryQueue
	notifier *memstore.Notifier
	cfg      config.BookingConfig

	bookings     commands.BookingCommands
	sweeper      commands.SweepCommands
	availability commands.AvailabilityCommands
	services     commands.ServiceCommands
	paymentsUC   commands.PaymentCommands
	slots        queries.AvailabilityQueries

	guide   user.Actor
	learner user.Actor
	svc     *service.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.NewTestConfig().Booking
	f := &fixture{
		store:    memstore.New(t),
		clock:    clock.NewMockClock(fixtureNow),
		payments: memstore.NewPayments(),
		queue:    &memstore.RetryQueue{},
		notifier: &memstore.Notifier{},
		cfg:      cfg,
		guide:    user.Actor{UserID: uuid.New(), Role: user.RoleGuide},
		learner:  user.Actor{UserID: uuid.New(), Role: user.RoleLearner},
	}

	planner := shared.NewSlotPlanner(f.clock, cfg)
	f.bookings = commands.NewBookingUseCase(f.store, planner, f.notifier, f.payments, f.queue, f.clock, cfg)
	f.sweeper = commands.NewSweeperUseCase(f.store, f.payments, f.queue, f.clock)
	f.availability = commands.NewAvailabilityUseCase(f.store, f.clock, cfg)
	f.services = commands.NewServiceUseCase(f.store, f.clock)
	f.paymentsUC = commands.NewPaymentUseCase(f.payments, f.queue)
	f.slots = queries.NewAvailabilityQueries(f.store, planner)

	monday, err := availability.NewTimeRange("09:00", "11:00")
	require.NoError(t, err)
	w, err := availability.NewWeeklyAvailability(f.guide.UserID, "UTC",
		map[time.Weekday][]availability.TimeRange{time.Monday: {monday}}, fixtureNow)
	require.NoError(t, err)
	f.store.PutWeekly(w)

	f.svc, err = service.NewService(f.guide.UserID, "Career review", 60, servicePaid, fixtureNow)
	require.NoError(t, err)
	f.store.PutService(f.svc)

	return f
}

func (f *fixture) otherLearner() user.Actor {
	return user.Actor{UserID: uuid.New(), Role: user.RoleLearner}
}

func (f *fixture) mondaySlots(t *testing.T) []queries.SlotView {
	t.Helper()
	plan, err := f.slots.GenerateSlots(t.Context(), queries.SlotsInput{
		GuideID:         f.guide.UserID,
		DurationMinutes: 60,
		From:            nextMonday,
		Days:            1,
	})
	require.NoError(t, err)
	require.Len(t, plan.Days, 1)
	return plan.Days[0].Slots
}

func slotStarts(slots []queries.SlotView) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime+"-"+s.EndTime)
	}
	return out
}

func (f *fixture) book(t *testing.T, learner user.Actor, start time.Time) uuid.UUID {
	t.Helper()
	v, err := f.bookings.Initiate(t.Context(), learner, commands.InitiateBookingInput{
		ServiceID: f.svc.ID(),
		Start:     start,
	})
	require.NoError(t, err)
	return v.ID
}

// confirmed books 09:00 Monday and confirms it.
func (f *fixture) confirmed(t *testing.T) uuid.UUID {
	t.Helper()
	id := f.book(t, f.learner, mondayAt9)
	_, err := f.bookings.Confirm(t.Context(), f.guide, commands.ConfirmBookingInput{BookingID: id})
	require.NoError(t, err)
	return id
}

// inProgress moves the clock into the start window of a confirmed 09:00
// booking and starts it.
func (f *fixture) inProgress(t *testing.T) uuid.UUID {
	t.Helper()
	id := f.confirmed(t)
	f.clock.Set(mondayAt9.Add(-5 * time.Minute))
	_, err := f.bookings.Start(t.Context(), f.guide, id)
	require.NoError(t, err)
	return id
}

func blockedMonday(guideID uuid.UUID) availability.UnavailableDate {
	return availability.UnavailableDate{
		GuideID:   guideID,
		Date:      nextMonday,
		Reason:    "conference",
		CreatedAt: fixtureNow,
	}
}
