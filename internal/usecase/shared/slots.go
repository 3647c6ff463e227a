package shared

import (
	"context"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"

	"github.com/google/uuid"
)

type SlotQuery struct {
	GuideID         uuid.UUID
	DurationMinutes int
	// zero means today in the guide's timezone
	From           availability.Date
	Days           int
	ExcludeBooking uuid.UUID
}

// SlotPlanner loads a guide's schedule, blocked dates and busy windows and
// feeds them to availability.GenerateSlots.
type SlotPlanner struct {
	clock      clock.Clock
	policy     availability.SlotPolicy
	defaultLoc *time.Location
}

func NewSlotPlanner(clk clock.Clock, cfg config.BookingConfig) *SlotPlanner {
	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return &SlotPlanner{
		clock: clk,
		policy: availability.SlotPolicy{
			MinLeadTime:  cfg.MinLeadTime,
			MaxDaysAhead: cfg.MaxDaysAhead,
		},
		defaultLoc: loc,
	}
}

func (p *SlotPlanner) DefaultLocation() *time.Location { return p.defaultLoc }

func (p *SlotPlanner) Plan(ctx context.Context, src SlotSource, q SlotQuery) (availability.SlotPlan, error) {
	if err := p.policy.Validate(q.DurationMinutes, q.Days); err != nil {
		return availability.SlotPlan{}, err
	}

	schedule, err := src.WeeklyAvailability(ctx, q.GuideID)
	if err != nil {
		return availability.SlotPlan{}, err
	}
	loc := p.locationOf(schedule)

	if q.From.IsZero() {
		q.From = availability.DateOf(p.clock.Now().In(loc))
	}
	return p.generate(ctx, src, schedule, loc, q)
}

// Offers reports whether start begins a slot the guide currently offers for
// the given duration. ExcludeBooking lets a booking move within its own
// window.
func (p *SlotPlanner) Offers(ctx context.Context, src SlotSource, guideID uuid.UUID, durationMinutes int, start time.Time, exclude uuid.UUID) (bool, error) {
	schedule, err := src.WeeklyAvailability(ctx, guideID)
	if err != nil {
		return false, err
	}
	loc := p.locationOf(schedule)

	today := availability.DateOf(p.clock.Now().In(loc))
	date := availability.DateOf(start.In(loc))
	if date.Before(today) {
		return false, nil
	}
	if p.policy.MaxDaysAhead > 0 && !date.Before(today.AddDays(p.policy.MaxDaysAhead)) {
		return false, nil
	}

	plan, err := p.generate(ctx, src, schedule, loc, SlotQuery{
		GuideID:         guideID,
		DurationMinutes: durationMinutes,
		From:            date,
		Days:            1,
		ExcludeBooking:  exclude,
	})
	if err != nil {
		return false, err
	}
	_, ok := plan.Find(start)
	return ok, nil
}

func (p *SlotPlanner) locationOf(schedule *availability.WeeklyAvailability) *time.Location {
	if schedule != nil {
		return schedule.Location()
	}
	return p.defaultLoc
}

func (p *SlotPlanner) generate(ctx context.Context, src SlotSource, schedule *availability.WeeklyAvailability, loc *time.Location, q SlotQuery) (availability.SlotPlan, error) {
	until := q.From.AddDays(q.Days)

	blockedDates, err := src.UnavailableDates(ctx, q.GuideID, q.From, until)
	if err != nil {
		return availability.SlotPlan{}, err
	}
	blocked := make([]availability.Date, 0, len(blockedDates))
	for _, d := range blockedDates {
		blocked = append(blocked, d.Date)
	}

	busy, err := src.BusyWindows(ctx, q.GuideID, q.From.At(0, loc), until.At(0, loc), q.ExcludeBooking)
	if err != nil {
		return availability.SlotPlan{}, err
	}

	return availability.GenerateSlots(availability.SlotRequest{
		Schedule:        schedule,
		Blocked:         blocked,
		Busy:            busy,
		DurationMinutes: q.DurationMinutes,
		From:            q.From,
		Days:            q.Days,
		Now:             p.clock.Now(),
		Location:        loc,
		Policy:          p.policy,
	})
}
