package queries

import (
	"context"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

const DefaultSlotDays = 7

var (
	ErrScheduleNotFound    = errs.Mark(errs.New("guide has no weekly schedule"), errs.ErrNotFound)
	ErrDurationOrService   = errs.Mark(errs.New("either duration or serviceId is required"), errs.ErrValidation)
	ErrServiceOfOtherGuide = errs.Mark(errs.New("service belongs to another guide"), errs.ErrValidation)
)

type TimeRangeView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayScheduleView struct {
	Day    string          `json:"day"`
	Ranges []TimeRangeView `json:"ranges"`
}

type WeeklyAvailabilityView struct {
	GuideID   uuid.UUID         `json:"guide_id"`
	Timezone  string            `json:"timezone"`
	Days      []DayScheduleView `json:"days"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type UnavailableDateView struct {
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotView struct {
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	FullStart time.Time `json:"full_start"`
	FullEnd   time.Time `json:"full_end"`
}

type DaySlotsView struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Blocked bool       `json:"blocked"`
	Slots   []SlotView `json:"slots"`
}

type SlotPlanView struct {
	GuideID         uuid.UUID      `json:"guide_id"`
	Configured      bool           `json:"configured"`
	Timezone        string         `json:"timezone"`
	DurationMinutes int            `json:"duration_minutes"`
	ServiceID       *uuid.UUID     `json:"service_id,omitempty"`
	Days            []DaySlotsView `json:"days"`
}

type SlotsInput struct {
	GuideID         uuid.UUID
	DurationMinutes int
	// uuid.Nil when DurationMinutes is given
	ServiceID uuid.UUID
	From      availability.Date
	Days      int
}

type AvailabilityQueries interface {
	GetWeekly(ctx context.Context, guideID uuid.UUID) (*WeeklyAvailabilityView, error)
	ListUnavailable(ctx context.Context, guideID uuid.UUID, from availability.Date) ([]*UnavailableDateView, error)
	GenerateSlots(ctx context.Context, in SlotsInput) (*SlotPlanView, error)
}

type availabilityQueriesImpl struct {
	reads   shared.CommandReads
	planner *shared.SlotPlanner
}

func NewAvailabilityQueries(uow shared.UnitOfWork, planner *shared.SlotPlanner) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: uow.Reads(), planner: planner}
}

func (q *availabilityQueriesImpl) GetWeekly(ctx context.Context, guideID uuid.UUID) (*WeeklyAvailabilityView, error) {
	w, err := q.reads.WeeklyAvailability(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrScheduleNotFound
	}
	return NewWeeklyAvailabilityView(w), nil
}

func NewWeeklyAvailabilityView(w *availability.WeeklyAvailability) *WeeklyAvailabilityView {
	v := &WeeklyAvailabilityView{
		GuideID:   w.GuideID(),
		Timezone:  w.Timezone(),
		Days:      make([]DayScheduleView, 0, len(availability.Week)),
		UpdatedAt: w.UpdatedAt(),
	}
	for _, day := range availability.Week {
		ranges := w.Ranges(day)
		if len(ranges) == 0 {
			continue
		}
		dv := DayScheduleView{Day: availability.WeekdayName(day), Ranges: make([]TimeRangeView, 0, len(ranges))}
		for _, r := range ranges {
			dv.Ranges = append(dv.Ranges, TimeRangeView{Start: r.Start.String(), End: r.End.String()})
		}
		v.Days = append(v.Days, dv)
	}
	return v
}

func (q *availabilityQueriesImpl) ListUnavailable(ctx context.Context, guideID uuid.UUID, from availability.Date) ([]*UnavailableDateView, error) {
	dates, err := q.reads.UnavailableDates(ctx, guideID, from, availability.Date{})
	if err != nil {
		return nil, err
	}
	out := make([]*UnavailableDateView, 0, len(dates))
	for _, d := range dates {
		out = append(out, &UnavailableDateView{
			Date:      d.Date.String(),
			Reason:    d.Reason,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

func (q *availabilityQueriesImpl) GenerateSlots(ctx context.Context, in SlotsInput) (*SlotPlanView, error) {
	duration := in.DurationMinutes
	var serviceID *uuid.UUID
	if in.ServiceID != uuid.Nil {
		svc, err := q.reads.ServiceByID(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.GuideID() != in.GuideID {
			return nil, ErrServiceOfOtherGuide
		}
		duration = svc.DurationMinutes()
		id := svc.ID()
		serviceID = &id
	}
	if duration == 0 {
		return nil, ErrDurationOrService
	}

	days := in.Days
	if days == 0 {
		days = DefaultSlotDays
	}

	plan, err := q.planner.Plan(ctx, q.reads, shared.SlotQuery{
		GuideID:         in.GuideID,
		DurationMinutes: duration,
		From:            in.From,
		Days:            days,
	})
	if err != nil {
		return nil, err
	}

	v := &SlotPlanView{
		GuideID:         in.GuideID,
		Configured:      plan.Configured,
		Timezone:        plan.Timezone,
		DurationMinutes: plan.DurationMinutes,
		ServiceID:       serviceID,
		Days:            make([]DaySlotsView, 0, len(plan.Days)),
	}
	for _, d := range plan.Days {
		dv := DaySlotsView{
			Date:    d.Date.String(),
			Weekday: availability.WeekdayName(d.Weekday),
			Blocked: d.Blocked,
			Slots:   make([]SlotView, 0, len(d.Slots)),
		}
		for _, s := range d.Slots {
			dv.Slots = append(dv.Slots, SlotView{
				StartTime: s.Start.String(),
				EndTime:   s.End.String(),
				FullStart: s.FullStart,
				FullEnd:   s.FullEnd,
			})
		}
		v.Days = append(v.Days, dv)
	}
	return v, nil
}
