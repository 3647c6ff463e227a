package request

import (
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeRangeRequest struct {
	Start string `json:"start" binding:"required,hhmm" example:"09:00"`
	End   string `json:"end" binding:"required,hhmm" example:"12:00"`
}

// WeeklyScheduleRequest replaces the caller's whole week. Days are keyed by
// lower-case weekday name; a missing day is closed.
type WeeklyScheduleRequest struct {
	Timezone string                        `json:"timezone" binding:"omitempty,timezone" example:"Europe/Berlin"`
	Days     map[string][]TimeRangeRequest `json:"days" binding:"required,dive,keys,required,endkeys,dive"`
}

func (r WeeklyScheduleRequest) ToInput() (commands.UpsertWeeklyInput, error) {
	days := make(map[time.Weekday][]availability.TimeRange, len(r.Days))
	for name, ranges := range r.Days {
		day, err := availability.ParseWeekday(name)
		if err != nil {
			return commands.UpsertWeeklyInput{}, errs.Wrapf(err, "days.%s", name)
		}
		for _, tr := range ranges {
			rng, err := availability.NewTimeRange(tr.Start, tr.End)
			if err != nil {
				return commands.UpsertWeeklyInput{}, errs.Wrapf(err, "days.%s", name)
			}
			days[day] = append(days[day], rng)
		}
	}
	return commands.UpsertWeeklyInput{Timezone: r.Timezone, Days: days}, nil
}

type UnavailableDateRequest struct {
	Date   string `json:"date" binding:"required,isodate" example:"2026-03-02"`
	Reason string `json:"reason" binding:"max=500"`
}

func (r UnavailableDateRequest) ParsedDate() (availability.Date, error) {
	return availability.ParseDate(r.Date)
}

// SlotsQuery carries either a fixed duration or a service whose duration is
// used.
type SlotsQuery struct {
	Duration  int    `form:"duration"`
	ServiceID string `form:"serviceId" binding:"omitempty,uuid"`
	From      string `form:"from" binding:"omitempty,isodate"`
	Days      *int   `form:"days" binding:"omitempty,min=1"`
}

func (q SlotsQuery) ToInput(guideID uuid.UUID) (queries.SlotsInput, error) {
	in := queries.SlotsInput{GuideID: guideID, DurationMinutes: q.Duration}
	if q.ServiceID != "" {
		id, err := uuid.Parse(q.ServiceID)
		if err != nil {
			return queries.SlotsInput{}, errs.Validation("serviceId must be a UUID")
		}
		in.ServiceID = id
	}
	if q.From != "" {
		from, err := availability.ParseDate(q.From)
		if err != nil {
			return queries.SlotsInput{}, err
		}
		in.From = from
	}
	if q.Days != nil {
		in.Days = *q.Days
	}
	return in, nil
}

type UnavailableDatesQuery struct {
	From string `form:"from" binding:"omitempty,isodate"`
}

func (q UnavailableDatesQuery) FromDate() (availability.Date, error) {
	if q.From == "" {
		return availability.Date{}, nil
	}
	return availability.ParseDate(q.From)
}
