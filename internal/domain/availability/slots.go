package availability

import (
	"time"

	"guidely/internal/pkg/errs"
)

var (
	ErrInvalidDuration  = errs.Mark(errs.New("duration must be between 1 and 1440 minutes"), errs.ErrValidation)
	ErrInvalidDaysAhead = errs.Mark(errs.New("days ahead is out of range"), errs.ErrValidation)
)

type SlotPolicy struct {
	MinLeadTime  time.Duration
	MaxDaysAhead int
}

// Validate checks the caller-supplied duration and horizon.
func (p SlotPolicy) Validate(durationMinutes, days int) error {
	if durationMinutes <= 0 || durationMinutes > MinutesPerDay {
		return ErrInvalidDuration
	}
	if days < 1 || (p.MaxDaysAhead > 0 && days > p.MaxDaysAhead) {
		return errs.Wrapf(ErrInvalidDaysAhead, "got %d, max %d", days, p.MaxDaysAhead)
	}
	return nil
}

type SlotRequest struct {
	// nil means the guide never saved a schedule
	Schedule        *WeeklyAvailability
	Blocked         []Date
	Busy            []Window
	DurationMinutes int
	From            Date
	Days            int
	Now             time.Time
	// used when Schedule is nil
	Location *time.Location
	Policy   SlotPolicy
}

type Slot struct {
	Start     ClockTime
	End       ClockTime
	FullStart time.Time
	FullEnd   time.Time
}

type DaySlots struct {
	Date    Date
	Weekday time.Weekday
	Blocked bool
	Slots   []Slot
}

type SlotPlan struct {
	Configured      bool
	Timezone        string
	DurationMinutes int
	Days            []DaySlots
}

// Find returns the offered slot beginning exactly at start.
func (p SlotPlan) Find(start time.Time) (Slot, bool) {
	for _, d := range p.Days {
		for _, s := range d.Slots {
			if s.FullStart.Equal(start) {
				return s, true
			}
		}
	}
	return Slot{}, false
}

func (p SlotPlan) SlotCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Slots)
	}
	return n
}

// GenerateSlots tiles the weekly ranges of each requested date into
// fixed-length slots and removes blocked dates, busy windows and anything
// starting before now plus the lead time. It performs no I/O.
func GenerateSlots(req SlotRequest) (SlotPlan, error) {
	if err := req.Policy.Validate(req.DurationMinutes, req.Days); err != nil {
		return SlotPlan{}, err
	}

	loc := req.Location
	if req.Schedule != nil {
		loc = req.Schedule.Location()
	}
	if loc == nil {
		loc = time.UTC
	}

	blocked := make(map[Date]struct{}, len(req.Blocked))
	for _, d := range req.Blocked {
		blocked[d] = struct{}{}
	}

	plan := SlotPlan{
		Configured:      req.Schedule != nil && !req.Schedule.IsEmpty(),
		Timezone:        loc.String(),
		DurationMinutes: req.DurationMinutes,
		Days:            make([]DaySlots, 0, req.Days),
	}

	earliest := req.Now.Add(req.Policy.MinLeadTime)
	length := time.Duration(req.DurationMinutes) * time.Minute

	for i := 0; i < req.Days; i++ {
		date := req.From.AddDays(i)
		day := DaySlots{Date: date, Weekday: date.Weekday(), Slots: []Slot{}}

		if _, ok := blocked[date]; ok {
			day.Blocked = true
			plan.Days = append(plan.Days, day)
			continue
		}
		if req.Schedule == nil {
			plan.Days = append(plan.Days, day)
			continue
		}

		// tiled in absolute time so DST days neither repeat nor skip an instant
		for _, r := range req.Schedule.Ranges(day.Weekday) {
			rangeEnd := date.At(r.End, loc)
			for start := date.At(r.Start, loc); !start.Add(length).After(rangeEnd); start = start.Add(length) {
				w := Window{Start: start, End: start.Add(length)}
				if start.Before(earliest) || overlapsAny(w, req.Busy) {
					continue
				}
				day.Slots = append(day.Slots, Slot{
					Start:     wallClock(w.Start, date, loc),
					End:       wallClock(w.End, date, loc),
					FullStart: w.Start,
					FullEnd:   w.End,
				})
			}
		}
		plan.Days = append(plan.Days, day)
	}

	return plan, nil
}

// wallClock is t's local time of day on date; the following midnight is 24:00.
func wallClock(t time.Time, date Date, loc *time.Location) ClockTime {
	local := t.In(loc)
	if DateOf(local) != date {
		return ClockTime(24 * 60)
	}
	return ClockTime(local.Hour()*60 + local.Minute())
}

func overlapsAny(w Window, busy []Window) bool {
	for _, b := range busy {
		if w.Overlaps(b) {
			return true
		}
	}
	return false
}
