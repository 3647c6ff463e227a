package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 200

var (
	ErrInvalidTimezone = errs.Mark(errs.New("unknown timezone"), errs.ErrValidation)
	ErrReasonTooLong   = errs.Mark(errs.New("reason exceeds 200 characters"), errs.ErrValidation)
	ErrDateInPast      = errs.Mark(errs.New("date is in the past"), errs.ErrValidation)
)

// DayError reports the weekday whose ranges break the schedule invariant.
type DayError struct {
	Day    time.Weekday
	Reason string
}

func (e *DayError) Error() string {
	return WeekdayName(e.Day) + ": " + e.Reason
}

func dayError(day time.Weekday, format string, args ...any) error {
	return errs.Mark(&DayError{Day: day, Reason: fmt.Sprintf(format, args...)}, errs.ErrValidation)
}

type WeeklyAvailability struct {
	guideID   uuid.UUID
	timezone  string
	location  *time.Location
	days      map[time.Weekday][]TimeRange
	createdAt time.Time
	updatedAt time.Time
}

func NewWeeklyAvailability(guideID uuid.UUID, timezone string, days map[time.Weekday][]TimeRange, now time.Time) (*WeeklyAvailability, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		return nil, errs.Wrapf(ErrInvalidTimezone, "%q", timezone)
	}

	normalized := make(map[time.Weekday][]TimeRange, len(days))
	for _, day := range Week {
		ranges, err := normalizeDay(day, days[day])
		if err != nil {
			return nil, err
		}
		if len(ranges) > 0 {
			normalized[day] = ranges
		}
	}

	return &WeeklyAvailability{
		guideID:   guideID,
		timezone:  timezone,
		location:  loc,
		days:      normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructWeeklyAvailability rebuilds a stored schedule. A timezone that no
// longer resolves falls back to UTC.
func ReconstructWeeklyAvailability(guideID uuid.UUID, timezone string, days map[time.Weekday][]TimeRange, createdAt, updatedAt time.Time) *WeeklyAvailability {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	copied := make(map[time.Weekday][]TimeRange, len(days))
	for d, rs := range days {
		copied[d] = append([]TimeRange(nil), rs...)
	}
	return &WeeklyAvailability{
		guideID:   guideID,
		timezone:  timezone,
		location:  loc,
		days:      copied,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func normalizeDay(day time.Weekday, ranges []TimeRange) ([]TimeRange, error) {
	sorted := append([]TimeRange(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i, r := range sorted {
		if r.Start < 0 || r.End > MinutesPerDay {
			return nil, dayError(day, "range %s is outside the day", r)
		}
		if r.Start >= r.End {
			return nil, dayError(day, "range %s must start before it ends", r)
		}
		if i > 0 && r.Start < sorted[i-1].End {
			return nil, dayError(day, "range %s overlaps %s", r, sorted[i-1])
		}
	}
	return sorted, nil
}

func (w *WeeklyAvailability) GuideID() uuid.UUID       { return w.guideID }
func (w *WeeklyAvailability) Timezone() string         { return w.timezone }
func (w *WeeklyAvailability) Location() *time.Location { return w.location }
func (w *WeeklyAvailability) CreatedAt() time.Time     { return w.createdAt }
func (w *WeeklyAvailability) UpdatedAt() time.Time     { return w.updatedAt }

func (w *WeeklyAvailability) Ranges(day time.Weekday) []TimeRange {
	return append([]TimeRange(nil), w.days[day]...)
}

// Days returns a copy keyed by weekday; days without ranges are absent.
func (w *WeeklyAvailability) Days() map[time.Weekday][]TimeRange {
	out := make(map[time.Weekday][]TimeRange, len(w.days))
	for d, rs := range w.days {
		out[d] = append([]TimeRange(nil), rs...)
	}
	return out
}

func (w *WeeklyAvailability) IsEmpty() bool { return len(w.days) == 0 }

type UnavailableDate struct {
	GuideID   uuid.UUID
	Date      Date
	Reason    string
	CreatedAt time.Time
}

// NewUnavailableDate rejects dates before today in loc.
func NewUnavailableDate(guideID uuid.UUID, date Date, reason string, loc *time.Location, now time.Time) (UnavailableDate, error) {
	if date.IsZero() {
		return UnavailableDate{}, ErrInvalidDate
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return UnavailableDate{}, ErrReasonTooLong
	}
	if date.Before(DateOf(now.In(loc))) {
		return UnavailableDate{}, ErrDateInPast
	}
	return UnavailableDate{GuideID: guideID, Date: date, Reason: reason, CreatedAt: now}, nil
}
