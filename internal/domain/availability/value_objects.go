package availability

import (
	"fmt"
	"strings"
	"time"

	"guidely/internal/pkg/errs"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidClockTime = errs.Mark(errs.New("time must be HH:MM between 00:00 and 24:00"), errs.ErrValidation)
	ErrInvalidWeekday   = errs.Mark(errs.New("unknown weekday"), errs.ErrValidation)
	ErrInvalidDate      = errs.Mark(errs.New("date must be YYYY-MM-DD"), errs.ErrValidation)
)

// ClockTime is a wall-clock time of day with minute granularity.
type ClockTime int

func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClockTime
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidClockTime
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, ErrInvalidClockTime
	}
	return ClockTime(h*60 + m), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

type TimeRange struct {
	Start ClockTime
	End   ClockTime
}

func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeRange{}, errs.Wrapf(err, "start %q", start)
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeRange{}, errs.Wrapf(err, "end %q", end)
	}
	return TimeRange{Start: s, End: e}, nil
}

func (r TimeRange) Minutes() int { return int(r.End - r.Start) }

func (r TimeRange) String() string { return r.Start.String() + "-" + r.End.String() }

// Week lists weekdays in display order, Monday first.
var Week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Week {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, errs.Wrapf(ErrInvalidWeekday, "%q", s)
}

func WeekdayName(d time.Weekday) string { return strings.ToLower(d.String()) }

// Date is a calendar date without zone. It is placed on a timeline only with
// a guide's location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool { return d == Date{} }

// At places a wall-clock time on this date in loc.
func (d Date) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, int(c), 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Window is a half-open absolute interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}
