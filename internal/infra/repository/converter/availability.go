package converter

import (
	"encoding/json"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/infra/pgquery"
	"guidely/internal/pkg/errs"
	"guidely/internal/pkg/pgconv"
)

// rangeJSON stores minutes since midnight.
type rangeJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func WeeklyToRow(w *availability.WeeklyAvailability) (pgquery.WeeklyAvailability, error) {
	days := make(map[string][]rangeJSON, len(availability.Week))
	for day, ranges := range w.Days() {
		items := make([]rangeJSON, 0, len(ranges))
		for _, r := range ranges {
			items = append(items, rangeJSON{Start: int(r.Start), End: int(r.End)})
		}
		days[availability.WeekdayName(day)] = items
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return pgquery.WeeklyAvailability{}, errs.Wrap(err, "encode weekly days")
	}
	return pgquery.WeeklyAvailability{
		GuideID:   w.GuideID(),
		Timezone:  w.Timezone(),
		Days:      raw,
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
	}, nil
}

func WeeklyFromRow(row pgquery.WeeklyAvailability) (*availability.WeeklyAvailability, error) {
	var stored map[string][]rangeJSON
	if len(row.Days) > 0 {
		if err := json.Unmarshal(row.Days, &stored); err != nil {
			return nil, errs.Wrap(err, "decode weekly days")
		}
	}
	days := make(map[time.Weekday][]availability.TimeRange, len(stored))
	for name, items := range stored {
		day, err := availability.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			days[day] = append(days[day], availability.TimeRange{
				Start: availability.ClockTime(it.Start),
				End:   availability.ClockTime(it.End),
			})
		}
	}
	return availability.ReconstructWeeklyAvailability(row.GuideID, row.Timezone, days, row.CreatedAt.UTC(), row.UpdatedAt.UTC()), nil
}

func UnavailableDateToRow(d availability.UnavailableDate) pgquery.UnavailableDates {
	return pgquery.UnavailableDates{
		GuideID:   d.GuideID,
		Date:      pgconv.DateToPgtype(d.Date),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

func UnavailableDateFromRow(row pgquery.UnavailableDates) availability.UnavailableDate {
	return availability.UnavailableDate{
		GuideID:   row.GuideID,
		Date:      pgconv.DateFromPgtype(row.Date),
		Reason:    row.Reason,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
