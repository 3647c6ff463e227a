package converter

import (
	"encoding/json"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	"guidely/internal/infra/pgquery"
	"guidely/internal/pkg/errs"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ratingJSON struct {
	Score   int       `json:"score"`
	Comment string    `json:"comment"`
	RatedAt time.Time `json:"rated_at"`
}

type feedbackJSON struct {
	Text        string    `json:"text"`
	Suggestions string    `json:"suggestions"`
	Highlights  []string  `json:"highlights"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type rescheduleJSON struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason"`
	By     string    `json:"by"`
	ByUser uuid.UUID `json:"by_user"`
	At     time.Time `json:"at"`
}

func BookingToRow(b *booking.Booking) (pgquery.Bookings, error) {
	r := b.Record()
	row := pgquery.Bookings{
		ID:                 r.ID,
		LearnerID:          r.LearnerID,
		GuideID:            r.GuideID,
		ServiceID:          r.ServiceID,
		ServiceName:        r.Service.Name,
		DurationMinutes:    int32(r.Service.DurationMinutes), // #nosec G115 -- bounded by service.MaxDurationMinutes
		PriceCents:         r.Service.PriceCents,
		ScheduledStart:     r.ScheduledStart,
		ScheduledEnd:       b.ScheduledEnd(),
		Status:             r.Status.String(),
		MeetingLink:        pgconv.StringOrNull(r.MeetingLink),
		SessionNotes:       r.SessionNotes,
		CancellationReason: r.CancellationReason,
		CancelledBy:        pgconv.StringOrNull(r.CancelledBy.String()),
		StartedAt:          pgconv.TimePtrToPgtype(r.StartedAt),
		CompletedAt:        pgconv.TimePtrToPgtype(r.CompletedAt),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		Version:            r.Version,
	}

	var err error
	if r.Rating != nil {
		if row.Rating, err = json.Marshal(ratingJSON{Score: r.Rating.Score, Comment: r.Rating.Comment, RatedAt: r.Rating.RatedAt}); err != nil {
			return pgquery.Bookings{}, errs.Wrap(err, "encode rating")
		}
	}
	if r.Feedback != nil {
		fb := feedbackJSON{
			Text:        r.Feedback.Text,
			Suggestions: r.Feedback.Suggestions,
			Highlights:  nonNil(r.Feedback.Highlights),
			SubmittedAt: r.Feedback.SubmittedAt,
		}
		if row.Feedback, err = json.Marshal(fb); err != nil {
			return pgquery.Bookings{}, errs.Wrap(err, "encode feedback")
		}
	}
	if row.Achievements, err = json.Marshal(nonNil(r.Achievements)); err != nil {
		return pgquery.Bookings{}, errs.Wrap(err, "encode achievements")
	}

	history := make([]rescheduleJSON, 0, len(r.RescheduleHistory))
	for _, e := range r.RescheduleHistory {
		history = append(history, rescheduleJSON{
			From:   e.From,
			To:     e.To,
			Reason: e.Reason,
			By:     e.By.String(),
			ByUser: e.ByUser,
			At:     e.At,
		})
	}
	if row.RescheduleHistory, err = json.Marshal(history); err != nil {
		return pgquery.Bookings{}, errs.Wrap(err, "encode reschedule history")
	}
	return row, nil
}

func BookingFromRow(row pgquery.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	r := booking.Record{
		ID:        row.ID,
		LearnerID: row.LearnerID,
		GuideID:   row.GuideID,
		ServiceID: row.ServiceID,
		Service: booking.ServiceSnapshot{
			Name:            row.ServiceName,
			DurationMinutes: int(row.DurationMinutes),
			PriceCents:      row.PriceCents,
		},
		ScheduledStart:     row.ScheduledStart.UTC(),
		Status:             status,
		MeetingLink:        pgconv.StringFromPgtype(row.MeetingLink),
		SessionNotes:       row.SessionNotes,
		CancellationReason: row.CancellationReason,
		CancelledBy:        user.Role(pgconv.StringFromPgtype(row.CancelledBy)),
		StartedAt:          pgconv.TimePtrFromPgtype(row.StartedAt),
		CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
		Version:            row.Version,
	}

	if len(row.Rating) > 0 {
		var rj ratingJSON
		if err := json.Unmarshal(row.Rating, &rj); err != nil {
			return nil, errs.Wrap(err, "decode rating")
		}
		r.Rating = &booking.Rating{Score: rj.Score, Comment: rj.Comment, RatedAt: rj.RatedAt.UTC()}
	}
	if len(row.Feedback) > 0 {
		var fj feedbackJSON
		if err := json.Unmarshal(row.Feedback, &fj); err != nil {
			return nil, errs.Wrap(err, "decode feedback")
		}
		r.Feedback = &booking.Feedback{
			Text:        fj.Text,
			Suggestions: fj.Suggestions,
			Highlights:  nonNil(fj.Highlights),
			SubmittedAt: fj.SubmittedAt.UTC(),
		}
	}
	if len(row.Achievements) > 0 {
		if err := json.Unmarshal(row.Achievements, &r.Achievements); err != nil {
			return nil, errs.Wrap(err, "decode achievements")
		}
	}
	if len(row.RescheduleHistory) > 0 {
		var history []rescheduleJSON
		if err := json.Unmarshal(row.RescheduleHistory, &history); err != nil {
			return nil, errs.Wrap(err, "decode reschedule history")
		}
		for _, e := range history {
			r.RescheduleHistory = append(r.RescheduleHistory, booking.RescheduleEntry{
				From:   e.From.UTC(),
				To:     e.To.UTC(),
				Reason: e.Reason,
				By:     user.Role(e.By),
				ByUser: e.ByUser,
				At:     e.At.UTC(),
			})
		}
	}
	return booking.Reconstruct(r), nil
}

func BookingsFromRows(rows []pgquery.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
