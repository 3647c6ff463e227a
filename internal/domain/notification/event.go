package notification

import (
	"fmt"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCreated     Kind = "booking.created"
	KindConfirmed   Kind = "booking.confirmed"
	KindDeclined    Kind = "booking.declined"
	KindRescheduled Kind = "booking.rescheduled"
	KindCancelled   Kind = "booking.cancelled"
	KindCompleted   Kind = "booking.completed"
)

// Event tells one recipient that a booking changed.
type Event struct {
	ID             uuid.UUID  `json:"id"`
	Kind           Kind       `json:"kind"`
	BookingID      uuid.UUID  `json:"booking_id"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	ActorID        uuid.UUID  `json:"actor_id"`
	ActorRole      user.Role  `json:"actor_role"`
	GuideID        uuid.UUID  `json:"guide_id"`
	LearnerID      uuid.UUID  `json:"learner_id"`
	ServiceName    string     `json:"service_name"`
	Status         string     `json:"status"`
	ScheduledStart time.Time  `json:"scheduled_start"`
	PreviousStart  *time.Time `json:"previous_start,omitempty"`
	MeetingLink    string     `json:"meeting_link,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// ForBooking builds one event per counterparty of actor. An admin acting on
// a booking notifies both participants.
func ForBooking(kind Kind, b *booking.Booking, actor user.Actor, reason string, now time.Time) []Event {
	var recipients []uuid.UUID
	switch actor.UserID {
	case b.GuideID():
		recipients = []uuid.UUID{b.LearnerID()}
	case b.LearnerID():
		recipients = []uuid.UUID{b.GuideID()}
	default:
		recipients = []uuid.UUID{b.LearnerID(), b.GuideID()}
	}

	var previous *time.Time
	if kind == KindRescheduled {
		if h := b.RescheduleHistory(); len(h) > 0 {
			from := h[len(h)-1].From
			previous = &from
		}
	}

	events := make([]Event, 0, len(recipients))
	for _, r := range recipients {
		events = append(events, Event{
			ID:             uuid.New(),
			Kind:           kind,
			BookingID:      b.ID(),
			RecipientID:    r,
			ActorID:        actor.UserID,
			ActorRole:      actor.Role,
			GuideID:        b.GuideID(),
			LearnerID:      b.LearnerID(),
			ServiceName:    b.Service().Name,
			Status:         b.Status().String(),
			ScheduledStart: b.ScheduledStart(),
			PreviousStart:  previous,
			MeetingLink:    b.MeetingLink(),
			Reason:         reason,
			OccurredAt:     now,
		})
	}
	return events
}

func (e Event) Subject() string {
	switch e.Kind {
	case KindCreated:
		return fmt.Sprintf("New booking request: %s", e.ServiceName)
	case KindConfirmed:
		return fmt.Sprintf("Booking confirmed: %s", e.ServiceName)
	case KindDeclined:
		return fmt.Sprintf("Booking declined: %s", e.ServiceName)
	case KindRescheduled:
		return fmt.Sprintf("Booking rescheduled: %s", e.ServiceName)
	case KindCancelled:
		return fmt.Sprintf("Booking cancelled: %s", e.ServiceName)
	case KindCompleted:
		return fmt.Sprintf("Session completed: %s", e.ServiceName)
	}
	return "Booking update"
}

// Body is the plain-text message shown to the recipient. Times are UTC.
func (e Event) Body() string {
	when := e.ScheduledStart.UTC().Format("Mon 02 Jan 2006 15:04 MST")
	body := fmt.Sprintf("%s\n\nSession: %s\nWhen: %s\nStatus: %s\n", e.Subject(), e.ServiceName, when, e.Status)
	if e.PreviousStart != nil {
		body += fmt.Sprintf("Previously: %s\n", e.PreviousStart.UTC().Format("Mon 02 Jan 2006 15:04 MST"))
	}
	if e.MeetingLink != "" {
		body += fmt.Sprintf("Meeting link: %s\n", e.MeetingLink)
	}
	if e.Reason != "" {
		body += fmt.Sprintf("Reason: %s\n", e.Reason)
	}
	return body
}
