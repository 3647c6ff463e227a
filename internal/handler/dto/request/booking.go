package request

import (
	"strings"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"

	"github.com/google/uuid"
)

type InitiateBookingRequest struct {
	ServiceID      uuid.UUID `json:"service_id" binding:"required"`
	ScheduledStart time.Time `json:"scheduled_start" binding:"required" example:"2026-03-02T09:00:00Z"`
}

func (r InitiateBookingRequest) ToInput() commands.InitiateBookingInput {
	return commands.InitiateBookingInput{ServiceID: r.ServiceID, Start: r.ScheduledStart}
}

// BookingActionRequest is the body of actions that only name the booking.
type BookingActionRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

type ConfirmBookingRequest struct {
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	MeetingLink string    `json:"meeting_link" binding:"omitempty,url,max=2048"`
}

func (r ConfirmBookingRequest) ToInput() commands.ConfirmBookingInput {
	return commands.ConfirmBookingInput{BookingID: r.BookingID, MeetingLink: r.MeetingLink}
}

type DeclineBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Reason    string    `json:"reason" binding:"max=1000"`
}

func (r DeclineBookingRequest) ToInput() commands.DeclineBookingInput {
	return commands.DeclineBookingInput{BookingID: r.BookingID, Reason: r.Reason}
}

type CancelBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Reason    string    `json:"reason" binding:"max=1000"`
}

func (r CancelBookingRequest) ToInput() commands.CancelBookingInput {
	return commands.CancelBookingInput{BookingID: r.BookingID, Reason: r.Reason}
}

type CompleteBookingRequest struct {
	BookingID    uuid.UUID `json:"booking_id" binding:"required"`
	SessionNotes string    `json:"session_notes" binding:"max=5000"`
	Achievements []string  `json:"achievements" binding:"max=50,dive,required,max=200"`
}

func (r CompleteBookingRequest) ToInput() commands.CompleteBookingInput {
	return commands.CompleteBookingInput{
		BookingID:    r.BookingID,
		Notes:        r.SessionNotes,
		Achievements: r.Achievements,
	}
}

type RateBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Score     int       `json:"score" binding:"required"`
	Comment   string    `json:"comment" binding:"max=1000"`
}

func (r RateBookingRequest) ToInput() commands.RateBookingInput {
	return commands.RateBookingInput{BookingID: r.BookingID, Score: r.Score, Comment: r.Comment}
}

type FeedbackRequest struct {
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	Text        string    `json:"text" binding:"required,max=5000"`
	Suggestions string    `json:"suggestions" binding:"max=5000"`
	Highlights  []string  `json:"highlights" binding:"max=20,dive,required,max=200"`
}

func (r FeedbackRequest) ToInput() commands.FeedbackInput {
	return commands.FeedbackInput{
		BookingID:   r.BookingID,
		Text:        r.Text,
		Suggestions: r.Suggestions,
		Highlights:  r.Highlights,
	}
}

type RescheduleBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	NewStart  time.Time `json:"new_start" binding:"required"`
	Reason    string    `json:"reason" binding:"max=1000"`
}

func (r RescheduleBookingRequest) ToInput() commands.RescheduleBookingInput {
	return commands.RescheduleBookingInput{BookingID: r.BookingID, NewStart: r.NewStart, Reason: r.Reason}
}

type ListBookingsQuery struct {
	Status []string `form:"status"`
	Limit  int      `form:"limit" binding:"omitempty,min=1,max=200"`
	After  string   `form:"after"`
}

func (q ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	f := queries.BookingFilter{Limit: q.Limit}
	// status=a&status=b and status=a,b are both accepted
	for _, raw := range q.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			st, err := booking.ParseStatus(s)
			if err != nil {
				return queries.BookingFilter{}, err
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	if q.After != "" {
		f.After = &queries.Cursor{After: q.After}
	}
	return f, nil
}
