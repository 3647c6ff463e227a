package response

import (
	"time"

	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	LearnerID          string               `json:"learner_id"`
	GuideID            string               `json:"guide_id"`
	ServiceID          string               `json:"service_id"`
	ServiceName        string               `json:"service_name"`
	DurationMinutes    int                  `json:"duration_minutes"`
	PriceCents         int64                `json:"price_cents"`
	ScheduledStart     time.Time            `json:"scheduled_start"`
	ScheduledEnd       time.Time            `json:"scheduled_end"`
	Status             string               `json:"status" example:"confirmed"`
	StoredStatus       string               `json:"stored_status" example:"confirmed"`
	MeetingLink        string               `json:"meeting_link,omitempty"`
	Rating             *RatingResponse      `json:"rating,omitempty"`
	Feedback           *FeedbackResponse    `json:"feedback,omitempty"`
	SessionNotes       string               `json:"session_notes,omitempty"`
	Achievements       []string             `json:"achievements"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	CancelledBy        string               `json:"cancelled_by,omitempty"`
	StartedAt          *time.Time           `json:"started_at,omitempty"`
	CompletedAt        *time.Time           `json:"completed_at,omitempty"`
	RescheduleHistory  []RescheduleResponse `json:"reschedule_history"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type RatingResponse struct {
	Score   int       `json:"score"`
	Comment string    `json:"comment,omitempty"`
	RatedAt time.Time `json:"rated_at"`
}

type FeedbackResponse struct {
	Text        string    `json:"text"`
	Suggestions string    `json:"suggestions,omitempty"`
	Highlights  []string  `json:"highlights"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type RescheduleResponse struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason,omitempty"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}

type BookingEnvelope struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

type BookingListEnvelope struct {
	Success    bool               `json:"success"`
	Bookings   []*BookingResponse `json:"bookings"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res, err := fromView[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	// copier leaves empty slices nil
	if res.Achievements == nil {
		res.Achievements = []string{}
	}
	if res.RescheduleHistory == nil {
		res.RescheduleHistory = []RescheduleResponse{}
	}
	if res.Feedback != nil && res.Feedback.Highlights == nil {
		res.Feedback.Highlights = []string{}
	}
	return res, nil
}

func NewBookingEnvelope(v *queries.BookingView) (BookingEnvelope, error) {
	res, err := FromBookingView(v)
	if err != nil {
		return BookingEnvelope{}, err
	}
	return BookingEnvelope{Success: true, Booking: res}, nil
}

func NewBookingListEnvelope(page *queries.BookingPage) (BookingListEnvelope, error) {
	env := BookingListEnvelope{Success: true, Bookings: make([]*BookingResponse, 0, len(page.Items))}
	for _, v := range page.Items {
		res, err := FromBookingView(v)
		if err != nil {
			return BookingListEnvelope{}, err
		}
		env.Bookings = append(env.Bookings, res)
	}
	if page.Next != nil {
		env.NextCursor = page.Next.After
	}
	return env, nil
}

type SweepResponse struct {
	Scanned   int `json:"scanned"`
	Completed int `json:"completed"`
	NoShow    int `json:"no_show"`
	Expired   int `json:"expired"`
	Skipped   int `json:"skipped"`
}

func FromSweepResult(r commands.SweepResult) SweepResponse {
	return SweepResponse(r)
}
