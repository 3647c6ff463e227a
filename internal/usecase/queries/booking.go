package queries

import (
	"context"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

var ErrBookingNotVisible = errs.Mark(errs.New("booking is not visible to this user"), errs.ErrForbidden)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID        `json:"id"`
	LearnerID          uuid.UUID        `json:"learner_id"`
	GuideID            uuid.UUID        `json:"guide_id"`
	ServiceID          uuid.UUID        `json:"service_id"`
	ServiceName        string           `json:"service_name"`
	DurationMinutes    int              `json:"duration_minutes"`
	PriceCents         int64            `json:"price_cents"`
	ScheduledStart     time.Time        `json:"scheduled_start"`
	ScheduledEnd       time.Time        `json:"scheduled_end"`
	Status             string           `json:"status"`
	StoredStatus       string           `json:"stored_status"`
	MeetingLink        string           `json:"meeting_link,omitempty"`
	Rating             *RatingView      `json:"rating,omitempty"`
	Feedback           *FeedbackView    `json:"feedback,omitempty"`
	SessionNotes       string           `json:"session_notes,omitempty"`
	Achievements       []string         `json:"achievements"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	CancelledBy        string           `json:"cancelled_by,omitempty"`
	StartedAt          *time.Time       `json:"started_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	RescheduleHistory  []RescheduleView `json:"reschedule_history"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type RatingView struct {
	Score   int       `json:"score"`
	Comment string    `json:"comment,omitempty"`
	RatedAt time.Time `json:"rated_at"`
}

type FeedbackView struct {
	Text        string    `json:"text"`
	Suggestions string    `json:"suggestions,omitempty"`
	Highlights  []string  `json:"highlights"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type RescheduleView struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason,omitempty"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}

// NewBookingView renders b with its effective status at now.
func NewBookingView(b *booking.Booking, now time.Time) *BookingView {
	v := &BookingView{
		ID:                 b.ID(),
		LearnerID:          b.LearnerID(),
		GuideID:            b.GuideID(),
		ServiceID:          b.ServiceID(),
		ServiceName:        b.Service().Name,
		DurationMinutes:    b.Service().DurationMinutes,
		PriceCents:         b.Service().PriceCents,
		ScheduledStart:     b.ScheduledStart(),
		ScheduledEnd:       b.ScheduledEnd(),
		Status:             booking.DeriveEffectiveStatus(b, now).String(),
		StoredStatus:       b.Status().String(),
		MeetingLink:        b.MeetingLink(),
		SessionNotes:       b.SessionNotes(),
		Achievements:       append([]string{}, b.Achievements()...),
		CancellationReason: b.CancellationReason(),
		CancelledBy:        b.CancelledBy().String(),
		StartedAt:          b.StartedAt(),
		CompletedAt:        b.CompletedAt(),
		RescheduleHistory:  make([]RescheduleView, 0, len(b.RescheduleHistory())),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
	if r := b.Rating(); r != nil {
		v.Rating = &RatingView{Score: r.Score, Comment: r.Comment, RatedAt: r.RatedAt}
	}
	if f := b.Feedback(); f != nil {
		v.Feedback = &FeedbackView{
			Text:        f.Text,
			Suggestions: f.Suggestions,
			Highlights:  append([]string{}, f.Highlights...),
			SubmittedAt: f.SubmittedAt,
		}
	}
	for _, h := range b.RescheduleHistory() {
		v.RescheduleHistory = append(v.RescheduleHistory, RescheduleView{
			From:   h.From,
			To:     h.To,
			Reason: h.Reason,
			By:     h.By.String(),
			At:     h.At,
		})
	}
	return v
}

type BookingFilter struct {
	Statuses []booking.Status
	After    *Cursor
	Limit    int
}

type BookingPage struct {
	Items []*BookingView
	Next  *Cursor
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor user.Actor, filter BookingFilter) (*BookingPage, error)
}

// BookingListQuery pages by (scheduled_start, id) descending.
type BookingListQuery struct {
	// uuid.Nil lists every booking
	ParticipantID uuid.UUID
	Statuses      []booking.Status
	BeforeStart   time.Time
	BeforeID      uuid.UUID
	Limit         int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, q BookingListQuery) ([]*booking.Booking, error)
}

// StatusReconciler brings an actor's transient bookings up to date before
// they are read.
type StatusReconciler interface {
	Reconcile(ctx context.Context, actor user.Actor) error
}

type bookingQueriesImpl struct {
	store       BookingReadStore
	reconciler  StatusReconciler
	clock       clock.Clock
	sweepOnRead bool
}

func NewBookingQueries(store BookingReadStore, reconciler StatusReconciler, clk clock.Clock, cfg config.BookingConfig) BookingQueries {
	return &bookingQueriesImpl{
		store:       store,
		reconciler:  reconciler,
		clock:       clk,
		sweepOnRead: cfg.SweepOnRead,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanView(actor) {
		return nil, ErrBookingNotVisible
	}
	return NewBookingView(b, q.clock.Now()), nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, actor user.Actor, filter BookingFilter) (*BookingPage, error) {
	if q.sweepOnRead && q.reconciler != nil {
		if err := q.reconciler.Reconcile(ctx, actor); err != nil {
			return nil, err
		}
	}

	limit := ValidateLimit(filter.Limit)
	lq := BookingListQuery{
		Statuses: filter.Statuses,
		// one extra row tells whether another page exists
		Limit: limit + 1,
	}
	if !actor.IsAdmin() {
		lq.ParticipantID = actor.UserID
	}
	if filter.After != nil && filter.After.After != "" {
		start, id, err := DecodeAfterCursor(filter.After.After)
		if err != nil {
			return nil, err
		}
		lq.BeforeStart, lq.BeforeID = start, id
	}

	rows, err := q.store.List(ctx, lq)
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: make([]*BookingView, 0, min(len(rows), limit))}
	if len(rows) > limit {
		last := rows[limit-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.ScheduledStart(), last.ID())}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	for _, b := range rows {
		page.Items = append(page.Items, NewBookingView(b, now))
	}
	return page, nil
}
