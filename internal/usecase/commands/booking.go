package commands

import (
	"context"
	"log/slog"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/notification"
	"guidely/internal/domain/service"
	"guidely/internal/domain/user"
	"guidely/internal/infra"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

// total attempts for a transition whose row keeps changing underneath it
const maxTransitionAttempts = 3

var (
	ErrSlotNotOffered   = errs.Mark(errs.New("requested start is not an available slot"), errs.ErrSlotUnavailable)
	ErrConcurrentUpdate = errs.Mark(errs.New("booking changed concurrently, retry the request"), errs.ErrInvalidStateTransition)
)

type InitiateBookingInput struct {
	ServiceID uuid.UUID
	Start     time.Time
}

type ConfirmBookingInput struct {
	BookingID   uuid.UUID
	MeetingLink string
}

type DeclineBookingInput struct {
	BookingID uuid.UUID
	Reason    string
}

type CancelBookingInput struct {
	BookingID uuid.UUID
	Reason    string
}

type CompleteBookingInput struct {
	BookingID    uuid.UUID
	Notes        string
	Achievements []string
}

type RateBookingInput struct {
	BookingID uuid.UUID
	Score     int
	Comment   string
}

type FeedbackInput struct {
	BookingID   uuid.UUID
	Text        string
	Suggestions string
	Highlights  []string
}

type RescheduleBookingInput struct {
	BookingID uuid.UUID
	NewStart  time.Time
	Reason    string
}

type BookingCommands interface {
	Initiate(ctx context.Context, actor user.Actor, in InitiateBookingInput) (*queries.BookingView, error)
	Confirm(ctx context.Context, actor user.Actor, in ConfirmBookingInput) (*queries.BookingView, error)
	Decline(ctx context.Context, actor user.Actor, in DeclineBookingInput) (*queries.BookingView, error)
	Start(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
	Complete(ctx context.Context, actor user.Actor, in CompleteBookingInput) (*queries.BookingView, error)
	Rate(ctx context.Context, actor user.Actor, in RateBookingInput) (*queries.BookingView, error)
	AddFeedback(ctx context.Context, actor user.Actor, in FeedbackInput) (*queries.BookingView, error)
	Reschedule(ctx context.Context, actor user.Actor, in RescheduleBookingInput) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor user.Actor, in CancelBookingInput) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	planner  *shared.SlotPlanner
	notifier Notifier
	payments *paymentSettler
	clock    clock.Clock
	policy   booking.Policy
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	planner *shared.SlotPlanner,
	notifier Notifier,
	recorder PaymentRecorder,
	retryQueue PaymentRetryQueue,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		planner:  planner,
		notifier: notifier,
		payments: newPaymentSettler(recorder, retryQueue, clk),
		clock:    clk,
		policy:   booking.Policy{StartWindowBefore: cfg.StartWindowBefore},
	}
}

func (uc *bookingUseCaseImpl) Initiate(ctx context.Context, actor user.Actor, in InitiateBookingInput) (*queries.BookingView, error) {
	if actor.Role != user.RoleLearner {
		return nil, booking.ErrRoleNotAllowed
	}

	reads := uc.uow.Reads()
	svc, err := reads.ServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive() {
		return nil, service.ErrServiceInactive
	}
	snapshot, err := svc.Snapshot()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	b, err := booking.NewBooking(booking.NewBookingParams{
		Learner:   actor,
		GuideID:   svc.GuideID(),
		ServiceID: svc.ID(),
		Service:   snapshot,
		Start:     in.Start,
		Now:       now,
	})
	if err != nil {
		return nil, err
	}

	offered, err := uc.planner.Offers(ctx, reads, svc.GuideID(), snapshot.DurationMinutes, in.Start, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, ErrSlotNotOffered
	}

	// the exclusion constraint settles races between concurrent requests
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking initiated",
		"booking_id", b.ID(),
		"guide_id", b.GuideID(),
		"learner_id", b.LearnerID(),
		"start", b.ScheduledStart())

	uc.notify(ctx, notification.KindCreated, b, actor, "")
	return queries.NewBookingView(b, now), nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, actor user.Actor, in ConfirmBookingInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Confirm(actor, in.MeetingLink, now)
	})
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, notification.KindConfirmed, b, actor, "")
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Decline(ctx context.Context, actor user.Actor, in DeclineBookingInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Decline(actor, in.Reason, now)
	})
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, notification.KindDeclined, b, actor, b.CancellationReason())
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Start(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, bookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Start(actor, now, uc.policy)
	})
	if err != nil {
		return nil, err
	}
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, actor user.Actor, in CompleteBookingInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Complete(actor, in.Notes, in.Achievements, now)
	})
	if err != nil {
		return nil, err
	}
	uc.payments.settle(ctx, b)
	uc.notify(ctx, notification.KindCompleted, b, actor, "")
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Rate(ctx context.Context, actor user.Actor, in RateBookingInput) (*queries.BookingView, error) {
	b, err := uc.transitionThen(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Rate(actor, in.Score, in.Comment, now)
	}, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		return tx.RatingStats().Recalc(ctx, b.GuideID(), now)
	})
	if err != nil {
		return nil, err
	}
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) AddFeedback(ctx context.Context, actor user.Actor, in FeedbackInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.AddFeedback(actor, in.Text, in.Suggestions, in.Highlights, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Reschedule(ctx context.Context, actor user.Actor, in RescheduleBookingInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if err := b.Reschedule(actor, in.NewStart, in.Reason, now); err != nil {
			return err
		}
		offered, err := uc.planner.Offers(ctx, tx.Reads(), b.GuideID(), b.Service().DurationMinutes, in.NewStart, b.ID())
		if err != nil {
			return err
		}
		if !offered {
			return ErrSlotNotOffered
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, notification.KindRescheduled, b, actor, in.Reason)
	return uc.view(b), nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, in CancelBookingInput) (*queries.BookingView, error) {
	b, err := uc.transition(ctx, in.BookingID, func(_ context.Context, _ shared.Tx, b *booking.Booking, now time.Time) error {
		return b.Cancel(actor, in.Reason, now)
	})
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, notification.KindCancelled, b, actor, b.CancellationReason())
	return uc.view(b), nil
}

type applyFunc func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error

// transition loads the booking, applies fn and writes it back conditioned on
// the status and version it was loaded with. A stale write reloads and
// re-applies, so a booking the sweeper moved in between is judged against
// its new status.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, id uuid.UUID, fn applyFunc) (*booking.Booking, error) {
	return uc.transitionThen(ctx, id, fn, nil)
}

// transitionThen is transition with then run after the write, in the same
// transaction.
func (uc *bookingUseCaseImpl) transitionThen(ctx context.Context, id uuid.UUID, fn, then applyFunc) (*booking.Booking, error) {
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		var result *booking.Booking
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			b, err := tx.Bookings().FindByID(ctx, id)
			if err != nil {
				return err
			}
			expected := b.Status()
			now := uc.clock.Now()
			if err := fn(ctx, tx, b, now); err != nil {
				return err
			}
			if err := tx.Bookings().Update(ctx, b, expected); err != nil {
				return err
			}
			if then != nil {
				if err := then(ctx, tx, b, now); err != nil {
					return err
				}
			}
			result = b
			return nil
		})
		if infra.IsKind(err, infra.KindStale) {
			slog.Warn("booking changed during transition, reloading",
				"booking_id", id,
				"attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrConcurrentUpdate
}

func (uc *bookingUseCaseImpl) view(b *booking.Booking) *queries.BookingView {
	return queries.NewBookingView(b, uc.clock.Now())
}

func (uc *bookingUseCaseImpl) notify(ctx context.Context, kind notification.Kind, b *booking.Booking, actor user.Actor, reason string) {
	for _, ev := range notification.ForBooking(kind, b, actor, reason, uc.clock.Now()) {
		uc.notifier.Notify(ctx, ev)
	}
}
