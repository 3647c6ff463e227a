package commands

import (
	"context"
	"log/slog"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/payment"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/errs"
)

// MaxPaymentAttempts bounds redelivery of a queued payment record. A record
// that exhausts it is logged at error level and dropped.
const MaxPaymentAttempts = 10

type PaymentRetryResult struct {
	Attempted int `json:"attempted"`
	Recorded  int `json:"recorded"`
	Requeued  int `json:"requeued"`
	Dropped   int `json:"dropped"`
}

type PaymentCommands interface {
	RetryPending(ctx context.Context, batch int) (PaymentRetryResult, error)
}

// paymentSettler records the payment owed for a completed booking. A failed
// write never fails the completion: the record goes to the retry queue.
type paymentSettler struct {
	recorder PaymentRecorder
	queue    PaymentRetryQueue
	clock    clock.Clock
}

func newPaymentSettler(recorder PaymentRecorder, queue PaymentRetryQueue, clk clock.Clock) *paymentSettler {
	return &paymentSettler{recorder: recorder, queue: queue, clock: clk}
}

func (s *paymentSettler) settle(ctx context.Context, b *booking.Booking) {
	req := payment.ForBooking(b, s.clock.Now())
	err := s.recorder.RecordPayment(ctx, req.BookingID, req.AmountCents, req.Status)
	if err == nil {
		return
	}

	err = errs.Mark(err, errs.ErrUpstreamFailure)
	slog.Warn("payment record failed, queued for retry",
		"booking_id", req.BookingID,
		"amount_cents", req.AmountCents,
		"error", err)

	req.Attempts = 1
	if qerr := s.queue.Enqueue(ctx, req); qerr != nil {
		slog.Error("payment retry enqueue failed",
			"booking_id", req.BookingID,
			"error", qerr)
	}
}

type paymentUseCaseImpl struct {
	recorder PaymentRecorder
	queue    PaymentRetryQueue
}

func NewPaymentUseCase(recorder PaymentRecorder, queue PaymentRetryQueue) PaymentCommands {
	return &paymentUseCaseImpl{recorder: recorder, queue: queue}
}

// RetryPending drains up to batch queued records.
func (uc *paymentUseCaseImpl) RetryPending(ctx context.Context, batch int) (PaymentRetryResult, error) {
	var res PaymentRetryResult

	reqs, err := uc.queue.Dequeue(ctx, batch)
	if err != nil {
		return res, err
	}

	for _, req := range reqs {
		res.Attempted++
		err := uc.recorder.RecordPayment(ctx, req.BookingID, req.AmountCents, req.Status)
		if err == nil {
			res.Recorded++
			continue
		}

		req.Attempts++
		if req.Attempts >= MaxPaymentAttempts {
			res.Dropped++
			slog.Error("payment record abandoned after max attempts",
				"booking_id", req.BookingID,
				"attempts", req.Attempts,
				"error", err)
			continue
		}

		if qerr := uc.queue.Enqueue(ctx, req); qerr != nil {
			return res, qerr
		}
		res.Requeued++
	}

	if res.Attempted > 0 {
		slog.Info("payment retry batch processed",
			"attempted", res.Attempted,
			"recorded", res.Recorded,
			"requeued", res.Requeued,
			"dropped", res.Dropped)
	}
	return res, nil
}
