package commands

import (
	"context"
	"log/slog"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	"guidely/internal/infra"
	"guidely/internal/pkg/clock"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sweeper.go -destination=../../../tests/mock/commands/sweeper.go -package=commandsmock

const sweepBatchSize = 500

type SweepResult struct {
	Scanned   int `json:"scanned"`
	Completed int `json:"completed"`
	NoShow    int `json:"no_show"`
	Expired   int `json:"expired"`
	Skipped   int `json:"skipped"`
}

func (r SweepResult) Changed() int { return r.Completed + r.NoShow + r.Expired }

type SweepCommands interface {
	// Sweep reconciles every transient booking against the clock.
	Sweep(ctx context.Context) (SweepResult, error)
	// SweepFor limits the sweep to the actor's bookings. Admins sweep all.
	SweepFor(ctx context.Context, actor user.Actor) (SweepResult, error)
	Reconcile(ctx context.Context, actor user.Actor) error
}

type sweeperUseCaseImpl struct {
	uow      shared.UnitOfWork
	payments *paymentSettler
	clock    clock.Clock
}

func NewSweeperUseCase(uow shared.UnitOfWork, recorder PaymentRecorder, retryQueue PaymentRetryQueue, clk clock.Clock) SweepCommands {
	return &sweeperUseCaseImpl{
		uow:      uow,
		payments: newPaymentSettler(recorder, retryQueue, clk),
		clock:    clk,
	}
}

func (uc *sweeperUseCaseImpl) Sweep(ctx context.Context) (SweepResult, error) {
	return uc.sweep(ctx, uuid.Nil)
}

func (uc *sweeperUseCaseImpl) SweepFor(ctx context.Context, actor user.Actor) (SweepResult, error) {
	if actor.IsAdmin() {
		return uc.sweep(ctx, uuid.Nil)
	}
	return uc.sweep(ctx, actor.UserID)
}

func (uc *sweeperUseCaseImpl) Reconcile(ctx context.Context, actor user.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	_, err := uc.sweep(ctx, actor.UserID)
	return err
}

func (uc *sweeperUseCaseImpl) sweep(ctx context.Context, participant uuid.UUID) (SweepResult, error) {
	var res SweepResult
	now := uc.clock.Now()

	candidates, err := uc.uow.Reads().SweepCandidates(ctx, shared.SweepQuery{
		Now:           now,
		ParticipantID: participant,
		Limit:         sweepBatchSize,
	})
	if err != nil {
		return res, err
	}
	res.Scanned = len(candidates)

	for _, b := range candidates {
		expected := b.Status()
		if !b.Sweep(now) {
			res.Skipped++
			continue
		}

		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Bookings().Update(ctx, b, expected)
		})
		if infra.IsKind(err, infra.KindStale) {
			// a user action got there first
			res.Skipped++
			continue
		}
		if err != nil {
			return res, err
		}

		switch b.Status() {
		case booking.StatusCompleted:
			res.Completed++
			uc.payments.settle(ctx, b)
		case booking.StatusNoShow:
			res.NoShow++
		case booking.StatusCancelled:
			res.Expired++
		}
	}

	if res.Changed() > 0 {
		slog.Info("booking statuses swept",
			"participant_id", participant,
			"scanned", res.Scanned,
			"completed", res.Completed,
			"no_show", res.NoShow,
			"expired", res.Expired,
			"skipped", res.Skipped)
	}
	return res, nil
}
