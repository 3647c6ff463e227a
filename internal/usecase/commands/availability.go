package commands

import (
	"context"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/commands/availability.go -package=commandsmock

var ErrGuideOnly = errs.Mark(errs.New("only guides manage availability"), errs.ErrForbidden)

type UpsertWeeklyInput struct {
	// empty keeps the default timezone
	Timezone string
	Days     map[time.Weekday][]availability.TimeRange
}

type AvailabilityCommands interface {
	UpsertWeekly(ctx context.Context, actor user.Actor, in UpsertWeeklyInput) (*availability.WeeklyAvailability, error)
	AddUnavailableDate(ctx context.Context, actor user.Actor, date availability.Date, reason string) (availability.UnavailableDate, error)
	RemoveUnavailableDate(ctx context.Context, actor user.Actor, date availability.Date) error
}

type availabilityUseCaseImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	defaultTimezone string
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) AvailabilityCommands {
	return &availabilityUseCaseImpl{
		uow:             uow,
		clock:           clk,
		defaultTimezone: cfg.DefaultTimezone,
	}
}

func (uc *availabilityUseCaseImpl) UpsertWeekly(ctx context.Context, actor user.Actor, in UpsertWeeklyInput) (*availability.WeeklyAvailability, error) {
	if actor.Role != user.RoleGuide {
		return nil, ErrGuideOnly
	}

	tz := in.Timezone
	if tz == "" {
		tz = uc.defaultTimezone
	}

	w, err := availability.NewWeeklyAvailability(actor.UserID, tz, in.Days, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availability().UpsertWeekly(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// AddUnavailableDate blocks date in the guide's timezone. Blocking an
// already blocked date replaces its reason.
func (uc *availabilityUseCaseImpl) AddUnavailableDate(ctx context.Context, actor user.Actor, date availability.Date, reason string) (availability.UnavailableDate, error) {
	if actor.Role != user.RoleGuide {
		return availability.UnavailableDate{}, ErrGuideOnly
	}

	var blocked availability.UnavailableDate
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := uc.guideLocation(ctx, tx.Reads(), actor)
		if err != nil {
			return err
		}
		d, err := availability.NewUnavailableDate(actor.UserID, date, reason, loc, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Availability().AddUnavailableDate(ctx, d); err != nil {
			return err
		}
		blocked = d
		return nil
	})
	if err != nil {
		return availability.UnavailableDate{}, err
	}
	return blocked, nil
}

func (uc *availabilityUseCaseImpl) RemoveUnavailableDate(ctx context.Context, actor user.Actor, date availability.Date) error {
	if actor.Role != user.RoleGuide {
		return ErrGuideOnly
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availability().RemoveUnavailableDate(ctx, actor.UserID, date)
	})
}

func (uc *availabilityUseCaseImpl) guideLocation(ctx context.Context, reads shared.CommandReads, actor user.Actor) (*time.Location, error) {
	w, err := reads.WeeklyAvailability(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if w != nil {
		return w.Location(), nil
	}
	loc, err := time.LoadLocation(uc.defaultTimezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}
