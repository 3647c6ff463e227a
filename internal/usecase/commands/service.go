package commands

import (
	"context"

	"guidely/internal/domain/service"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=../../../tests/mock/commands/service.go -package=commandsmock

var ErrGuideOnlyService = errs.Mark(errs.New("only guides manage services"), errs.ErrForbidden)

type CreateServiceInput struct {
	Name            string
	DurationMinutes int
	PriceCents      int64
}

type ServiceCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateServiceInput) (*queries.ServiceView, error)
	SetActive(ctx context.Context, actor user.Actor, serviceID uuid.UUID, active bool) (*queries.ServiceView, error)
}

type serviceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewServiceUseCase(uow shared.UnitOfWork, clk clock.Clock) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *serviceUseCaseImpl) Create(ctx context.Context, actor user.Actor, in CreateServiceInput) (*queries.ServiceView, error) {
	if actor.Role != user.RoleGuide {
		return nil, ErrGuideOnlyService
	}

	s, err := service.NewService(actor.UserID, in.Name, in.DurationMinutes, in.PriceCents, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewServiceView(s), nil
}

func (uc *serviceUseCaseImpl) SetActive(ctx context.Context, actor user.Actor, serviceID uuid.UUID, active bool) (*queries.ServiceView, error) {
	if actor.Role != user.RoleGuide {
		return nil, ErrGuideOnlyService
	}

	var updated *service.Service
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		if err := s.SetActive(actor.UserID, active, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Services().Update(ctx, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewServiceView(updated), nil
}
