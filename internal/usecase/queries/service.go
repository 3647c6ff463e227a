package queries

import (
	"context"
	"time"

	"guidely/internal/domain/service"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=queriesmock

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	GuideID         uuid.UUID `json:"guide_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewServiceView(s *service.Service) *ServiceView {
	return &ServiceView{
		ID:              s.ID(),
		GuideID:         s.GuideID(),
		Name:            s.Name(),
		DurationMinutes: s.DurationMinutes(),
		PriceCents:      s.PriceCents(),
		Active:          s.IsActive(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

type ServiceQueries interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID, includeInactive bool) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID, activeOnly bool) ([]*service.Service, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) ListByGuide(ctx context.Context, guideID uuid.UUID, includeInactive bool) ([]*ServiceView, error) {
	rows, err := q.store.ListByGuide(ctx, guideID, !includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]*ServiceView, 0, len(rows))
	for _, s := range rows {
		out = append(out, NewServiceView(s))
	}
	return out, nil
}
