package readstore

import (
	"context"

	"guidely/internal/domain/service"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	FindServiceByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Services, error)
	ListServicesByGuide(ctx context.Context, db pgquery.DBTX, guideID uuid.UUID, activeOnly bool) ([]pgquery.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      pgquery.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db pgquery.DBTX) *ServiceReadStore {
	return &ServiceReadStore{queries: queries, db: db}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceReadStore) ListByGuide(ctx context.Context, guideID uuid.UUID, activeOnly bool) ([]*service.Service, error) {
	rows, err := r.queries.ListServicesByGuide(ctx, r.db, guideID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	out := make([]*service.Service, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ServiceFromRow(row))
	}
	return out, nil
}
