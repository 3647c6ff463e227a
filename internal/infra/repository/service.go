package repository

import (
	"context"

	"guidely/internal/domain/service"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/repository/converter"
)

type ServiceWriteQueries interface {
	InsertService(ctx context.Context, db pgquery.DBTX, arg pgquery.Services) error
	UpdateService(ctx context.Context, db pgquery.DBTX, arg pgquery.Services) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      pgquery.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db pgquery.DBTX) *ServiceRepository {
	return &ServiceRepository{queries: queries, db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	if err := r.queries.InsertService(ctx, r.db, converter.ServiceToRow(s)); err != nil {
		return classifyWriteErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	n, err := r.queries.UpdateService(ctx, r.db, converter.ServiceToRow(s))
	if err != nil {
		return classifyWriteErr("failed to update service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
