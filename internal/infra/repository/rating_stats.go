package repository

import (
	"context"
	"time"

	"guidely/internal/infra/pgquery"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating_stats.go -destination=../../../tests/mock/repository/rating_stats.go -package=repositorymock

type RatingStatsWriteQueries interface {
	RecalcGuideRatingStats(ctx context.Context, db pgquery.DBTX, guideID uuid.UUID, now time.Time) error
}

type RatingStatsRepository struct {
	queries RatingStatsWriteQueries
	db      pgquery.DBTX
}

func NewRatingStatsRepository(queries RatingStatsWriteQueries, db pgquery.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries, db: db}
}

// Recalc rebuilds the guide's stats row from the ratings visible to db.
func (r *RatingStatsRepository) Recalc(ctx context.Context, guideID uuid.UUID, now time.Time) error {
	if err := r.queries.RecalcGuideRatingStats(ctx, r.db, guideID, now); err != nil {
		return classifyWriteErr("failed to recalculate rating stats", err)
	}
	return nil
}
