package readstore

import (
	"context"

	"guidely/internal/domain/booking"
	"guidely/internal/infra"
	"guidely/internal/infra/pgquery"
	"guidely/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating_stats.go -destination=../../../tests/mock/readstore/rating_stats.go -package=readstoremock

type RatingStatsReadQueries interface {
	GetGuideRatingStats(ctx context.Context, db pgquery.DBTX, guideID uuid.UUID) (pgquery.GuideRatingStats, error)
}

type RatingStatsReadStore struct {
	queries RatingStatsReadQueries
	db      pgquery.DBTX
}

func NewRatingStatsReadStore(queries RatingStatsReadQueries, db pgquery.DBTX) *RatingStatsReadStore {
	return &RatingStatsReadStore{queries: queries, db: db}
}

// GuideRatingStats returns zero stats for a guide nobody has rated yet.
func (r *RatingStatsReadStore) GuideRatingStats(ctx context.Context, guideID uuid.UUID) (booking.RatingStats, error) {
	row, err := r.queries.GetGuideRatingStats(ctx, r.db, guideID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.RatingStats{GuideID: guideID}, nil
		}
		return booking.RatingStats{}, infra.WrapRepoErr("failed to load rating stats", err)
	}
	return booking.RatingStats{
		GuideID:       row.GuideID,
		TotalRatings:  int(row.TotalRatings),
		AverageRating: row.AverageRating,
		Counts: [5]int{
			int(row.Rating1Count), int(row.Rating2Count), int(row.Rating3Count),
			int(row.Rating4Count), int(row.Rating5Count),
		},
		UpdatedAt: row.UpdatedAt,
	}, nil
}
