package queries

import (
	"context"
	"time"

	"guidely/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating.go -destination=../../../tests/mock/queries/rating.go -package=queriesmock

type RatingStatsView struct {
	GuideID       uuid.UUID `json:"guide_id"`
	TotalRatings  int       `json:"total_ratings"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int       `json:"rating_1_count"`
	Rating2Count  int       `json:"rating_2_count"`
	Rating3Count  int       `json:"rating_3_count"`
	Rating4Count  int       `json:"rating_4_count"`
	Rating5Count  int       `json:"rating_5_count"`
	// zero until the guide's first rating
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRatingStatsView(s booking.RatingStats) *RatingStatsView {
	return &RatingStatsView{
		GuideID:       s.GuideID,
		TotalRatings:  s.TotalRatings,
		AverageRating: s.AverageRating,
		Rating1Count:  s.Counts[0],
		Rating2Count:  s.Counts[1],
		Rating3Count:  s.Counts[2],
		Rating4Count:  s.Counts[3],
		Rating5Count:  s.Counts[4],
		UpdatedAt:     s.UpdatedAt,
	}
}

type RatingQueries interface {
	GuideRatingStats(ctx context.Context, guideID uuid.UUID) (*RatingStatsView, error)
}

type RatingStatsReadStore interface {
	GuideRatingStats(ctx context.Context, guideID uuid.UUID) (booking.RatingStats, error)
}

type ratingQueriesImpl struct {
	store RatingStatsReadStore
}

func NewRatingQueries(store RatingStatsReadStore) RatingQueries {
	return &ratingQueriesImpl{store: store}
}

func (q *ratingQueriesImpl) GuideRatingStats(ctx context.Context, guideID uuid.UUID) (*RatingStatsView, error) {
	stats, err := q.store.GuideRatingStats(ctx, guideID)
	if err != nil {
		return nil, err
	}
	return NewRatingStatsView(stats), nil
}
