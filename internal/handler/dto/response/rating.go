package response

import (
	"time"

	"guidely/internal/usecase/queries"
)

type RatingStatsResponse struct {
	GuideID       string    `json:"guide_id"`
	TotalRatings  int       `json:"total_ratings"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int       `json:"rating_1_count"`
	Rating2Count  int       `json:"rating_2_count"`
	Rating3Count  int       `json:"rating_3_count"`
	Rating4Count  int       `json:"rating_4_count"`
	Rating5Count  int       `json:"rating_5_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromRatingStatsView(v *queries.RatingStatsView) (*RatingStatsResponse, error) {
	return fromView[RatingStatsResponse](v)
}
