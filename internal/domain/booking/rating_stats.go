package booking

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RatingStats aggregates the ratings left on a guide's bookings.
type RatingStats struct {
	GuideID       uuid.UUID
	TotalRatings  int
	AverageRating float64
	// Counts[i] is the number of ratings with score i+1.
	Counts    [5]int
	UpdatedAt time.Time
}

// TallyRatings builds the stats for scores; out-of-range scores are ignored.
// The average is rounded to two decimals and is zero without ratings.
func TallyRatings(guideID uuid.UUID, scores []int, now time.Time) RatingStats {
	s := RatingStats{GuideID: guideID, UpdatedAt: now}
	sum := 0
	for _, score := range scores {
		if score < 1 || score > 5 {
			continue
		}
		s.Counts[score-1]++
		s.TotalRatings++
		sum += score
	}
	if s.TotalRatings > 0 {
		s.AverageRating = math.Round(float64(sum)/float64(s.TotalRatings)*100) / 100
	}
	return s
}
