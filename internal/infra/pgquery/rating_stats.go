package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const recalcGuideRatingStats = `INSERT INTO guide_rating_stats (
	guide_id, total_ratings, average_rating,
	rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
)
SELECT
	$1::uuid,
	count(*),
	COALESCE(round(avg(s.score)::numeric, 2), 0)::float8,
	count(*) FILTER (WHERE s.score = 1),
	count(*) FILTER (WHERE s.score = 2),
	count(*) FILTER (WHERE s.score = 3),
	count(*) FILTER (WHERE s.score = 4),
	count(*) FILTER (WHERE s.score = 5),
	$2::timestamptz
FROM (
	SELECT (rating->>'score')::int AS score
	FROM bookings
	WHERE guide_id = $1 AND jsonb_typeof(rating) = 'object'
) s
WHERE s.score BETWEEN 1 AND 5
ON CONFLICT (guide_id) DO UPDATE SET
	total_ratings = EXCLUDED.total_ratings,
	average_rating = EXCLUDED.average_rating,
	rating_1_count = EXCLUDED.rating_1_count,
	rating_2_count = EXCLUDED.rating_2_count,
	rating_3_count = EXCLUDED.rating_3_count,
	rating_4_count = EXCLUDED.rating_4_count,
	rating_5_count = EXCLUDED.rating_5_count,
	updated_at = EXCLUDED.updated_at`

func (q *Queries) RecalcGuideRatingStats(ctx context.Context, db DBTX, guideID uuid.UUID, now time.Time) error {
	_, err := db.Exec(ctx, recalcGuideRatingStats, guideID, now)
	return err
}

const getGuideRatingStats = `SELECT guide_id, total_ratings, average_rating,
	rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
FROM guide_rating_stats WHERE guide_id = $1`

func (q *Queries) GetGuideRatingStats(ctx context.Context, db DBTX, guideID uuid.UUID) (GuideRatingStats, error) {
	var s GuideRatingStats
	err := db.QueryRow(ctx, getGuideRatingStats, guideID).Scan(
		&s.GuideID, &s.TotalRatings, &s.AverageRating,
		&s.Rating1Count, &s.Rating2Count, &s.Rating3Count, &s.Rating4Count, &s.Rating5Count, &s.UpdatedAt)
	return s, err
}
