package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestService(t *testing.T, db DBLike, guideID uuid.UUID, name string, durationMinutes int, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO services (id, guide_id, name, duration_minutes, price_cents, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, true, $6, $6)`,
		id, guideID, name, durationMinutes, priceCents, now)
	require.NoError(t, err)
	return id
}

// SetOpenAllWeek gives the guide a single range, in minutes since midnight, on every weekday.
func SetOpenAllWeek(t *testing.T, db DBLike, guideID uuid.UUID, timezone string, startMin, endMin int) {
	t.Helper()

	names := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, fmt.Sprintf(`%q: [{"start": %d, "end": %d}]`, n, startMin, endMin))
	}
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO weekly_availability (guide_id, timezone, days, created_at, updated_at)
		 VALUES ($1, $2, $3::jsonb, $4, $4)
		 ON CONFLICT (guide_id) DO UPDATE SET timezone = EXCLUDED.timezone, days = EXCLUDED.days, updated_at = EXCLUDED.updated_at`,
		guideID, timezone, "{"+strings.Join(parts, ", ")+"}", now)
	require.NoError(t, err)
}

func CountBookings(t *testing.T, db DBLike, guideID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE guide_id = $1 AND status = $2", guideID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// SetBookingStatus moves a booking directly, bypassing the state machine.
func SetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET status = $2, version = version + 1 WHERE id = $1", bookingID, status)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
