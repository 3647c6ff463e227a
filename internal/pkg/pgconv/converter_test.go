package pgconv

import (
	"testing"
	"time"

	"guidely/internal/domain/availability"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDateRoundTrip(t *testing.T) {
	d := availability.Date{Year: 2026, Month: time.March, Day: 2}

	assert.Equal(t, d, DateFromPgtype(DateToPgtype(d)))
	assert.False(t, DateToPgtype(availability.Date{}).Valid)
	assert.True(t, DateFromPgtype(DateToPgtype(availability.Date{})).IsZero())
}

func TestNullables(t *testing.T) {
	assert.False(t, UUIDOrNull(uuid.Nil).Valid)
	assert.False(t, StringOrNull("").Valid)
	assert.Equal(t, "", StringFromPgtype(StringOrNull("")))
	assert.Nil(t, TimePtrFromPgtype(TimePtrToPgtype(nil)))

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	got := TimePtrFromPgtype(TimePtrToPgtype(&now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}

func TestHasCode(t *testing.T) {
	exclusion := errors.Wrap(&pgconn.PgError{Code: PgErrCodeExclusionViolation}, "insert booking")

	assert.True(t, HasCode(exclusion, PgErrCodeExclusionViolation))
	assert.False(t, HasCode(exclusion, PgErrCodeUniqueViolation))
	assert.False(t, HasCode(errors.New("plain"), PgErrCodeUniqueViolation))
	assert.True(t, IsNoRows(errors.Wrap(pgx.ErrNoRows, "find")))
}
