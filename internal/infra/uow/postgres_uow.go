package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/booking"
	"guidely/internal/domain/service"
	"guidely/internal/domain/user"
	"guidely/internal/infra/pgquery"
	"guidely/internal/infra/readstore"
	"guidely/internal/infra/repository"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgquery.Queries
	reads *commandReads
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) *PostgresUoW {
	u := &PostgresUoW{
		pool: pool,
		q:    q,
	}
	u.reads = newCommandReads(q, pool)
	return u
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return u.reads
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	q    *pgquery.Queries

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	availabilityRepo shared.AvailabilityRepository
	serviceRepo      shared.ServiceRepository
	ratingStatsRepo  shared.RatingStatsRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Availability() shared.AvailabilityRepository {
	if t.availabilityRepo == nil {
		t.availabilityRepo = repository.NewAvailabilityRepository(t.q, t.dbtx)
	}
	return t.availabilityRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.q, t.dbtx)
	}
	return t.serviceRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = repository.NewRatingStatsRepository(t.q, t.dbtx)
	}
	return t.ratingStatsRepo
}

// Reads sees the transaction's own uncommitted writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	bookings     *readstore.BookingReadStore
	availability *readstore.AvailabilityReadStore
	services     *readstore.ServiceReadStore
	users        *readstore.UserReadStore
}

func newCommandReads(q *pgquery.Queries, dbtx pgquery.DBTX) *commandReads {
	return &commandReads{
		bookings:     readstore.NewBookingReadStore(q, dbtx),
		availability: readstore.NewAvailabilityReadStore(q, dbtx),
		services:     readstore.NewServiceReadStore(q, dbtx),
		users:        readstore.NewUserReadStore(q, dbtx),
	}
}

func (r *commandReads) WeeklyAvailability(ctx context.Context, guideID uuid.UUID) (*availability.WeeklyAvailability, error) {
	return r.availability.WeeklyAvailability(ctx, guideID)
}

func (r *commandReads) UnavailableDates(ctx context.Context, guideID uuid.UUID, from, to availability.Date) ([]availability.UnavailableDate, error) {
	return r.availability.UnavailableDates(ctx, guideID, from, to)
}

func (r *commandReads) BusyWindows(ctx context.Context, guideID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]availability.Window, error) {
	return r.bookings.BusyWindows(ctx, guideID, from, to, exclude)
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	return r.services.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.FindByID(ctx, id)
}

func (r *commandReads) Contact(ctx context.Context, userID uuid.UUID) (user.Contact, error) {
	return r.users.FindContact(ctx, userID)
}

func (r *commandReads) SweepCandidates(ctx context.Context, q shared.SweepQuery) ([]*booking.Booking, error) {
	return r.bookings.SweepCandidates(ctx, q)
}
