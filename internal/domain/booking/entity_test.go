package booking_test

import (
	"strings"
	"testing"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/errs"
	"guidely/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	start  = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	policy = booking.DefaultPolicy()
)

func stranger() user.Actor {
	return user.Actor{UserID: uuid.New(), Role: user.RoleGuide}
}

func requireTransitionErr(t *testing.T, err error, from booking.Status, action booking.Action) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
	var te *booking.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, from, te.From)
	assert.Equal(t, action, te.Action)
}

func TestNewBooking(t *testing.T) {
	learner := user.Actor{UserID: uuid.New(), Role: user.RoleLearner}
	now := start.Add(-24 * time.Hour)
	base := booking.NewBookingParams{
		Learner:   learner,
		GuideID:   uuid.New(),
		ServiceID: uuid.New(),
		Service:   booking.ServiceSnapshot{Name: "Mock interview", DurationMinutes: 45, PriceCents: 0},
		Start:     start,
		Now:       now,
	}

	t.Run("creates a pending booking with the service snapshot", func(t *testing.T) {
		b, err := booking.NewBooking(base)
		require.NoError(t, err)

		want := booking.Record{
			ID:             b.ID(),
			LearnerID:      learner.UserID,
			GuideID:        base.GuideID,
			ServiceID:      base.ServiceID,
			Service:        base.Service,
			ScheduledStart: start,
			Status:         booking.StatusPending,
			Achievements:   []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if diff := cmp.Diff(want, b.Record()); diff != "" {
			t.Errorf("record mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, start.Add(45*time.Minute), b.ScheduledEnd())
		assert.True(t, b.Service().IsFree())
	})

	cases := []struct {
		name   string
		mutate func(*booking.NewBookingParams)
		errIs  error
	}{
		{name: "guide role cannot book", mutate: func(p *booking.NewBookingParams) { p.Learner.Role = user.RoleGuide }, errIs: booking.ErrRoleNotAllowed},
		{name: "self booking", mutate: func(p *booking.NewBookingParams) { p.GuideID = p.Learner.UserID }, errIs: booking.ErrSelfBooking},
		{name: "zero duration", mutate: func(p *booking.NewBookingParams) { p.Service.DurationMinutes = 0 }, errIs: booking.ErrInvalidService},
		{name: "start in past", mutate: func(p *booking.NewBookingParams) { p.Now = start }, errIs: booking.ErrStartInPast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)
			_, err := booking.NewBooking(p)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestConfirm(t *testing.T) {
	now := start.Add(-2 * time.Hour)

	t.Run("guide confirms with meeting link", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		require.NoError(t, b.Confirm(bb.Guide(), " https://meet.example.com/abc ", now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "https://meet.example.com/abc", b.MeetingLink())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("learner cannot confirm", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		err := bb.BuildDomain().Confirm(bb.Learner(), "", now)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		require.ErrorIs(t, err, booking.ErrRoleNotAllowed)
	})

	t.Run("other guide cannot confirm", func(t *testing.T) {
		err := builder.NewBookingBuilder().BuildDomain().Confirm(stranger(), "", now)
		require.ErrorIs(t, err, booking.ErrNotParticipant)
	})

	t.Run("confirmed booking cannot be confirmed again", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		err := bb.BuildDomain().Confirm(bb.Guide(), "", now)
		requireTransitionErr(t, err, booking.StatusConfirmed, booking.ActionConfirm)
	})

	t.Run("bad meeting link leaves booking untouched", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		err := b.Confirm(bb.Guide(), "ftp://files.example.com", now)
		require.ErrorIs(t, err, booking.ErrInvalidMeetingLink)
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}

func TestCancelAndDecline(t *testing.T) {
	now := start.Add(-time.Hour)

	t.Run("either participant cancels pending or confirmed", func(t *testing.T) {
		for _, st := range []booking.Status{booking.StatusPending, booking.StatusConfirmed} {
			bb := builder.NewBookingBuilder().WithStatus(st)
			for _, actor := range []user.Actor{bb.Learner(), bb.Guide()} {
				b := bb.BuildDomain()
				require.NoError(t, b.Cancel(actor, "conflict", now))
				assert.Equal(t, booking.StatusCancelled, b.Status())
				assert.Equal(t, "conflict", b.CancellationReason())
				assert.Equal(t, actor.Role, b.CancelledBy())
			}
		}
	})

	t.Run("admin may cancel", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		admin := user.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
		require.NoError(t, b.Cancel(admin, "moderation", now))
		assert.Equal(t, user.RoleAdmin, b.CancelledBy())
	})

	t.Run("in-progress and terminal bookings cannot be cancelled", func(t *testing.T) {
		for _, st := range []booking.Status{booking.StatusInProgress, booking.StatusCompleted, booking.StatusCancelled, booking.StatusNoShow} {
			bb := builder.NewBookingBuilder().WithStatus(st)
			err := bb.BuildDomain().Cancel(bb.Learner(), "", now)
			requireTransitionErr(t, err, st, booking.ActionCancel)
		}
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		err := builder.NewBookingBuilder().BuildDomain().Cancel(stranger(), "", now)
		require.ErrorIs(t, err, booking.ErrNotParticipant)
	})

	t.Run("guide declines pending", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		require.NoError(t, b.Decline(bb.Guide(), "fully booked", now))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, user.RoleGuide, b.CancelledBy())
	})

	t.Run("decline requires pending", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		err := bb.BuildDomain().Decline(bb.Guide(), "", now)
		requireTransitionErr(t, err, booking.StatusConfirmed, booking.ActionDecline)
	})

	t.Run("reason length is bounded", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		err := bb.BuildDomain().Cancel(bb.Learner(), strings.Repeat("r", booking.MaxReasonLength+1), now)
		require.ErrorIs(t, err, booking.ErrReasonTooLong)
	})
}

func TestStart(t *testing.T) {
	t.Run("start window boundaries", func(t *testing.T) {
		cases := []struct {
			name string
			at   time.Time
			ok   bool
		}{
			{name: "20 minutes early", at: start.Add(-20 * time.Minute)},
			{name: "just before window", at: start.Add(-15*time.Minute - time.Second)},
			{name: "window opens", at: start.Add(-15 * time.Minute), ok: true},
			{name: "10 minutes early", at: start.Add(-10 * time.Minute), ok: true},
			{name: "mid session", at: start.Add(30 * time.Minute), ok: true},
			{name: "session end", at: start.Add(60 * time.Minute)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
				b := bb.BuildDomain()
				err := b.Start(bb.Guide(), tc.at, policy)
				if !tc.ok {
					require.ErrorIs(t, err, booking.ErrOutsideStartWindow)
					assert.Equal(t, booking.StatusConfirmed, b.Status())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, booking.StatusInProgress, b.Status())
				require.NotNil(t, b.StartedAt())
				assert.Equal(t, tc.at, *b.StartedAt())
			})
		}
	})

	t.Run("learner may start", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		assert.NoError(t, bb.BuildDomain().Start(bb.Learner(), start, policy))
	})

	t.Run("pending booking cannot start", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		err := bb.BuildDomain().Start(bb.Guide(), start, policy)
		requireTransitionErr(t, err, booking.StatusPending, booking.ActionStart)
	})
}

func TestComplete(t *testing.T) {
	now := start.Add(50 * time.Minute)

	t.Run("guide completes in-progress session", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusInProgress)
		b := bb.BuildDomain()
		require.NoError(t, b.Complete(bb.Guide(), "covered interfaces", []string{" generics ", "", "testing"}, now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, []string{"generics", "testing"}, b.Achievements())
		assert.Equal(t, "covered interfaces", b.SessionNotes())
		require.NotNil(t, b.CompletedAt())
	})

	t.Run("learner cannot complete", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusInProgress)
		err := bb.BuildDomain().Complete(bb.Learner(), "", nil, now)
		require.ErrorIs(t, err, booking.ErrRoleNotAllowed)
	})

	t.Run("confirmed cannot complete", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		err := bb.BuildDomain().Complete(bb.Guide(), "", nil, now)
		requireTransitionErr(t, err, booking.StatusConfirmed, booking.ActionComplete)
	})

	t.Run("too many achievements", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusInProgress)
		items := make([]string, booking.MaxAchievements+1)
		for i := range items {
			items[i] = "item"
		}
		err := bb.BuildDomain().Complete(bb.Guide(), "", items, now)
		require.ErrorIs(t, err, booking.ErrInvalidAchievements)
	})
}

func TestRateAndFeedback(t *testing.T) {
	now := start.Add(2 * time.Hour)

	t.Run("score bounds", func(t *testing.T) {
		for score, ok := range map[int]bool{0: false, 1: true, 5: true, 6: false, -1: false} {
			bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
			err := bb.BuildDomain().Rate(bb.Learner(), score, "thanks", now)
			if ok {
				assert.NoError(t, err, "score %d", score)
			} else {
				assert.ErrorIs(t, err, booking.ErrInvalidRating, "score %d", score)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			}
		}
	})

	t.Run("second rating is rejected and first is kept", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		b := bb.BuildDomain()
		require.NoError(t, b.Rate(bb.Learner(), 4, "good", now))

		err := b.Rate(bb.Learner(), 1, "changed my mind", now)
		require.ErrorIs(t, err, booking.ErrAlreadyRated)
		assert.True(t, errs.Is(err, errs.ErrInvalidStateTransition))
		assert.Equal(t, 4, b.Rating().Score)
		assert.Equal(t, "good", b.Rating().Comment)
	})

	t.Run("only completed bookings can be rated", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusNoShow)
		err := bb.BuildDomain().Rate(bb.Learner(), 5, "", now)
		requireTransitionErr(t, err, booking.StatusNoShow, booking.ActionRate)
	})

	t.Run("guide cannot rate", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		err := bb.BuildDomain().Rate(bb.Guide(), 5, "", now)
		require.ErrorIs(t, err, booking.ErrRoleNotAllowed)
	})

	t.Run("feedback once", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		b := bb.BuildDomain()
		require.NoError(t, b.AddFeedback(bb.Learner(), "clear explanations", "more exercises", []string{"pairing", " "}, now))
		assert.Equal(t, []string{"pairing"}, b.Feedback().Highlights)

		err := b.AddFeedback(bb.Learner(), "again", "", nil, now)
		require.ErrorIs(t, err, booking.ErrFeedbackAlreadyGiven)
	})

	t.Run("empty feedback", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted)
		err := bb.BuildDomain().AddFeedback(bb.Learner(), "   ", "", nil, now)
		require.ErrorIs(t, err, booking.ErrEmptyFeedback)
	})
}

func TestReschedule(t *testing.T) {
	now := start.Add(-48 * time.Hour)
	newStart := start.Add(24 * time.Hour)

	t.Run("records history and keeps status", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		b := bb.BuildDomain()
		require.NoError(t, b.Reschedule(bb.Learner(), newStart, "travel", now))

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, newStart, b.ScheduledStart())
		require.Len(t, b.RescheduleHistory(), 1)
		h := b.RescheduleHistory()[0]
		assert.Equal(t, start, h.From)
		assert.Equal(t, newStart, h.To)
		assert.Equal(t, user.RoleLearner, h.By)
		assert.Equal(t, "travel", h.Reason)
	})

	t.Run("past start", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		err := bb.BuildDomain().Reschedule(bb.Guide(), now.Add(-time.Minute), "", now)
		require.ErrorIs(t, err, booking.ErrStartInPast)
	})

	t.Run("same start", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		err := bb.BuildDomain().Reschedule(bb.Guide(), start, "", now)
		require.ErrorIs(t, err, booking.ErrSameStart)
	})

	t.Run("in-progress cannot be rescheduled", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusInProgress)
		err := bb.BuildDomain().Reschedule(bb.Guide(), newStart, "", now)
		requireTransitionErr(t, err, booking.StatusInProgress, booking.ActionReschedule)
	})
}

func TestSweepAndEffectiveStatus(t *testing.T) {
	end := start.Add(time.Hour)

	cases := []struct {
		name      string
		status    booking.Status
		at        time.Time
		swept     bool
		sweepTo   booking.Status
		effective booking.Status
	}{
		{name: "confirmed before start", status: booking.StatusConfirmed, at: start.Add(-time.Hour), effective: booking.StatusConfirmed},
		{name: "confirmed live", status: booking.StatusConfirmed, at: start.Add(10 * time.Minute), effective: booking.StatusInProgress},
		{name: "confirmed elapsed", status: booking.StatusConfirmed, at: end, swept: true, sweepTo: booking.StatusNoShow, effective: booking.StatusNoShow},
		{name: "in-progress live", status: booking.StatusInProgress, at: start.Add(10 * time.Minute), effective: booking.StatusInProgress},
		{name: "in-progress elapsed", status: booking.StatusInProgress, at: end.Add(time.Minute), swept: true, sweepTo: booking.StatusCompleted, effective: booking.StatusCompleted},
		{name: "pending before start", status: booking.StatusPending, at: start.Add(-time.Minute), effective: booking.StatusPending},
		{name: "pending past start", status: booking.StatusPending, at: start, swept: true, sweepTo: booking.StatusCancelled, effective: booking.StatusCancelled},
		{name: "completed untouched", status: booking.StatusCompleted, at: end.Add(time.Hour), effective: booking.StatusCompleted},
		{name: "cancelled untouched", status: booking.StatusCancelled, at: end.Add(time.Hour), effective: booking.StatusCancelled},
		{name: "no-show untouched", status: booking.StatusNoShow, at: end.Add(time.Hour), effective: booking.StatusNoShow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.status).BuildDomain()
			assert.Equal(t, tc.effective, booking.DeriveEffectiveStatus(b, tc.at))

			before := b.Status()
			changed := b.Sweep(tc.at)
			assert.Equal(t, tc.swept, changed)
			if tc.swept {
				assert.Equal(t, tc.sweepTo, b.Status())
				assert.True(t, booking.IsValidTransition(before, b.Status()))
				assert.False(t, b.Sweep(tc.at), "second sweep must be a no-op")
			} else {
				assert.Equal(t, tc.status, b.Status())
			}
		})
	}

	t.Run("expired pending carries a reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		require.True(t, b.Sweep(start))
		assert.Equal(t, booking.ExpiredReason, b.CancellationReason())
	})
}
