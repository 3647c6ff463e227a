package notification_test

import (
	"testing"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/notification"
	"guidely/internal/domain/user"
	"guidely/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForBooking_Recipients(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	bb := builder.NewBookingBuilder()
	b := bb.BuildDomain()

	t.Run("learner action notifies the guide", func(t *testing.T) {
		events := notification.ForBooking(notification.KindCreated, b, bb.Learner(), "", now)

		require.Len(t, events, 1)
		assert.Equal(t, b.GuideID(), events[0].RecipientID)
		assert.Equal(t, user.RoleLearner, events[0].ActorRole)
	})

	t.Run("guide action notifies the learner", func(t *testing.T) {
		events := notification.ForBooking(notification.KindConfirmed, b, bb.Guide(), "", now)

		require.Len(t, events, 1)
		assert.Equal(t, b.LearnerID(), events[0].RecipientID)
	})

	t.Run("admin action notifies both", func(t *testing.T) {
		admin := user.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

		events := notification.ForBooking(notification.KindCancelled, b, admin, "policy", now)

		require.Len(t, events, 2)
		assert.ElementsMatch(t, []uuid.UUID{b.LearnerID(), b.GuideID()},
			[]uuid.UUID{events[0].RecipientID, events[1].RecipientID})
		assert.Equal(t, "policy", events[0].Reason)
	})
}

func TestForBooking_RescheduleCarriesPreviousStart(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
	b := bb.BuildDomain()
	oldStart := b.ScheduledStart()

	require.NoError(t, b.Reschedule(bb.Learner(), oldStart.Add(48*time.Hour), "travel", now))

	events := notification.ForBooking(notification.KindRescheduled, b, bb.Learner(), "travel", now)

	require.Len(t, events, 1)
	require.NotNil(t, events[0].PreviousStart)
	assert.Equal(t, oldStart, *events[0].PreviousStart)
	assert.Contains(t, events[0].Body(), "Previously:")
	assert.Contains(t, events[0].Subject(), "rescheduled")
}
