package queries_test

import (
	"testing"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/service"
	"guidely/internal/pkg/clock"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"
	"guidely/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlotQueries(t *testing.T) (queries.AvailabilityQueries, *memstore.Store, uuid.UUID) {
	t.Helper()
	store := memstore.New(t)
	clk := clock.NewMockClock(time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC))
	guideID := uuid.New()

	morning, err := availability.NewTimeRange("09:00", "11:00")
	require.NoError(t, err)
	w, err := availability.NewWeeklyAvailability(guideID, "UTC",
		map[time.Weekday][]availability.TimeRange{time.Monday: {morning}}, clk.Now())
	require.NoError(t, err)
	store.PutWeekly(w)

	planner := shared.NewSlotPlanner(clk, config.NewTestConfig().Booking)
	return queries.NewAvailabilityQueries(store, planner), store, guideID
}

func TestGenerateSlots_FromService(t *testing.T) {
	q, store, guideID := newSlotQueries(t)
	svc, err := service.NewService(guideID, "Deep dive", 90, 9000, time.Now())
	require.NoError(t, err)
	store.PutService(svc)

	plan, err := q.GenerateSlots(t.Context(), queries.SlotsInput{
		GuideID:   guideID,
		ServiceID: svc.ID(),
		From:      availability.Date{Year: 2026, Month: time.March, Day: 2},
		Days:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, 90, plan.DurationMinutes)
	require.NotNil(t, plan.ServiceID)
	// 120 minutes fit one 90 minute slot; the remainder is dropped
	require.Len(t, plan.Days[0].Slots, 1)
	assert.Equal(t, "09:00", plan.Days[0].Slots[0].StartTime)
	assert.Equal(t, "10:30", plan.Days[0].Slots[0].EndTime)
}

func TestGenerateSlots_DefaultsToAWeekFromToday(t *testing.T) {
	q, _, guideID := newSlotQueries(t)

	plan, err := q.GenerateSlots(t.Context(), queries.SlotsInput{GuideID: guideID, DurationMinutes: 60})
	require.NoError(t, err)

	require.Len(t, plan.Days, queries.DefaultSlotDays)
	assert.Equal(t, "2026-02-27", plan.Days[0].Date)
	assert.True(t, plan.Configured)
}

func TestGenerateSlots_UnconfiguredGuide(t *testing.T) {
	q, _, _ := newSlotQueries(t)

	plan, err := q.GenerateSlots(t.Context(), queries.SlotsInput{GuideID: uuid.New(), DurationMinutes: 60, Days: 3})
	require.NoError(t, err)

	assert.False(t, plan.Configured)
	require.Len(t, plan.Days, 3)
	for _, d := range plan.Days {
		assert.Empty(t, d.Slots)
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	q, store, guideID := newSlotQueries(t)
	foreign, err := service.NewService(uuid.New(), "Other", 30, 0, time.Now())
	require.NoError(t, err)
	store.PutService(foreign)

	testCases := []struct {
		name     string
		in       queries.SlotsInput
		category error
	}{
		{name: "no duration or service", in: queries.SlotsInput{GuideID: guideID}, category: errs.ErrValidation},
		{name: "duration over a day", in: queries.SlotsInput{GuideID: guideID, DurationMinutes: 1441}, category: errs.ErrValidation},
		{name: "negative duration", in: queries.SlotsInput{GuideID: guideID, DurationMinutes: -30}, category: errs.ErrValidation},
		{name: "horizon too far", in: queries.SlotsInput{GuideID: guideID, DurationMinutes: 60, Days: 61}, category: errs.ErrValidation},
		{name: "service of another guide", in: queries.SlotsInput{GuideID: guideID, ServiceID: foreign.ID()}, category: errs.ErrValidation},
		{name: "unknown service", in: queries.SlotsInput{GuideID: guideID, ServiceID: uuid.New()}, category: errs.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := q.GenerateSlots(t.Context(), tc.in)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.category), "got %v", err)
		})
	}
}

func TestGetWeekly_NotConfigured(t *testing.T) {
	q, _, _ := newSlotQueries(t)

	_, err := q.GetWeekly(t.Context(), uuid.New())

	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
