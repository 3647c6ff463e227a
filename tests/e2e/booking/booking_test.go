//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"guidely/internal/domain/user"
	"guidely/internal/handler/dto/request"
	"guidely/internal/handler/dto/response"
	"guidely/tests/common/authtest"
	"guidely/tests/common/dbtest"
	"guidely/tests/common/httptest"
	"guidely/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	initiateURL = "/api/booking/initiate-booking"
	confirmURL  = "/api/booking/confirm"
	cancelURL   = "/api/booking/cancel"
	rateURL     = "/api/booking/rate"
	statsURL    = "/api/guides/%s/rating-stats"
	slotsURL    = "/api/availability/%s?serviceId=%s&from=%s&days=1"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	guideID      uuid.UUID
	serviceID    uuid.UUID
	guideToken   string
	learnerToken string
	start        time.Time
}

// newFixture opens the guide 00:00-23:30 UTC every day and picks tomorrow 10:00 as the slot.
func (s *BookingSuite) newFixture(t *testing.T) fixture {
	t.Helper()

	guideID := dbtest.CreateTestUser(t, s.DB, "guide@example.com", "Grace", string(user.RoleGuide))
	learnerID := dbtest.CreateTestUser(t, s.DB, "learner@example.com", "Linus", string(user.RoleLearner))
	serviceID := dbtest.CreateTestService(t, s.DB, guideID, "Code review", 30, 0)
	dbtest.SetOpenAllWeek(t, s.DB, guideID, "UTC", 0, 23*60+30)

	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	return fixture{
		guideID:      guideID,
		serviceID:    serviceID,
		guideToken:   s.jwt.GenerateToken(t, guideID, user.RoleGuide),
		learnerToken: s.jwt.GenerateToken(t, learnerID, user.RoleLearner),
		start:        time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.UTC),
	}
}

func (s *BookingSuite) initiate(t *testing.T, f fixture, token string) *response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL,
		request.InitiateBookingRequest{ServiceID: f.serviceID, ScheduledStart: f.start}, token)
	var env response.BookingEnvelope
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &env)
	require.NotNil(t, env.Booking)
	return env.Booking
}

func (s *BookingSuite) slotFree(t *testing.T, f fixture) bool {
	t.Helper()
	url := fmt.Sprintf(slotsURL, f.guideID, f.serviceID, f.start.Format(time.DateOnly))
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	var env response.Envelope[response.SlotPlanResponse]
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &env)
	require.Len(t, env.Data.Days, 1)
	for _, slot := range env.Data.Days[0].Slots {
		if slot.FullStart.Equal(f.start) {
			return true
		}
	}
	return false
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("booked slot disappears and returns after cancellation", func() {
		t := s.T()
		f := s.newFixture(t)
		require.True(t, s.slotFree(t, f))

		b := s.initiate(t, f, f.learnerToken)
		require.Equal(t, "pending", b.Status)
		require.False(t, s.slotFree(t, f), "a pending booking holds its window")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, confirmURL,
			request.ConfirmBookingRequest{BookingID: uuid.MustParse(b.ID), MeetingLink: "https://meet.example.com/abc"}, f.guideToken)
		var confirmed response.BookingEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Booking.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cancelURL,
			request.CancelBookingRequest{BookingID: uuid.MustParse(b.ID), Reason: "conflict"}, f.learnerToken)
		var cancelled response.BookingEnvelope
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Booking.Status)
		require.Equal(t, "learner", cancelled.Booking.CancelledBy)

		require.True(t, s.slotFree(t, f))
		s.initiate(t, f, f.learnerToken)
	})

	s.Run("guide cannot confirm twice", func() {
		t := s.T()
		f := s.newFixture(t)
		b := s.initiate(t, f, f.learnerToken)
		body := request.ConfirmBookingRequest{BookingID: uuid.MustParse(b.ID)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, confirmURL, body, f.guideToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, confirmURL, body, f.guideToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *BookingSuite) TestRatingStats() {
	t := s.T()
	f := s.newFixture(t)
	statsFor := func() response.RatingStatsResponse {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(statsURL, f.guideID), nil, "")
		var env response.Envelope[response.RatingStatsResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &env)
		return env.Data
	}
	require.Zero(t, statsFor().TotalRatings)

	b := s.initiate(t, f, f.learnerToken)
	dbtest.SetBookingStatus(t, s.DB, uuid.MustParse(b.ID), "completed")

	w := httptest.PerformRequest(t, s.Router, http.MethodPut, rateURL,
		request.RateBookingRequest{BookingID: uuid.MustParse(b.ID), Score: 4, Comment: "clear explanations"}, f.learnerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stats := statsFor()
	require.Equal(t, f.guideID.String(), stats.GuideID)
	require.Equal(t, 1, stats.TotalRatings)
	require.InDelta(t, 4.0, stats.AverageRating, 0.001)
	require.Equal(t, 1, stats.Rating4Count)
	require.False(t, stats.UpdatedAt.IsZero())
}

func (s *BookingSuite) TestDoubleBooking() {
	s.Run("second booking of the same slot is rejected", func() {
		t := s.T()
		f := s.newFixture(t)
		s.initiate(t, f, f.learnerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL,
			request.InitiateBookingRequest{ServiceID: f.serviceID, ScheduledStart: f.start}, f.learnerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("concurrent requests leave exactly one active booking", func() {
		t := s.T()
		f := s.newFixture(t)

		const racers = 8
		codes := make([]int, racers)
		var wg sync.WaitGroup
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, initiateURL,
					request.InitiateBookingRequest{ServiceID: f.serviceID, ScheduledStart: f.start}, f.learnerToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, f.guideID, "pending"))
	})
}
