package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/domain/user"
	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/pkg/errs"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
	"guidely/tests/common/builder"
	"guidely/tests/common/httptest"
	"guidely/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	handlerSuite
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

var viewNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func (s *BookingHandlerTestSuite) TestInitiate() {
	url := "/api/booking/initiate-booking"
	serviceID := uuid.New()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"service_id": serviceID, "scheduled_start": start}

	s.Run("success: returns 201 with the pending booking", func() {
		view := builder.NewBookingBuilder().WithLearner(s.learner.UserID).WithServiceID(serviceID).WithStart(start).BuildView(viewNow)
		s.bookingCmds.EXPECT().
			Initiate(gomock.Any(), s.learner, commands.InitiateBookingInput{ServiceID: serviceID, Start: start}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, learnerToken)

		var res resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.True(res.Success)
		s.Equal(view.ID.String(), res.Booking.ID)
		s.Equal("pending", res.Booking.Status)
		s.Equal(start, res.Booking.ScheduledStart)
		s.Equal(start.Add(time.Hour), res.Booking.ScheduledEnd)
		s.Empty(cmp.Diff([]string{}, res.Booking.Achievements))
	})

	s.Run("error: only learners may book", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guideToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with an unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 400 lists missing fields", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("service_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, learnerToken)
		res := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(string(res.Detail), "ServiceID is required")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "slot taken", err: commands.ErrSlotNotOffered, status: http.StatusConflict, msg: "requested start is not an available slot"},
			{name: "service missing", err: errs.Mark(errs.New("service not found"), errs.ErrNotFound), status: http.StatusNotFound, msg: "service not found"},
			{name: "validation", err: errs.Validation("start must be at least 60m ahead"), status: http.StatusBadRequest, msg: "60m ahead"},
			{name: "unexpected", err: errors.New("connection reset by peer"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.bookingCmds.EXPECT().Initiate(gomock.Any(), s.learner, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, learnerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	b := builder.NewBookingBuilder().WithID(id)

	s.Run("confirm passes the meeting link", func() {
		view := b.WithStatus(booking.StatusConfirmed).BuildView(viewNow)
		s.bookingCmds.EXPECT().
			Confirm(gomock.Any(), s.guide, commands.ConfirmBookingInput{BookingID: id, MeetingLink: "https://meet.example.com/abc"}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/confirm",
			map[string]any{"booking_id": id, "meeting_link": "https://meet.example.com/abc"}, guideToken)

		var res resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("confirmed", res.Booking.Status)
	})

	s.Run("confirm rejects a malformed link", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/confirm",
			map[string]any{"booking_id": id, "meeting_link": "not a url"}, guideToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("start takes only the booking id", func() {
		s.bookingCmds.EXPECT().Start(gomock.Any(), s.learner, id).Return(b.WithStatus(booking.StatusInProgress).BuildView(viewNow), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/start", map[string]any{"booking_id": id}, learnerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("starting outside the window is a bad request", func() {
		err := errs.Wrapf(booking.ErrOutsideStartWindow, "window is %s to %s", "09:45", "10:00")
		s.bookingCmds.EXPECT().Start(gomock.Any(), s.learner, id).Return(nil, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/start", map[string]any{"booking_id": id}, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "outside its start window")
	})

	s.Run("a late transition is a conflict", func() {
		err := errs.Mark(&booking.TransitionError{From: booking.StatusCompleted, Action: booking.ActionCancel}, errs.ErrInvalidStateTransition)
		s.bookingCmds.EXPECT().Cancel(gomock.Any(), s.learner, commands.CancelBookingInput{BookingID: id, Reason: "sick"}).Return(nil, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/cancel",
			map[string]any{"booking_id": id, "reason": "sick"}, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot cancel a booking in status completed")
	})

	s.Run("rate forwards score and comment", func() {
		s.bookingCmds.EXPECT().
			Rate(gomock.Any(), s.learner, commands.RateBookingInput{BookingID: id, Score: 5, Comment: "great"}).
			Return(b.WithStatus(booking.StatusCompleted).WithRating(5).BuildView(viewNow), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/rate",
			map[string]any{"booking_id": id, "score": 5, "comment": "great"}, learnerToken)

		var res resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().NotNil(res.Booking.Rating)
		s.Equal(5, res.Booking.Rating.Score)
	})

	s.Run("complete forwards notes and achievements", func() {
		s.bookingCmds.EXPECT().
			Complete(gomock.Any(), s.guide, commands.CompleteBookingInput{BookingID: id, Notes: "covered channels", Achievements: []string{"select"}}).
			Return(b.WithStatus(booking.StatusCompleted).BuildView(viewNow), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/complete",
			map[string]any{"booking_id": id, "session_notes": "covered channels", "achievements": []string{"select"}}, guideToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("reschedule parses the new start", func() {
		newStart := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
		s.bookingCmds.EXPECT().
			Reschedule(gomock.Any(), s.guide, commands.RescheduleBookingInput{BookingID: id, NewStart: newStart}).
			Return(b.WithStart(newStart).BuildView(viewNow), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/reschedule",
			map[string]any{"booking_id": id, "new_start": "2026-03-09T10:00:00Z"}, guideToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatuses() {
	s.sweeper.EXPECT().SweepFor(gomock.Any(), s.admin).Return(commands.SweepResult{Scanned: 4, Completed: 1, NoShow: 2}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/booking/update-statuses", nil, adminToken)

	var res resdto.Envelope[resdto.SweepResponse]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal(resdto.SweepResponse{Scanned: 4, Completed: 1, NoShow: 2}, res.Data)
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("parses status filters and returns the next cursor", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithLearner(s.learner.UserID).BuildView(viewNow),
			builder.NewBookingBuilder().WithLearner(s.learner.UserID).WithStatus(booking.StatusConfirmed).BuildView(viewNow),
		}
		want := queries.BookingFilter{
			Statuses: []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusNoShow},
			Limit:    2,
			After:    &queries.Cursor{After: "abc"},
		}
		s.bookingQ.EXPECT().List(gomock.Any(), s.learner, want).
			Return(&queries.BookingPage{Items: views, Next: &queries.Cursor{After: "next"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/booking?status=pending,confirmed&status=no-show&limit=2&after=abc", nil, learnerToken)

		var res resdto.BookingListEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Bookings, 2)
		s.Equal("next", res.NextCursor)
	})

	s.Run("rejects unknown statuses", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking?status=archived", nil, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status")
	})

	s.Run("empty page is an empty array", func() {
		s.bookingQ.EXPECT().List(gomock.Any(), s.guide, queries.BookingFilter{}).Return(&queries.BookingPage{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking", nil, guideToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"bookings":[]}`, rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/not-a-uuid", nil, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("not visible to a stranger", func() {
		id := uuid.New()
		s.bookingQ.EXPECT().GetByID(gomock.Any(), s.learner, id).Return(nil, queries.ErrBookingNotVisible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/"+id.String(), nil, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not visible")
	})

	s.Run("effective status is reported", func() {
		start := viewNow.Add(-10 * time.Minute)
		b := builder.NewBookingBuilder().WithStart(start).WithStatus(booking.StatusInProgress).WithStartedAt(start)
		s.bookingQ.EXPECT().GetByID(gomock.Any(), user.Actor{UserID: s.admin.UserID, Role: user.RoleAdmin}, b.Record().ID).
			Return(b.BuildView(viewNow), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/"+b.Record().ID.String(), nil, adminToken)

		var res resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("in-progress", res.Booking.Status)
		s.Require().NotNil(res.Booking.StartedAt)
	})
}
