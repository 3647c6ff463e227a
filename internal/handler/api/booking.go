package api

import (
	"context"
	"net/http"

	"guidely/internal/domain/user"
	reqdto "guidely/internal/handler/dto/request"
	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds    commands.BookingCommands
	sweeper commands.SweepCommands
	q       queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, sweeper commands.SweepCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, sweeper: sweeper, q: q}
}

// bookingAction binds R from the body, runs call as the authenticated actor
// and writes {success, booking}.
func bookingAction[R any](c *gin.Context, status int, call func(ctx context.Context, actor user.Actor, req R) (*queries.BookingView, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	view, err := call(c.Request.Context(), actor, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	render(c, status, view, resdto.NewBookingEnvelope)
}

// @Summary Request a booking
// @Description Books an offered slot of an active service. The booking starts pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiateBookingRequest true "Service and start"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "slot unavailable"
// @Router /booking/initiate-booking [post]
func (h *BookingHandler) Initiate(c *gin.Context) {
	bookingAction(c, http.StatusCreated, func(ctx context.Context, actor user.Actor, req reqdto.InitiateBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Initiate(ctx, actor, req.ToInput())
	})
}

// @Summary Confirm a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmBookingRequest true "Booking and meeting link"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/confirm [put]
func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.ConfirmBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Confirm(ctx, actor, req.ToInput())
	})
}

// @Summary Decline a pending booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DeclineBookingRequest true "Booking and reason"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/decline [put]
func (h *BookingHandler) Decline(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.DeclineBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Decline(ctx, actor, req.ToInput())
	})
}

// @Summary Start a session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingActionRequest true "Booking"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 400 {object} httperr.Response "outside the start window"
// @Failure 409 {object} httperr.Response "not confirmed"
// @Router /booking/start [put]
func (h *BookingHandler) Start(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.BookingActionRequest) (*queries.BookingView, error) {
		return h.cmds.Start(ctx, actor, req.BookingID)
	})
}

// @Summary Complete a session
// @Description Guide only. Records notes and achievements and settles payment.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CompleteBookingRequest true "Booking, notes and achievements"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/complete [put]
func (h *BookingHandler) Complete(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.CompleteBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Complete(ctx, actor, req.ToInput())
	})
}

// @Summary Rate a completed session
// @Description Learner only, once per booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RateBookingRequest true "Booking and score 1-5"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response "already rated or not completed"
// @Router /booking/rate [put]
func (h *BookingHandler) Rate(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.RateBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Rate(ctx, actor, req.ToInput())
	})
}

// @Summary Leave feedback on a completed session
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FeedbackRequest true "Feedback"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/feedback [put]
func (h *BookingHandler) AddFeedback(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.FeedbackRequest) (*queries.BookingView, error) {
		return h.cmds.AddFeedback(ctx, actor, req.ToInput())
	})
}

// @Summary Move a booking
// @Description Moves a pending or confirmed booking to another offered slot. A confirmed booking returns to pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RescheduleBookingRequest true "Booking and new start"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/reschedule [put]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.RescheduleBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Reschedule(ctx, actor, req.ToInput())
	})
}

// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelBookingRequest true "Booking and reason"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingAction(c, http.StatusOK, func(ctx context.Context, actor user.Actor, req reqdto.CancelBookingRequest) (*queries.BookingView, error) {
		return h.cmds.Cancel(ctx, actor, req.ToInput())
	})
}

// @Summary Reconcile time-driven statuses
// @Description Runs the status sweep over the caller's bookings. Admins sweep every booking.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[resdto.SweepResponse]
// @Failure 401 {object} httperr.Response
// @Router /booking/update-statuses [put]
func (h *BookingHandler) UpdateStatuses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	res, err := h.sweeper.SweepFor(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSweepResult(res)))
}

// @Summary List own bookings
// @Description Newest first, keyset paginated. Statuses in the response are effective statuses.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query []string false "Filter by stored status" collectionFormat(multi)
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.BookingListEnvelope
// @Failure 400 {object} httperr.Response
// @Router /booking [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBinding(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	page, err := h.q.List(c.Request.Context(), actor, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	render(c, http.StatusOK, page, resdto.NewBookingListEnvelope)
}

// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	render(c, http.StatusOK, view, resdto.NewBookingEnvelope)
}
