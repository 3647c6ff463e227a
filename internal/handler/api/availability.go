package api

import (
	"net/http"

	reqdto "guidely/internal/handler/dto/request"
	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Available slots
// @Description Bookable slots of a guide per day, in the guide's timezone. Pass either duration or serviceId.
// @Tags availability
// @Produce json
// @Param guideId path string true "Guide ID"
// @Param duration query int false "Slot length in minutes"
// @Param serviceId query string false "Service whose duration is used"
// @Param from query string false "First day, YYYY-MM-DD (default today in the guide's timezone)"
// @Param days query int false "Number of days (default 7)"
// @Success 200 {object} resdto.Envelope[resdto.SlotPlanResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/{guideId} [get]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	guideID, ok := pathUUID(c, "guideId")
	if !ok {
		return
	}
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBinding(c, err)
		return
	}
	in, err := q.ToInput(guideID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	plan, err := h.q.GenerateSlots(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, plan, resdto.FromSlotPlan)
}

// @Summary Weekly schedule
// @Description The guide's recurring weekly availability
// @Tags availability
// @Produce json
// @Param guideId path string true "Guide ID"
// @Success 200 {object} resdto.Envelope[resdto.WeeklyScheduleResponse]
// @Failure 404 {object} httperr.Response
// @Router /availability/{guideId}/schedule [get]
func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	guideID, ok := pathUUID(c, "guideId")
	if !ok {
		return
	}
	view, err := h.q.GetWeekly(c.Request.Context(), guideID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, view, resdto.FromWeeklyView)
}

// @Summary Unavailable dates
// @Description Dates the guide has blocked
// @Tags availability
// @Produce json
// @Param guideId path string true "Guide ID"
// @Param from query string false "Only dates on or after, YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope[[]resdto.UnavailableDateResponse]
// @Failure 400 {object} httperr.Response
// @Router /availability/{guideId}/unavailable-dates [get]
func (h *AvailabilityHandler) ListUnavailableDates(c *gin.Context) {
	guideID, ok := pathUUID(c, "guideId")
	if !ok {
		return
	}
	var q reqdto.UnavailableDatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBinding(c, err)
		return
	}
	from, err := q.FromDate()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.q.ListUnavailable(c.Request.Context(), guideID, from)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, views, resdto.FromUnavailableDates)
}

// @Summary Replace weekly schedule
// @Description Replaces the calling guide's whole weekly availability
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WeeklyScheduleRequest true "Weekly schedule"
// @Success 200 {object} resdto.Envelope[resdto.WeeklyScheduleResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /availability/schedule [put]
func (h *AvailabilityHandler) UpsertSchedule(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.WeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	w, err := h.cmds.UpsertWeekly(c.Request.Context(), actor, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, queries.NewWeeklyAvailabilityView(w), resdto.FromWeeklyView)
}

// @Summary Block a date
// @Description Marks a whole day unavailable for the calling guide
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnavailableDateRequest true "Date to block"
// @Success 201 {object} resdto.Envelope[resdto.UnavailableDateResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /availability/unavailable-dates [post]
func (h *AvailabilityHandler) AddUnavailableDate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UnavailableDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}
	date, err := req.ParsedDate()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	d, err := h.cmds.AddUnavailableDate(c.Request.Context(), actor, date, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.FromUnavailableDate(d)))
}

// @Summary Unblock a date
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param date path string true "Blocked date, YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope[string]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability/unavailable-dates/{date} [delete]
func (h *AvailabilityHandler) RemoveUnavailableDate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	date, err := reqdto.UnavailableDateRequest{Date: c.Param("date")}.ParsedDate()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if err := h.cmds.RemoveUnavailableDate(c.Request.Context(), actor, date); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(date.String()))
}
