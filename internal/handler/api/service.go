package api

import (
	"net/http"
	"strconv"

	reqdto "guidely/internal/handler/dto/request"
	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary Create service
// @Description Adds a bookable service to the calling guide's catalogue
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.Envelope[resdto.ServiceResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusCreated, view, resdto.FromServiceView)
}

// @Summary Activate or deactivate service
// @Description Inactive services cannot be booked; existing bookings keep their snapshot
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.SetServiceActiveRequest true "Active flag"
// @Success 200 {object} resdto.Envelope[resdto.ServiceResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id}/active [put]
func (h *ServiceHandler) SetActive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SetServiceActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBinding(c, err)
		return
	}

	view, err := h.cmds.SetActive(c.Request.Context(), actor, id, *req.Active)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, view, resdto.FromServiceView)
}

// @Summary List guide services
// @Tags services
// @Produce json
// @Param guideId path string true "Guide ID"
// @Param include_inactive query bool false "Include deactivated services"
// @Success 200 {object} resdto.Envelope[[]resdto.ServiceResponse]
// @Failure 400 {object} httperr.Response
// @Router /guides/{guideId}/services [get]
func (h *ServiceHandler) ListByGuide(c *gin.Context) {
	guideID, ok := pathUUID(c, "guideId")
	if !ok {
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	views, err := h.q.ListByGuide(c.Request.Context(), guideID, includeInactive)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, views, resdto.FromServiceViews)
}
