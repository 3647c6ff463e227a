package api

import (
	"net/http"

	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	q queries.UserQueries
}

func NewUserHandler(q queries.UserQueries) *UserHandler {
	return &UserHandler{q: q}
}

// @Summary Current user
// @Description Contact details of the authenticated caller
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope[resdto.UserResponse]
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, view, resdto.FromContactView)
}
