package api

import (
	"net/http"

	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/handler/httperr"
	"guidely/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	q queries.RatingQueries
}

func NewRatingHandler(q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{q: q}
}

// @Summary Guide rating stats
// @Description Rating count, average and per-score breakdown over a guide's rated bookings
// @Tags ratings
// @Produce json
// @Param guideId path string true "Guide ID"
// @Success 200 {object} resdto.Envelope[resdto.RatingStatsResponse]
// @Failure 400 {object} httperr.Response
// @Router /guides/{guideId}/rating-stats [get]
func (h *RatingHandler) GuideRatingStats(c *gin.Context) {
	guideID, ok := pathUUID(c, "guideId")
	if !ok {
		return
	}
	view, err := h.q.GuideRatingStats(c.Request.Context(), guideID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	renderData(c, http.StatusOK, view, resdto.FromRatingStatsView)
}
