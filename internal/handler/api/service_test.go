package api_test

import (
	"net/http"
	"testing"
	"time"

	resdto "guidely/internal/handler/dto/response"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
	"guidely/tests/common/httptest"
	"guidely/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceHandlerTestSuite struct {
	handlerSuite
}

func TestServiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ServiceHandlerTestSuite))
}

func (s *ServiceHandlerTestSuite) serviceView(active bool) *queries.ServiceView {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &queries.ServiceView{
		ID:              uuid.New(),
		GuideID:         s.guide.UserID,
		Name:            "Go code review",
		DurationMinutes: 90,
		PriceCents:      4500,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *ServiceHandlerTestSuite) TestCreate() {
	url := "/api/services"
	reqBody := map[string]any{"name": "Go code review", "duration_minutes": 90, "price_cents": 4500}

	s.Run("success", func() {
		view := s.serviceView(true)
		s.serviceCmds.EXPECT().
			Create(gomock.Any(), s.guide, commands.CreateServiceInput{Name: "Go code review", DurationMinutes: 90, PriceCents: 4500}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guideToken)

		var res resdto.Envelope[resdto.ServiceResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(resdto.ServiceResponse{
			ID:              view.ID.String(),
			GuideID:         view.GuideID.String(),
			Name:            view.Name,
			DurationMinutes: 90,
			PriceCents:      4500,
			Active:          true,
			CreatedAt:       view.CreatedAt,
			UpdatedAt:       view.UpdatedAt,
		}, res.Data)
	})

	s.Run("boundaries", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
			status int
		}{
			{name: "one day long", mutate: testutil.Field("duration_minutes", 1440), status: http.StatusCreated},
			{name: "free", mutate: testutil.Field("price_cents", 0), status: http.StatusCreated},
			{name: "longer than a day", mutate: testutil.Field("duration_minutes", 1441), status: http.StatusBadRequest},
			{name: "zero length", mutate: testutil.Field("duration_minutes", 0), status: http.StatusBadRequest},
			{name: "negative price", mutate: testutil.Field("price_cents", -1), status: http.StatusBadRequest},
			{name: "missing name", mutate: testutil.Field("name", nil), status: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				if tc.status == http.StatusCreated {
					s.serviceCmds.EXPECT().Create(gomock.Any(), s.guide, gomock.Any()).Return(s.serviceView(true), nil)
				}
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, guideToken)
				s.Equal(tc.status, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("learners are refused", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, learnerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *ServiceHandlerTestSuite) TestSetActive() {
	id := uuid.New()
	url := "/api/services/" + id.String() + "/active"

	s.Run("deactivate", func() {
		s.serviceCmds.EXPECT().SetActive(gomock.Any(), s.guide, id, false).Return(s.serviceView(false), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"active": false}, guideToken)

		var res resdto.Envelope[resdto.ServiceResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Data.Active)
	})

	s.Run("flag is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, guideToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ServiceHandlerTestSuite) TestListByGuide() {
	guideID := uuid.New()

	s.Run("active only by default", func() {
		s.serviceQ.EXPECT().ListByGuide(gomock.Any(), guideID, false).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guides/"+guideID.String()+"/services", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"success":true,"data":[]}`, rec.Body.String())
	})

	s.Run("include inactive", func() {
		s.serviceQ.EXPECT().ListByGuide(gomock.Any(), guideID, true).Return([]*queries.ServiceView{s.serviceView(false)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guides/"+guideID.String()+"/services?include_inactive=true", nil, "")

		var res resdto.Envelope[[]resdto.ServiceResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Data, 1)
	})
}
