package api_test

import (
	"errors"

	"guidely/internal/domain/user"
	"guidely/internal/handler"
	"guidely/internal/handler/api"
	"guidely/internal/handler/middleware"
	"guidely/internal/pkg/config"
	commandsmock "guidely/tests/mock/commands"
	queriesmock "guidely/tests/mock/queries"
	usecasemock "guidely/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	learnerToken = "learner-token"
	guideToken   = "guide-token"
	adminToken   = "admin-token"
)

// handlerSuite serves the real router over mocked usecases. Tokens above
// authenticate as the matching actor.
type handlerSuite struct {
	suite.Suite
	router *gin.Engine
	ctrl   *gomock.Controller

	learner user.Actor
	guide   user.Actor
	admin   user.Actor

	availabilityCmds *commandsmock.MockAvailabilityCommands
	serviceCmds      *commandsmock.MockServiceCommands
	bookingCmds      *commandsmock.MockBookingCommands
	sweeper          *commandsmock.MockSweepCommands

	availabilityQ *queriesmock.MockAvailabilityQueries
	serviceQ      *queriesmock.MockServiceQueries
	bookingQ      *queriesmock.MockBookingQueries
	userQ         *queriesmock.MockUserQueries
	ratingQ       *queriesmock.MockRatingQueries
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.learner = user.Actor{UserID: uuid.New(), Role: user.RoleLearner}
	s.guide = user.Actor{UserID: uuid.New(), Role: user.RoleGuide}
	s.admin = user.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	actors := map[string]user.Actor{learnerToken: s.learner, guideToken: s.guide, adminToken: s.admin}

	tokens := usecasemock.NewMockTokenValidator(s.ctrl)
	tokens.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(tok string) (uuid.UUID, user.Role, error) {
		a, ok := actors[tok]
		if !ok {
			return uuid.Nil, "", errors.New("invalid token")
		}
		return a.UserID, a.Role, nil
	}).AnyTimes()

	s.availabilityCmds = commandsmock.NewMockAvailabilityCommands(s.ctrl)
	s.serviceCmds = commandsmock.NewMockServiceCommands(s.ctrl)
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.ctrl)
	s.sweeper = commandsmock.NewMockSweepCommands(s.ctrl)
	s.availabilityQ = queriesmock.NewMockAvailabilityQueries(s.ctrl)
	s.serviceQ = queriesmock.NewMockServiceQueries(s.ctrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.ctrl)
	s.userQ = queriesmock.NewMockUserQueries(s.ctrl)
	s.ratingQ = queriesmock.NewMockRatingQueries(s.ctrl)

	s.router = gin.New()
	err := handler.NewRouter(s.router, config.NewTestConfig(), handler.Handlers{
		Availability: api.NewAvailabilityHandler(s.availabilityCmds, s.availabilityQ),
		Service:      api.NewServiceHandler(s.serviceCmds, s.serviceQ),
		Booking:      api.NewBookingHandler(s.bookingCmds, s.sweeper, s.bookingQ),
		User:         api.NewUserHandler(s.userQ),
		Rating:       api.NewRatingHandler(s.ratingQ),
	}, middleware.NewAuthMiddleware(tokens))
	s.Require().NoError(err)
}
