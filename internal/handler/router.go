package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guidely/internal/domain/user"
	"guidely/internal/handler/api"
	"guidely/internal/handler/middleware"
	"guidely/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Service      *api.ServiceHandler
	Booking      *api.BookingHandler
	User         *api.UserHandler
	Rating       *api.RatingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	guideOnly := authMiddleware.RequireRole(user.RoleGuide)
	learnerOnly := authMiddleware.RequireRole(user.RoleLearner)

	apiGroup := engine.Group("/api")
	{
		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.User.Me},
		})

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/:guideId", Handler: h.Availability.GetSlots},
				{Method: http.MethodGet, Path: "/:guideId/schedule", Handler: h.Availability.GetSchedule},
				{Method: http.MethodGet, Path: "/:guideId/unavailable-dates", Handler: h.Availability.ListUnavailableDates},
			})

			manage := availability.Group("")
			manage.Use(authMiddleware.RequireAuth(), guideOnly)
			addRoutes(manage, []route{
				{Method: http.MethodPut, Path: "/schedule", Handler: h.Availability.UpsertSchedule},
				{Method: http.MethodPost, Path: "/unavailable-dates", Handler: h.Availability.AddUnavailableDate},
				{Method: http.MethodDelete, Path: "/unavailable-dates/:date", Handler: h.Availability.RemoveUnavailableDate},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/guides/:guideId/services", Handler: h.Service.ListByGuide},
			{Method: http.MethodGet, Path: "/guides/:guideId/rating-stats", Handler: h.Rating.GuideRatingStats},
		})

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth(), guideOnly)
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Service.Create},
				{Method: http.MethodPut, Path: "/:id/active", Handler: h.Service.SetActive},
			})
		}

		bookings := apiGroup.Group("/booking")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/initiate-booking", Handler: h.Booking.Initiate, Mw: []gin.HandlerFunc{learnerOnly}},
				{Method: http.MethodPut, Path: "/confirm", Handler: h.Booking.Confirm},
				{Method: http.MethodPut, Path: "/decline", Handler: h.Booking.Decline},
				{Method: http.MethodPut, Path: "/start", Handler: h.Booking.Start},
				{Method: http.MethodPut, Path: "/complete", Handler: h.Booking.Complete},
				{Method: http.MethodPut, Path: "/rate", Handler: h.Booking.Rate},
				{Method: http.MethodPut, Path: "/feedback", Handler: h.Booking.AddFeedback},
				{Method: http.MethodPut, Path: "/reschedule", Handler: h.Booking.Reschedule},
				{Method: http.MethodPut, Path: "/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPut, Path: "/update-statuses", Handler: h.Booking.UpdateStatuses},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
