package components

import (
	"guidely/internal/handler"
	"guidely/internal/handler/api"
	"guidely/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		api.NewRatingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	service *api.ServiceHandler,
	booking *api.BookingHandler,
	user *api.UserHandler,
	rating *api.RatingHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Service:      service,
		Booking:      booking,
		User:         user,
		Rating:       rating,
	}
}
