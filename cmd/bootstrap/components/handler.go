package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCommentHandler,
		func(b *api.BookingHandler, c *api.CommentHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Comment: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
