package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check
// for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
}

// RegisterBooking registers the booking endpoints.  All three routes
// require a valid access token; the JWT middleware populates user_id
// before the handlers run.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group("", middleware.JWTAuth(jwtSecret))
	g.GET("/booking", h.GetBooking)
	g.POST("/booking", h.PostBooking)
	g.PUT("/booking/:bookingId", h.PutBooking)
}

// RegisterHotels registers the hotel browse endpoints.  They require a
// valid access token like the booking routes and, when a cache
// middleware is supplied, serve repeat reads from Redis.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	mws := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret)}
	if cache != nil {
		mws = append(mws, cache)
	}
	g := e.Group("", mws...)
	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/:hotelId", h.GetHotel)
}
