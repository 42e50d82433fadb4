package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingHandler translates booking requests into service calls and maps
// the two service failure kinds onto HTTP statuses: ErrCannotBook
// becomes 403 and everything else, ErrNotFound included, becomes 404.
// The loose catch-all 404 mirrors the system this replaces.  All methods
// assume the JWT middleware already ran.
type BookingHandler struct {
	Svc *service.BookingService

	// PublishEvent is called after successful mutations.  It defaults
	// to the RabbitMQ publisher and is overridable in tests.
	PublishEvent func(ctx context.Context, ev queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler around the service.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc, PublishEvent: queue.PublishBookingEvent}
}

// bookingRequest is the body for POST /booking and PUT /booking/:bookingId.
// required rejects an absent and a zero roomId alike.
type bookingRequest struct {
	RoomID uint64 `json:"roomId" validate:"required"`
}

// GetBooking handles GET /booking.  It returns the caller's booking and
// its room.  Every service failure is reported as 404, eligibility
// rejections included.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	booking, err := h.Svc.GetBooking(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":   booking.ID,
		"room": booking.Room,
	})
}

// PostBooking handles POST /booking.  It books the requested room for
// the caller and responds 201 with the new booking id.  Missing or zero
// roomId yields 400, an ineligible caller or full room 403, and a
// missing room 404.
func (h *BookingHandler) PostBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}

	booking, err := h.Svc.CreateBooking(c.Request().Context(), userID, body.RoomID)
	if err != nil {
		if errors.Is(err, service.ErrCannotBook) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot book"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}

	h.publish(queue.KindBookingCreated, booking)
	return c.JSON(http.StatusCreated, echo.Map{"bookingId": booking.ID})
}

// PutBooking handles PUT /booking/:bookingId.  It moves the caller's
// booking to another room.  The path id is validated but the service
// always targets the caller's own booking row.
func (h *BookingHandler) PutBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId is required"})
	}

	booking, err := h.Svc.ChangeBooking(c.Request().Context(), userID, body.RoomID)
	if err != nil {
		if errors.Is(err, service.ErrCannotBook) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot book"})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}

	h.publish(queue.KindBookingChanged, booking)
	return c.JSON(http.StatusOK, echo.Map{"bookingId": booking.ID})
}

// publish fires a booking event in the background.  Failures are logged
// by the publisher and never affect the response.
func (h *BookingHandler) publish(kind string, b *model.Booking) {
	if h.PublishEvent == nil {
		return
	}
	ev := queue.BookingEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		BookingID:  b.ID,
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.PublishEvent(ctx, ev)
	}()
}
