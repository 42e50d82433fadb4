package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// HotelStore is the read surface the browse endpoints need.  It is
// satisfied by repository.HotelRepo.
type HotelStore interface {
	List(ctx context.Context) ([]model.Hotel, error)
	FindByIDWithRooms(ctx context.Context, id uint64) (*model.Hotel, error)
}

// HotelHandler serves the read-only hotel browse endpoints.
type HotelHandler struct {
	Hotels HotelStore
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(hotels HotelStore) *HotelHandler {
	if hotels == nil {
		panic("nil store passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// ListHotels handles GET /hotels.  It returns every hotel without rooms.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotels"})
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetHotel handles GET /hotels/:hotelId.  It returns the hotel together
// with all of its rooms, or 404 when the hotel does not exist.
func (h *HotelHandler) GetHotel(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}

	hotel, err := h.Hotels.FindByIDWithRooms(c.Request().Context(), hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load hotel"})
	}
	return c.JSON(http.StatusOK, hotel)
}
