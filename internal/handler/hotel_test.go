package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/router"
)

type fakeHotels struct {
	hotels  []model.Hotel
	listErr error
}

func (f *fakeHotels) List(_ context.Context) ([]model.Hotel, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Hotel, len(f.hotels))
	for i, h := range f.hotels {
		out[i] = h
		out[i].Rooms = nil
	}
	return out, nil
}

func (f *fakeHotels) FindByIDWithRooms(_ context.Context, id uint64) (*model.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == id {
			cp := h
			return &cp, nil
		}
	}
	return nil, repository.ErrHotelNotFound
}

func newHotelApp(store *fakeHotels) *testApp {
	e := echo.New()
	e.Validator = handler.NewRequestValidator()
	router.RegisterHotels(e, handler.NewHotelHandler(store), testSecret, nil)
	return &testApp{e: e}
}

func TestListHotels(t *testing.T) {
	app := newHotelApp(&fakeHotels{hotels: []model.Hotel{
		{ID: 1, Name: "Grand Plaza", Rooms: []model.Room{{ID: 1, Name: "101", Capacity: 3, HotelID: 1}}},
		{ID: 2, Name: "Riverside"},
	}})

	rec := doJSON(app, http.MethodGet, "/hotels", token(t, 1), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var body []struct {
		ID    uint64            `json:"id"`
		Name  string            `json:"name"`
		Rooms []json.RawMessage `json:"Rooms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 2 || body[0].Name != "Grand Plaza" {
		t.Errorf("unexpected body: %s", rec.Body)
	}
	if body[0].Rooms != nil {
		t.Errorf("list should omit rooms, got %s", rec.Body)
	}
}

func TestListHotelsStoreFailure(t *testing.T) {
	app := newHotelApp(&fakeHotels{listErr: errors.New("connection refused")})

	rec := doJSON(app, http.MethodGet, "/hotels", token(t, 1), "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", rec.Code)
	}
}

func TestGetHotelWithRooms(t *testing.T) {
	app := newHotelApp(&fakeHotels{hotels: []model.Hotel{
		{ID: 1, Name: "Grand Plaza", Rooms: []model.Room{
			{ID: 1, Name: "101", Capacity: 3, HotelID: 1},
			{ID: 2, Name: "102", Capacity: 1, HotelID: 1},
		}},
	}})

	rec := doJSON(app, http.MethodGet, "/hotels/1", token(t, 1), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var body struct {
		ID    uint64 `json:"id"`
		Rooms []struct {
			ID uint64 `json:"id"`
		} `json:"Rooms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ID != 1 || len(body.Rooms) != 2 {
		t.Errorf("unexpected body: %s", rec.Body)
	}
}

func TestGetHotelBadID(t *testing.T) {
	app := newHotelApp(&fakeHotels{})
	for _, path := range []string{"/hotels/abc", "/hotels/0"} {
		rec := doJSON(app, http.MethodGet, path, token(t, 1), "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", path, rec.Code)
		}
	}
}

func TestGetHotelNotFound(t *testing.T) {
	app := newHotelApp(&fakeHotels{})
	rec := doJSON(app, http.MethodGet, "/hotels/42", token(t, 1), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}
