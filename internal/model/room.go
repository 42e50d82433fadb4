package model

import "time"

// Room is a bookable hotel room.  Capacity is the hard ceiling on how
// many bookings the room may hold at once; it is enforced by the booking
// service, not by the storage layer.  Rooms are read-only here.
type Room struct {
	ID        uint64    `json:"id"`        // rooms.id
	Name      string    `json:"name"`      // rooms.name
	Capacity  int       `json:"capacity"`  // rooms.capacity
	HotelID   uint64    `json:"hotelId"`   // rooms.hotel_id
	CreatedAt time.Time `json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `json:"updatedAt"` // rooms.updated_at
}
