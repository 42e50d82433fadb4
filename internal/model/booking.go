package model

import "time"

// Booking assigns a user to a room.  A user is expected to hold at most
// one active booking at a time; lookups by user return a single row.
// The Room pointer is populated by queries that join the rooms table and
// nil otherwise.
//
// Fields:
//  ID        – primary key identifier, auto-generated.
//  UserID    – user who owns the booking.
//  RoomID    – the booked room.
//  Room      – joined room record, nullable.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    `json:"id"`             // bookings.id
	UserID    uint64    `json:"userId"`         // bookings.user_id
	RoomID    uint64    `json:"roomId"`         // bookings.room_id
	Room      *Room     `json:"Room,omitempty"` // joined from rooms
	CreatedAt time.Time `json:"createdAt"`      // bookings.created_at
	UpdatedAt time.Time `json:"updatedAt"`      // bookings.updated_at
}
