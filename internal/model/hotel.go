package model

import "time"

// Hotel groups the rooms available for booking.  The Rooms slice is only
// populated by lookups that explicitly join the rooms table; list
// endpoints leave it nil.
type Hotel struct {
	ID        uint64    `json:"id"`              // hotels.id
	Name      string    `json:"name"`            // hotels.name
	Image     string    `json:"image"`           // hotels.image (cover URL)
	Rooms     []Room    `json:"Rooms,omitempty"` // joined from rooms
	CreatedAt time.Time `json:"createdAt"`       // hotels.created_at
	UpdatedAt time.Time `json:"updatedAt"`       // hotels.updated_at
}
