// Package queue publishes and consumes booking events over RabbitMQ.
package queue

// Event kinds carried in BookingEvent.Kind.
const (
	KindBookingCreated = "booking.created"
	KindBookingChanged = "booking.changed"
)

// BookingEvent is published after a booking mutation succeeds.  It
// carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the primary database.
type BookingEvent struct {
	EventID    string `json:"event_id"` // unique id for deduplication
	Kind       string `json:"kind"`     // booking.created or booking.changed
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	RoomID     uint64 `json:"room_id"`
	OccurredAt string `json:"occurred_at"` // RFC3339 UTC
}
