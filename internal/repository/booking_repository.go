package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrBookingNotFound is returned when a user has no booking.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides persistence for bookings, the one entity this
// service owns.  All writes are single statements; the capacity check
// performed by the service is deliberately not wrapped in a transaction
// (see the service layer for the implication).
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// FindByRoomID returns every booking for a room, each joined with the
// room record.  Callers use the length of the result as the room's
// current occupancy.  An empty room yields an empty slice.
func (r *BookingRepo) FindByRoomID(ctx context.Context, roomID uint64) ([]model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                  rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
	           FROM bookings b
	           JOIN rooms rm ON rm.id = b.room_id
	           WHERE b.room_id = ?
	           ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var rm model.Room
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
			&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.Room = &rm
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByUserID returns the user's booking joined with its room, or
// ErrBookingNotFound when the user holds none.  Users are expected to
// hold at most one booking; when more exist the oldest row wins.
func (r *BookingRepo) FindByUserID(ctx context.Context, userID uint64) (*model.Booking, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
	                  rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
	           FROM bookings b
	           JOIN rooms rm ON rm.id = b.room_id
	           WHERE b.user_id = ?
	           ORDER BY b.id
	           LIMIT 1`
	var b model.Booking
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	b.Room = &rm
	return &b, nil
}

// Create inserts a new booking and reads the row back so that generated
// timestamps are populated.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (*model.Booking, error) {
	const q = `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, userID, roomID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.findByID(ctx, uint64(id))
}

// UpsertByID updates the room of the booking with the given id, or
// inserts a fresh row under that id when none exists.  In practice the
// id is always the caller's current booking, so this behaves as a room
// change on the existing row.
func (r *BookingRepo) UpsertByID(ctx context.Context, id, userID, roomID uint64) (*model.Booking, error) {
	const q = `INSERT INTO bookings (id, user_id, room_id) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE room_id = VALUES(room_id), updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, q, id, userID, roomID); err != nil {
		return nil, err
	}
	return r.findByID(ctx, id)
}

// findByID reads a single booking row without joining the room.
func (r *BookingRepo) findByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = ? LIMIT 1`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}
