package service

import (
	"context"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// EnrollmentStore is the read surface of the enrollment subsystem that
// the booking rules depend on.
type EnrollmentStore interface {
	FindWithAddressByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error)
}

// TicketStore is the read surface of the ticketing subsystem.
type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint64) (*model.Ticket, error)
}

// RoomStore looks up rooms by id.
type RoomStore interface {
	FindByID(ctx context.Context, id uint64) (*model.Room, error)
}

// BookingStore persists bookings.
type BookingStore interface {
	FindByRoomID(ctx context.Context, roomID uint64) ([]model.Booking, error)
	FindByUserID(ctx context.Context, userID uint64) (*model.Booking, error)
	Create(ctx context.Context, userID, roomID uint64) (*model.Booking, error)
	UpsertByID(ctx context.Context, id, userID, roomID uint64) (*model.Booking, error)
}

// BookingService orchestrates the eligibility check, room lookup,
// capacity check and booking mutation for the three booking operations.
// All stores are injected; the service holds no global state.
type BookingService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
	rooms       RoomStore
	bookings    BookingStore
}

// NewBookingService constructs a BookingService.  All dependencies must
// be non-nil.
func NewBookingService(enrollments EnrollmentStore, tickets TicketStore, rooms RoomStore, bookings BookingStore) *BookingService {
	if enrollments == nil || tickets == nil || rooms == nil || bookings == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{
		enrollments: enrollments,
		tickets:     tickets,
		rooms:       rooms,
		bookings:    bookings,
	}
}

// checkEnrollmentAndTicket verifies that the user is allowed to book at
// all.  Every gate failure collapses into ErrCannotBook: no enrollment,
// no ticket, a ticket still RESERVED, a remote ticket, or a ticket
// without hotel accommodation.
func (s *BookingService) checkEnrollmentAndTicket(ctx context.Context, userID uint64) error {
	enrollment, err := s.enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return ErrCannotBook
		}
		return err
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return ErrCannotBook
		}
		return err
	}
	if ticket.Status == model.TicketStatusReserved || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return ErrCannotBook
	}
	return nil
}

// checkRoomCapacity loads the room and compares its capacity against the
// current booking count.  It returns ErrNotFound for a missing room and
// ErrCannotBook for a full one.
//
// The count includes every booking on the room, the caller's own prior
// booking included, so changing into the same room can be rejected when
// capacity is exactly met.  The count-then-insert sequence is also not
// atomic: two concurrent requests near full capacity can both pass and
// overbook the room.  Both behaviors are kept intentionally to stay
// faithful to the system this replaces; a SELECT ... FOR UPDATE inside a
// transaction would close the race.
func (s *BookingService) checkRoomCapacity(ctx context.Context, roomID uint64) error {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrNotFound
		}
		return err
	}

	occupied, err := s.bookings.FindByRoomID(ctx, roomID)
	if err != nil {
		return err
	}
	if len(occupied) >= room.Capacity {
		return ErrCannotBook
	}
	return nil
}

// GetBooking returns the user's booking joined with its room.  It fails
// with ErrCannotBook when the user is not eligible and ErrNotFound when
// no booking exists.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (*model.Booking, error) {
	if err := s.checkEnrollmentAndTicket(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// CreateBooking books a room for the user after the eligibility and
// capacity checks pass.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (*model.Booking, error) {
	if err := s.checkEnrollmentAndTicket(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.checkRoomCapacity(ctx, roomID); err != nil {
		return nil, err
	}
	return s.bookings.Create(ctx, userID, roomID)
}

// ChangeBooking moves the user's existing booking to another room.  A
// missing booking and a booking owned by someone else are surfaced the
// same way, as ErrCannotBook; callers cannot tell them apart.
func (s *BookingService) ChangeBooking(ctx context.Context, userID, roomID uint64) (*model.Booking, error) {
	if err := s.checkEnrollmentAndTicket(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.checkRoomCapacity(ctx, roomID); err != nil {
		return nil, err
	}

	current, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrCannotBook
		}
		return nil, err
	}
	if current.UserID != userID {
		return nil, ErrCannotBook
	}
	return s.bookings.UpsertByID(ctx, current.ID, userID, roomID)
}
