package model

import "time"

// Ticket statuses as stored in the tickets.status enum column.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// Ticket is a purchase record tied to an enrollment.  Its status and the
// flags on its type decide whether the holder may book a room: a ticket
// that is still RESERVED, is for remote attendance, or does not include
// hotel accommodation cannot book.  Tickets are read-only here.
type Ticket struct {
	ID           uint64     // tickets.id
	TicketTypeID uint64     // tickets.ticket_type_id
	EnrollmentID uint64     // tickets.enrollment_id
	Status       string     // tickets.status (RESERVED or PAID)
	TicketType   TicketType // joined from ticket_types
	CreatedAt    time.Time  // tickets.created_at
	UpdatedAt    time.Time  // tickets.updated_at
}

// TicketType classifies a ticket.  IsRemote marks online-only attendance
// and IncludesHotel marks whether hotel accommodation is part of the
// package.
type TicketType struct {
	ID            uint64    // ticket_types.id
	Name          string    // ticket_types.name
	PriceCents    uint32    // ticket_types.price_cents
	IsRemote      bool      // ticket_types.is_remote
	IncludesHotel bool      // ticket_types.includes_hotel
	CreatedAt     time.Time // ticket_types.created_at
	UpdatedAt     time.Time // ticket_types.updated_at
}
