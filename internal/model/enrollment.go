package model

import "time"

// Enrollment is a user's registration record for the event.  Each user
// holds at most one enrollment, and holding one is a precondition for
// booking a hotel room.  Enrollments are owned by the subscription
// subsystem and are strictly read-only here.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owning user.
//  Name      – attendee's full name.
//  CPF       – national document number.
//  Birthday  – date of birth.
//  Phone     – contact phone number.
//  Address   – attendee address, nil when none was registered.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	CPF       string    // enrollments.cpf
	Birthday  time.Time // enrollments.birthday
	Phone     string    // enrollments.phone
	Address   *Address  // joined from addresses, nullable
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}

// Address holds the mailing address attached to an enrollment.
type Address struct {
	ID            uint64  // addresses.id
	EnrollmentID  uint64  // addresses.enrollment_id
	Street        string  // addresses.street
	Number        string  // addresses.number
	AddressDetail *string // addresses.address_detail (nullable)
	Neighborhood  string  // addresses.neighborhood
	City          string  // addresses.city
	State         string  // addresses.state
	CEP           string  // addresses.cep
}
