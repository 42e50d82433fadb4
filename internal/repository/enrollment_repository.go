package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrEnrollmentNotFound is returned when a user has no enrollment.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// EnrollmentRepo reads enrollment records.  The enrollment subsystem owns
// these rows, so only lookups are exposed.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo constructs an EnrollmentRepo with the given DB handle.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo {
	return &EnrollmentRepo{db: db}
}

// FindWithAddressByUserID returns the user's enrollment joined with its
// address, or ErrEnrollmentNotFound when the user never enrolled.  The
// address may be nil when no row exists in the addresses table.
func (r *EnrollmentRepo) FindWithAddressByUserID(ctx context.Context, userID uint64) (*model.Enrollment, error) {
	const q = `SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at, e.updated_at,
	                  a.id, a.street, a.number, a.address_detail, a.neighborhood, a.city, a.state, a.cep
	           FROM enrollments e
	           LEFT JOIN addresses a ON a.enrollment_id = e.id
	           WHERE e.user_id = ?
	           LIMIT 1`
	var (
		en           model.Enrollment
		addrID       sql.NullInt64
		street       sql.NullString
		number       sql.NullString
		detail       sql.NullString
		neighborhood sql.NullString
		city         sql.NullString
		state        sql.NullString
		cep          sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&en.ID, &en.UserID, &en.Name, &en.CPF, &en.Birthday, &en.Phone, &en.CreatedAt, &en.UpdatedAt,
		&addrID, &street, &number, &detail, &neighborhood, &city, &state, &cep,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	if addrID.Valid {
		addr := &model.Address{
			ID:           uint64(addrID.Int64),
			EnrollmentID: en.ID,
			Street:       street.String,
			Number:       number.String,
			Neighborhood: neighborhood.String,
			City:         city.String,
			State:        state.String,
			CEP:          cep.String,
		}
		if detail.Valid {
			d := detail.String
			addr.AddressDetail = &d
		}
		en.Address = addr
	}
	return &en, nil
}
