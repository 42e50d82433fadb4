// Package service implements the booking business rules on top of the
// repository layer.  It exposes two failure kinds that handlers map to
// HTTP statuses: ErrNotFound (404) for absent resources and
// ErrCannotBook (403) for business-rule rejections.
package service

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrCannotBook is returned when a business rule forbids the booking:
// missing enrollment or ticket, a reserved/remote/no-hotel ticket, a
// room at capacity, or a booking that belongs to someone else.
var ErrCannotBook = errors.New("cannot book")
