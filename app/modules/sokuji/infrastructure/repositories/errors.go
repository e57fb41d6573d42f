package sokujidb

import "errors"

// Sentinel errors for the repository layer. Infrastructure-level
// signals only; the service layer maps them onto the domain taxonomy.
var (
	// ErrNotFound indicates no record exists for the key.
	ErrNotFound = errors.New("record not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched nothing.
	ErrNoRowsAffected = errors.New("no rows affected")
)
