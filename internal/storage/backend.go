package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Backend when the key holds no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrRejected marks a request the backend refused; retrying cannot help.
	ErrRejected = errors.New("storage: request rejected")
	// ErrDecode marks a stored value that is not valid JSON for the target.
	ErrDecode = errors.New("storage: value does not decode")
)

// NotFoundMessage is the error text the key-value service sends with a 404
// for an absent key.
const NotFoundMessage = "Key not found"

// Backend is a byte-oriented persistent map. Delete of an absent key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Physical key names shared with data written by the web client.
const (
	KeyUsers         = "medicab_users"
	KeyPatients      = "medicab_patients"
	KeyAppointments  = "medicab_appointments"
	KeyConsultations = "medicab_consultations"
	KeyRevenues      = "medicab_revenues"
	KeyMessages      = "medicab_messages"
	KeySession       = "medicab_session"
)

// AllKeys returns every key the application owns.
func AllKeys() []string {
	return []string{
		KeyUsers,
		KeyPatients,
		KeyAppointments,
		KeyConsultations,
		KeyRevenues,
		KeyMessages,
		KeySession,
	}
}
