// Package bootstrap seeds an empty store with the demo practice and clears it again.
package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"medicab-server/internal/models"
	"medicab-server/internal/storage"
)

// collection pairs a key with the function building its seed value.
type collection struct {
	key  string
	seed func() (any, error)
}

func collections() []collection {
	return []collection{
		{storage.KeyUsers, demoUsers},
		{storage.KeyPatients, func() (any, error) { return demoPatients(), nil }},
		{storage.KeyAppointments, func() (any, error) { return demoAppointments(), nil }},
		{storage.KeyConsultations, func() (any, error) { return demoConsultations(), nil }},
		{storage.KeyRevenues, func() (any, error) { return demoRevenues(), nil }},
		{storage.KeyMessages, func() (any, error) { return []models.Message{}, nil }},
	}
}

// InitializeDemoData writes the demo value of every collection whose key holds
// no readable value. Collections already present are left untouched, and so
// are collections the backend could not be read for.
func InitializeDemoData(ctx context.Context, store *storage.Store) {
	for _, col := range collections() {
		var existing json.RawMessage
		found, err := store.Lookup(ctx, col.key, &existing)
		if err != nil && !errors.Is(err, storage.ErrDecode) {
			log.Printf("bootstrap: skipping %q: %v", col.key, err)
			continue
		}
		if found {
			continue
		}
		value, err := col.seed()
		if err != nil {
			log.Printf("bootstrap: building seed for %q: %v", col.key, err)
			continue
		}
		if store.Set(ctx, col.key, value) {
			log.Printf("bootstrap: seeded %q", col.key)
		}
	}
}

// Reset removes every application key, the session included. It reports
// whether all removals succeeded.
func Reset(ctx context.Context, store *storage.Store) bool {
	ok := true
	for _, key := range storage.AllKeys() {
		if !store.Remove(ctx, key) {
			ok = false
		}
	}
	return ok
}
