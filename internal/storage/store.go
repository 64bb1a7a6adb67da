package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

// Options bounds every backend call made by a Store
type Options struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// Store encodes values as JSON on top of a Backend. Its methods never return
// errors: faults are logged and reported as false.
type Store struct {
	backend Backend
	opts    Options
}

// New creates a Store over backend.
func New(backend Backend, opts Options) *Store {
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	return &Store{backend: backend, opts: opts}
}

// Get decodes the value stored under key into dest. It returns false when the
// key is absent, the value is not valid JSON for dest, or the backend fails.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	found, err := s.Lookup(ctx, key, dest)
	if err != nil {
		log.Printf("storage: get %q: %v", key, err)
		return false
	}
	return found
}

// Lookup decodes the value stored under key into dest and tells an absent key
// (false, nil) apart from a fault. A value that does not decode is reported
// as an error wrapping ErrDecode.
func (s *Store) Lookup(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.do(ctx, "get", key, func(ctx context.Context) error {
		var err error
		raw, err = s.backend.Get(ctx, key)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return true, nil
}

// Set encodes value as JSON and stores it under key.
func (s *Store) Set(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: encode %q: %v", key, err)
		return false
	}
	err = s.do(ctx, "set", key, func(ctx context.Context) error {
		return s.backend.Set(ctx, key, raw)
	})
	if err != nil {
		log.Printf("storage: set %q: %v", key, err)
		return false
	}
	return true
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	err := s.do(ctx, "remove", key, func(ctx context.Context) error {
		return s.backend.Delete(ctx, key)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("storage: remove %q: %v", key, err)
		return false
	}
	return true
}

// do runs fn with the per-call timeout, retrying failures other than
// ErrNotFound and ErrRejected until the retry budget or the caller's context
// runs out.
func (s *Store) do(ctx context.Context, op, key string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.opts.Retries; attempt++ {
		if attempt > 0 {
			log.Printf("storage: retrying %s %q (attempt %d/%d): %v", op, key, attempt, s.opts.Retries, err)
			if !sleep(ctx, s.opts.RetryDelay) {
				return ctx.Err()
			}
		}
		err = s.call(ctx, fn)
		if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrRejected) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (s *Store) call(ctx context.Context, fn func(context.Context) error) error {
	if s.opts.Timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	return fn(ctx)
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
