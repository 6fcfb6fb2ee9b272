package types

import "errors"

// Store is the history persistence interface. Implementations own the
// Attach → operations → Detach lifecycle; all operations after Detach
// (or before Attach) return ErrStoreDetached.
type Store interface {
	// Attach initializes the store with the given configuration.
	// Returns ErrAlreadyAttached if called twice.
	Attach(config Config) error

	// Detach releases all resources. Idempotent.
	Detach() error

	// Save persists a record. When RecordID is empty a new UUID v7 is
	// generated; an existing ID updates that record in place.
	// Returns the actual ID used.
	Save(record *Record) (string, error)

	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id string) (*Record, error)

	// List returns records matching the filter, newest first.
	List(filter Filter) ([]*Record, error)

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id string) error

	// Clear removes every record and returns the number removed.
	Clear() (int, error)

	// FindByPayload returns the most recent record whose payload text is
	// byte-identical to payload. Returns ErrNotFound when none matches.
	// Content-based duplicate detection relies on the codec producing
	// deterministic canonical output.
	FindByPayload(payload string) (*Record, error)
}

// Store lifecycle and operation errors.
var (
	ErrStoreDetached   = errors.New("store is not attached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record ID")
	ErrInvalidRecord   = errors.New("invalid record data")
)
