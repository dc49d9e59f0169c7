package docstore

import (
	"context"
	"errors"
	"fmt"
)

// Document is a flat set of named string fields
type Document map[string]string

// ErrDuplicate is returned (wrapped in *DuplicateError) when a unique field collides
var ErrDuplicate = errors.New("docstore: duplicate unique field")

// DuplicateError tells which unique field of which collection collided
type DuplicateError struct {
	Collection string
	Field      string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("docstore: duplicate %s.%s", e.Collection, e.Field)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Store is the document store used by the form services
type Store interface {
	// Add persists doc and returns its generated id
	Add(ctx context.Context, collection string, doc Document, opts ...AddOption) (string, error)
	// Query returns every document of collection whose field equals value
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
	// ExistsWithField reports whether any document of collection has field == value
	ExistsWithField(ctx context.Context, collection, field, value string) (bool, error)
}

type addOptions struct {
	unique []string
}

// AddOption configures a single Add call
type AddOption func(*addOptions)

// WithUnique declares fields that must be unique within the collection.
// Fields are checked in the given order, so the first colliding one is reported.
func WithUnique(fields ...string) AddOption {
	return func(o *addOptions) {
		o.unique = append(o.unique, fields...)
	}
}
