package testutil

import (
	"context"

	"github.com/uiseong-market/form-server/internal/shared/docstore"
)

// MockDocStore is a mock implementation of docstore.Store for testing.
// Unset funcs fall through to Next when it is set.
type MockDocStore struct {
	AddFunc             func(ctx context.Context, collection string, doc docstore.Document, opts ...docstore.AddOption) (string, error)
	QueryFunc           func(ctx context.Context, collection, field, value string) ([]docstore.Document, error)
	ExistsWithFieldFunc func(ctx context.Context, collection, field, value string) (bool, error)

	Next docstore.Store

	AddCalls    int
	ExistsCalls int
}

func (m *MockDocStore) Add(ctx context.Context, collection string, doc docstore.Document, opts ...docstore.AddOption) (string, error) {
	m.AddCalls++
	if m.AddFunc != nil {
		return m.AddFunc(ctx, collection, doc, opts...)
	}
	if m.Next != nil {
		return m.Next.Add(ctx, collection, doc, opts...)
	}
	return "mock-document-id", nil
}

func (m *MockDocStore) Query(ctx context.Context, collection, field, value string) ([]docstore.Document, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, collection, field, value)
	}
	if m.Next != nil {
		return m.Next.Query(ctx, collection, field, value)
	}
	return nil, nil
}

func (m *MockDocStore) ExistsWithField(ctx context.Context, collection, field, value string) (bool, error) {
	m.ExistsCalls++
	if m.ExistsWithFieldFunc != nil {
		return m.ExistsWithFieldFunc(ctx, collection, field, value)
	}
	if m.Next != nil {
		return m.Next.ExistsWithField(ctx, collection, field, value)
	}
	return false, nil
}

// Ensure MockDocStore implements docstore.Store
var _ docstore.Store = (*MockDocStore)(nil)

// NewMockDocStore creates a mock that delegates to next (may be nil)
func NewMockDocStore(next docstore.Store) *MockDocStore {
	return &MockDocStore{Next: next}
}
