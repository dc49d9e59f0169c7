package store

import (
	"context"

	"github.com/uiseong-market/form-server/internal/shared/docstore"
)

const collection = "stores"

type StoreRepository struct {
	docs docstore.Store
}

func NewStoreRepository(docs docstore.Store) *StoreRepository {
	return &StoreRepository{docs: docs}
}

// Create persists record and returns the document id
func (r *StoreRepository) Create(ctx context.Context, record Record) (string, error) {
	return r.docs.Add(ctx, collection, docstore.Document{
		"name":           record.Name,
		"introduce":      record.Introduce,
		"location":       record.Location,
		"google_map_url": record.GoogleMapURL,
		"product":        record.Product,
	})
}
