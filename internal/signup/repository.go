package signup

import (
	"context"

	"github.com/uiseong-market/form-server/internal/shared/docstore"
)

const collection = "users"

type UserRepository struct {
	docs docstore.Store
}

func NewUserRepository(docs docstore.Store) *UserRepository {
	return &UserRepository{docs: docs}
}

// Create persists record with nickname and id enforced unique by the store
func (r *UserRepository) Create(ctx context.Context, record Record) (string, error) {
	return r.docs.Add(ctx, collection, docstore.Document{
		"name":         record.Name,
		"nickname":     record.Nickname,
		"id":           record.ID,
		"password":     record.PasswordHash,
		"birthday":     record.Birthday,
		"phone_number": record.PhoneNumber,
	}, docstore.WithUnique("nickname", "id"))
}
