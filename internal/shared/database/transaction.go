package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction while propagating context.
// The tx passed to fn already carries ctx; returning an error rolls back.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := tx.Create(doc).Error; err != nil {
//	        return err // rollback
//	    }
//	    return tx.Create(fields).Error // commit on nil
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
