package docstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/uiseong-market/form-server/internal/model"
	"github.com/uiseong-market/form-server/internal/shared/database"
	"github.com/uiseong-market/form-server/internal/shared/logger"
)

// GormStore keeps documents in the documents table and indexes every field in document_fields
type GormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a GormStore. timeout bounds every call; zero disables it.
func NewGormStore(db *gorm.DB, timeout time.Duration) *GormStore {
	return &GormStore{
		db:      db,
		timeout: timeout,
	}
}

func (s *GormStore) Add(ctx context.Context, collection string, doc Document, opts ...AddOption) (string, error) {
	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("문서 직렬화 실패: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id := uuid.NewString()
	err = database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Create(model.NewDocument(id, collection, string(body))).Error; err != nil {
			return fmt.Errorf("문서 저장 실패: %w", err)
		}

		for _, field := range fieldOrder(doc, o.unique) {
			row := &model.DocumentField{
				DocumentID: id,
				Collection: collection,
				FieldName:  field,
				FieldValue: doc[field],
			}
			if slices.Contains(o.unique, field) {
				key := uniqueKey(collection, field, doc[field])
				row.UniqueKey = &key
			}

			if err := tx.Create(row).Error; err != nil {
				if isDuplicateKey(err) {
					return &DuplicateError{Collection: collection, Field: field}
				}
				return fmt.Errorf("문서 필드 저장 실패 field=%s: %w", field, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug("문서 저장 완료", "collection", collection, "document_id", id)
	return id, nil
}

func (s *GormStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	matching := s.db.WithContext(ctx).
		Model(&model.DocumentField{}).
		Select("document_id").
		Where("collection = ? AND field_name = ? AND field_value = ?", collection, field, value)

	var rows []model.Document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id IN (?)", collection, matching).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("문서 조회 실패 %s.%s: %w", collection, field, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		var doc Document
		if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
			return nil, fmt.Errorf("문서 역직렬화 실패 id=%s: %w", row.ID, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *GormStore) ExistsWithField(ctx context.Context, collection, field, value string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.DocumentField{}).
		Where("collection = ? AND field_name = ? AND field_value = ?", collection, field, value).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("문서 존재 여부 조회 실패 %s.%s: %w", collection, field, err)
	}

	return count > 0, nil
}

func (s *GormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// fieldOrder puts unique fields first (in declared order), then the rest sorted
func fieldOrder(doc Document, unique []string) []string {
	fields := make([]string, 0, len(doc))
	for _, field := range unique {
		if _, ok := doc[field]; ok && !slices.Contains(fields, field) {
			fields = append(fields, field)
		}
	}

	rest := make([]string, 0, len(doc))
	for field := range doc {
		if !slices.Contains(fields, field) {
			rest = append(rest, field)
		}
	}
	slices.Sort(rest)

	return append(fields, rest...)
}

// uniqueKey is a fixed-length key so long values stay within index limits
func uniqueKey(collection, field, value string) string {
	sum := sha256.Sum256([]byte(collection + "\x00" + field + "\x00" + value))
	return hex.EncodeToString(sum[:])
}

// isDuplicateKey detects unique constraint violations.
// gorm translates them when the dialector supports it; ORA-00001 is matched as a fallback.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "ORA-00001") || strings.Contains(msg, "UNIQUE constraint failed")
}
