package store

import (
	"context"
	"errors"
	"fmt"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/logger"
	"github.com/uiseong-market/form-server/internal/shared/validator"
)

type StoreService struct {
	validator       *Validator
	storeRepository *StoreRepository
}

func NewStoreService(storeValidator *Validator, storeRepository *StoreRepository) *StoreService {
	return &StoreService{
		validator:       storeValidator,
		storeRepository: storeRepository,
	}
}

// Submit validates form and persists it. Only fully valid records reach the store.
func (s *StoreService) Submit(ctx context.Context, form *Form) (Record, error) {
	log := logger.FromContext(ctx)

	record, err := s.validator.Validate(ctx, form)
	if err != nil {
		var fieldErr *validator.FieldError
		if errors.As(err, &fieldErr) {
			log.Warn("가게 등록 검증 실패", "field", fieldErr.Field, "reason", fieldErr.Message)
			return Record{}, err
		}
		return Record{}, fmt.Errorf("가게 검증 실패: %w", err)
	}

	id, err := s.storeRepository.Create(ctx, record)
	if err != nil {
		log.Error("가게 저장 실패", "error", err)
		return record, sharedError.NewPersistenceError(err)
	}
	record.ID = id

	log.Info("가게 등록 완료", "store_id", id, "name", record.Name)
	return record, nil
}
