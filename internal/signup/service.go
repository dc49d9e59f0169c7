package signup

import (
	"context"
	"errors"
	"fmt"

	"github.com/uiseong-market/form-server/internal/shared/docstore"
	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/logger"
	"github.com/uiseong-market/form-server/internal/shared/validator"
)

type SignupService struct {
	validator      *Validator
	userRepository *UserRepository
	checker        UniquenessChecker
}

func NewSignupService(signupValidator *Validator, userRepository *UserRepository, checker UniquenessChecker) *SignupService {
	return &SignupService{
		validator:      signupValidator,
		userRepository: userRepository,
		checker:        checker,
	}
}

// Signup validates form and stores the user.
//
// The uniqueness pre-checks and the write are not atomic. Two concurrent signups can both
// pass the pre-checks; the store's unique index then rejects the second write, which is
// reported with the same duplicate message.
func (s *SignupService) Signup(ctx context.Context, form *Form) error {
	log := logger.FromContext(ctx)

	record, err := s.validator.Validate(ctx, form, s.checker)
	if err != nil {
		var fieldErr *validator.FieldError
		var persistenceErr *sharedError.PersistenceError
		switch {
		case errors.As(err, &fieldErr):
			log.Warn("회원가입 검증 실패",
				"field", fieldErr.Field,
				"reason", fieldErr.Message,
				"birthday", logger.MaskBirthday(form.Birthday),
				"phone_number", logger.MaskPhone(form.PhoneNumber),
			)
			return err
		case errors.As(err, &persistenceErr):
			log.Error("회원 중복 조회 실패", "error", err)
			return err
		default:
			log.Error("회원가입 처리 실패", "error", err)
			return fmt.Errorf("회원가입 처리 실패: %w", err)
		}
	}

	id, err := s.userRepository.Create(ctx, record)
	if err != nil {
		var dupErr *docstore.DuplicateError
		if errors.As(err, &dupErr) {
			log.Warn("회원 저장 중 중복 감지", "field", dupErr.Field, "nickname", logger.MaskValue(record.Nickname))
			return duplicateFieldError(dupErr.Field)
		}
		log.Error("회원 저장 실패", "error", err)
		return sharedError.NewPersistenceError(err)
	}

	log.Info("회원가입 완료",
		"document_id", id,
		"nickname", logger.MaskValue(record.Nickname),
		"id", logger.MaskValue(record.ID),
		"phone_number", logger.MaskPhone(record.PhoneNumber),
	)
	return nil
}

// duplicateFieldError maps a unique index violation back to the validation message
func duplicateFieldError(field string) error {
	if field == "id" {
		return validator.NewFieldError(field, ErrDuplicateID)
	}
	return validator.NewFieldError(field, ErrDuplicateNickname)
}
