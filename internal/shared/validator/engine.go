package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ko"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Engine wraps go-playground/validator with Korean messages.
// Struct tags use the `validate` key so gin's own binding validation stays out of the way;
// field names in messages come from the `form` tag.
type Engine struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates an Engine with the common validators (phone, birthday) registered
func New() (*Engine, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.SetTagName("validate")
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	koLocale := ko.New()
	uni := ut.New(koLocale, koLocale)
	trans, ok := uni.GetTranslator("ko")
	if !ok {
		return nil, fmt.Errorf("ko translator를 찾을 수 없습니다")
	}

	e := &Engine{validate: validate, translator: trans}

	if err := e.RegisterValidation("phone", ValidatePhone); err != nil {
		return nil, err
	}
	if err := e.RegisterValidation("birthday", ValidateBirthday); err != nil {
		return nil, err
	}
	if err := registerTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("validator 메시지 등록 실패: %w", err)
	}

	slog.Debug("Validator 초기화 완료", "validators", "phone,birthday")
	return e, nil
}

// RegisterValidation registers a tag. Domain packages register their own tags at setup.
func (e *Engine) RegisterValidation(tag string, fn validator.Func) error {
	if err := e.validate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
	}
	return nil
}

// Struct validates the struct tags of v and returns the first failing field as *FieldError.
func (e *Engine) Struct(ctx context.Context, v any) error {
	err := e.validate.StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fe := validationErrors[0]
	return &FieldError{
		Field:   fe.Field(),
		Message: fe.Translate(e.translator),
		Err:     ErrInvalidField,
	}
}

// Tag returns a Check that passes when value satisfies tag
func (e *Engine) Tag(value any, tag string) Check {
	return func(ctx context.Context) (bool, error) {
		return asCheckResult(e.validate.VarCtx(ctx, value, tag))
	}
}

func asCheckResult(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return false, nil
	}
	return false, err
}
