package validator

import (
	"errors"
	"fmt"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
)

const (
	invalidField = "INVALID_FIELD" // errInfo
)

// ErrInvalidField marks a structural failure (missing field, too long, malformed URL)
var ErrInvalidField = sharedError.NewDomainError(invalidField)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidField, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    sharedError.ValidationFailed.Code,
		Message: sharedError.ValidationFailed.Message,
	})
}

// FieldError is a field-level validation failure that is shown to the user as is
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ToErrorResponse converts a FieldError into a standardized response.
// The status and code come from the wrapped domain error, the message from the field error.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		return nil, false
	}

	resp, ok := sharedError.ResolveDomainError(fieldErr)
	if !ok {
		resp = sharedError.ValidationFailed
	}
	resp.Message = fieldErr.Message
	return &resp, true
}

// registerTranslations registers user-friendly Korean messages for the tags used by the forms
func registerTranslations(v *validator.Validate, trans ut.Translator) error {
	messages := map[string]string{
		"required": "{0}: 필수 항목을 입력해 주세요.",
		"max":      "{0}: 최대 {1}자까지 입력 가능합니다.",
		"min":      "{0}: 최소 {1}자 이상이어야 합니다.",
		"url":      "{0}: 올바른 URL 형식이 아닙니다.",
		"http_url": "{0}: 올바른 URL 형식이 아닙니다. (http:// 또는 https://)",
		"phone":    "{0}: 전화번호 형식이 올바르지 않습니다. 예: 010-1234-5678",
		"birthday": "{0}: 생년월일 형식이 올바르지 않습니다. 예: 990101-1",
	}

	for tag, text := range messages {
		err := v.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag, text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
				if err != nil {
					return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
				}
				return t
			},
		)
		if err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}
	}
	return nil
}
