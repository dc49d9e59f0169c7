package signup

import (
	"net/http"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
)

const (
	passwordMismatch  = "SIGNUP_PASSWORD_MISMATCH"  // errInfo
	invalidBirthday   = "SIGNUP_INVALID_BIRTHDAY"   // errInfo
	invalidPhone      = "SIGNUP_INVALID_PHONE"      // errInfo
	duplicateNickname = "SIGNUP_DUPLICATE_NICKNAME" // errInfo
	duplicateID       = "SIGNUP_DUPLICATE_ID"       // errInfo
)

var (
	ErrPasswordMismatch  = sharedError.NewDomainError(passwordMismatch)
	ErrInvalidBirthday   = sharedError.NewDomainError(invalidBirthday)
	ErrInvalidPhone      = sharedError.NewDomainError(invalidPhone)
	ErrDuplicateNickname = sharedError.NewDomainError(duplicateNickname)
	ErrDuplicateID       = sharedError.NewDomainError(duplicateID)
)

func init() {
	sharedError.RegisterDomainErrorResponse(passwordMismatch, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SIGNUP-001",
		Message: "비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidBirthday, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SIGNUP-002",
		Message: "생년월일 형식이 올바르지 않습니다. 예: 990101-1",
	})

	sharedError.RegisterDomainErrorResponse(invalidPhone, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SIGNUP-003",
		Message: "전화번호 형식이 올바르지 않습니다. 예: 010-1234-5678",
	})

	sharedError.RegisterDomainErrorResponse(duplicateNickname, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "SIGNUP-004",
		Message: "이미 가입된 닉네임입니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateID, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "SIGNUP-005",
		Message: "이미 가입된 아이디입니다.",
	})
}
