package store

import (
	"net/http"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
)

const (
	invalidLocation = "STORE_INVALID_LOCATION" // errInfo
	invalidMapURL   = "STORE_INVALID_MAP_URL"  // errInfo
)

var (
	ErrInvalidLocation = sharedError.NewDomainError(invalidLocation)
	ErrInvalidMapURL   = sharedError.NewDomainError(invalidMapURL)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidLocation, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "STORE-001",
		Message: `주소는 "경상북도 의성군 **면 ..." 형식이어야 합니다.`,
	})

	sharedError.RegisterDomainErrorResponse(invalidMapURL, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "STORE-002",
		Message: "구글 지도 링크여야 합니다 (예: https://www.google.com/maps/...)",
	})
}
