package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	sharedError "github.com/uiseong-market/form-server/internal/shared/error"
	"github.com/uiseong-market/form-server/internal/shared/handler"
	"github.com/uiseong-market/form-server/internal/shared/validator"
)

var errTaken = sharedError.NewDomainError("HANDLER_TEST_TAKEN")

func init() {
	sharedError.RegisterDomainErrorResponse("HANDLER_TEST_TAKEN", sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TEST-409",
		Message: "이미 사용 중입니다.",
	})
}

func TestResolveError(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "field error keeps its message and the domain status",
			err:         validator.NewFieldError("nickname", errTaken),
			wantStatus:  http.StatusConflict,
			wantMessage: "이미 사용 중입니다.",
		},
		{
			name:        "persistence error carries the underlying detail",
			err:         fmt.Errorf("nickname 검사 실패: %w", sharedError.NewPersistenceError(errors.New("i/o timeout"))),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "데이터 저장 오류: i/o timeout",
		},
		{
			name:        "bare domain error",
			err:         errTaken,
			wantStatus:  http.StatusConflict,
			wantMessage: "이미 사용 중입니다.",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("nil pointer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: sharedError.InternalServerError.Message,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := handler.ResolveError(tc.err)

			assert.Equal(t, tc.wantStatus, resp.Status)
			assert.Equal(t, tc.wantMessage, resp.Message)
		})
	}
}
