package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uiseong-market/form-server/internal/shared/logger"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "010-****-5678", logger.MaskPhone("010-1234-5678"))
	assert.Equal(t, "***", logger.MaskPhone("01012345678"))
}

func TestMaskBirthday(t *testing.T) {
	assert.Equal(t, "99****-*", logger.MaskBirthday("990101-1"))
	assert.Equal(t, "***", logger.MaskBirthday("9"))
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "민***", logger.MaskValue("민수"))
	assert.Equal(t, "m***", logger.MaskValue("minsu"))
	assert.Equal(t, "", logger.MaskValue(""))
}
