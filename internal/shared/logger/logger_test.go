package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiseong-market/form-server/internal/shared/logger"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger.New("prod", &buf).Info("회원가입 완료", "nickname", logger.MaskValue("민수"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "회원가입 완료", entry["msg"])
	assert.Equal(t, "민***", entry["nickname"])
}

func TestNew_TestEnvDropsInfo(t *testing.T) {
	var buf bytes.Buffer

	log := logger.New("test", &buf)
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	reqLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := logger.WithLogger(context.Background(), reqLogger)

	assert.Same(t, reqLogger, logger.FromContext(ctx))
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
}
