package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/logger"
)

func TestHandler_ContextAttrs(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug", "json")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithDraftID(ctx, "draft-1")

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "draft-1", record["draft_id"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

func TestNewWithWriter_Level(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "warn", "text")
	require.NoError(t, err)

	l.Info("skipped")
	require.Empty(t, buf.String())

	l.Warn("kept")
	require.Contains(t, buf.String(), "msg=kept")

	_, err = logger.NewWithWriter(buf, "loud", "json")
	require.Error(t, err)
}
