package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNewLogger_MasksAndCorrelates(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "contactrelay", slog.LevelInfo, nil, []string{"Email", " reply_to ", ""})

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "contact email sent",
		"email", "visitor@example.com",
		"payload", map[string]any{"reply_to": "visitor@example.com", "name": "Ann"},
		"message_id", "abc",
	)

	line := decodeLine(t, buf)
	assert.Equal(t, "contact email sent", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "***", line["email"])
	assert.Equal(t, map[string]any{"reply_to": "***", "name": "Ann"}, line["payload"])
	assert.Equal(t, "abc", line["message_id"])
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "contactrelay", line["service"])
	assert.Contains(t, line, "ts")
}

func TestNewLogger_WithAttrsKeepsContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "contactrelay", slog.LevelInfo, nil, nil).With("component", "mailer")

	logger.InfoContext(SetCorrelationID(context.Background(), "cid-2"), "hello")

	line := decodeLine(t, buf)
	assert.Equal(t, "mailer", line["component"])
	assert.Equal(t, "cid-2", line["_cID"])
	assert.Equal(t, "contactrelay", line["service"])
}

func TestNewLogger_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "contactrelay", parseLevel("warn"), nil, nil)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "x", GetCorrelationID(SetCorrelationID(context.Background(), "x")))
}

func TestNew_Disabled(t *testing.T) {
	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "contactrelay"})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))

	ins, err = New(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, ins.Meter("test"))
}

func TestNewLogger_MasksJSONAndWith(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "contactrelay", slog.LevelInfo, nil, []string{"email"}).
		With("email", "visitor@example.com")

	logger.Info("request received",
		"body", `{"name":"Ann","email":"visitor@example.com","to":[{"email":"a@example.com"}]}`,
		"raw", []byte(`not json`),
		"headers", map[string]string{"Email": "x"},
	)

	line := decodeLine(t, buf)
	assert.Equal(t, "***", line["email"])
	assert.JSONEq(t, `{"name":"Ann","email":"***","to":[{"email":"***"}]}`, line["body"].(string))
	assert.Equal(t, map[string]any{"Email": "***"}, line["headers"])
	assert.Contains(t, line["file"], "internal/pkg/instrument/logging_test.go:")
}

func TestRenameAttr_DropsExternalSource(t *testing.T) {
	a := renameAttr(nil, slog.Any(slog.SourceKey, &slog.Source{File: "/usr/local/go/src/testing/testing.go", Line: 1}))
	assert.True(t, a.Equal(slog.Attr{}))
}
