package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type refused struct{}

func (refused) Error() string   { return "refused" }
func (refused) Rejection() bool { return true }

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json")
	l.Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestExitMethodWithError_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(&buf, "debug", "text"))
	defer Initialize("info", "text")

	ExitMethodWithError("CreateRental", refused{})
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	ExitMethodWithError("CreateRental", errors.New("connection reset"))
	assert.Contains(t, buf.String(), "level=ERROR")
}
