package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const infoLevel int8 = 0

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSONWithBuildFields(t *testing.T) {
	var buf bytes.Buffer
	_, lgr := New(zapcore.AddSync(&buf), infoLevel)

	lgr.Info("rendered", StyleKey, "tree", IconsKey, "circle")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)

	entry := lines[0]
	assert.Equal(t, "rendered", entry[MessageKey])
	assert.Equal(t, "tree", entry[StyleKey])
	assert.Equal(t, "circle", entry[IconsKey])
	assert.Contains(t, entry, TimeStampKey)
	assert.Contains(t, entry, VersionKey)
	assert.Contains(t, entry, CommitKey)
	assert.Contains(t, entry, GoVersionKey)
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	_, lgr := New(zapcore.AddSync(&buf), infoLevel)
	lgr.V(1).Info("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	_, lgr = New(zapcore.AddSync(&buf), DebugLevel)
	lgr.V(1).Info("shown")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0][MessageKey])
}

func TestGetReturnsSameInstance(t *testing.T) {
	first := Get(infoLevel)
	require.NotNil(t, first)
	assert.Same(t, first, Get(DebugLevel))
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(infoLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(infoLevel))
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	lgr := Get(infoLevel)

	withLogger := WithLogger(ctx, lgr)
	assert.Same(t, lgr, withLogger.Value(loggerContextKey{}))
	assert.Equal(t, withLogger, WithLogger(withLogger, lgr), "same logger keeps the context")

	other := logr.Discard()
	replaced := WithLogger(withLogger, &other)
	assert.Same(t, &other, replaced.Value(loggerContextKey{}))
}

func TestFromContext(t *testing.T) {
	lgr := Get(infoLevel)
	other := logr.Discard()

	assert.Same(t, &other, FromContext(WithLogger(context.Background(), &other)))
	assert.Same(t, lgr, FromContext(context.Background()))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
	assert.Same(t, &defaultNoopLogger, GetGlobalLogger())
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	for _, errno := range []syscall.Errno{syscall.ENOTTY, syscall.EINVAL, syscall.EIO, syscall.EBADF} {
		err := &os.PathError{Op: "sync", Path: "/dev/stderr", Err: errno}
		assert.True(t, isIgnorableSyncError(err), errno.Error())
	}
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestWithValues(t *testing.T) {
	var buf bytes.Buffer
	_, base := New(zapcore.AddSync(&buf), infoLevel)

	child := WithValues(&base, RootCommandKey, "fje")
	require.NotNil(t, child)
	assert.NotSame(t, &base, child)

	child.Info("hello")
	base.Info("plain")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "fje", lines[0][RootCommandKey])
	assert.NotContains(t, lines[1], RootCommandKey)
}
