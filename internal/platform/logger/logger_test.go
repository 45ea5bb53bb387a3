package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanfield/contactdir/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		wantErr  bool
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "unknown level", logLevel: "verbose", wantErr: true},
		{name: "empty level", logLevel: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	// without an attached logger the default is returned
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	// with an attached logger that logger is returned
	attached := slog.Default().With("component", "test")
	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.Default().With("component", "store")

	// fallback wins when the context carries nothing
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))

	// context logger wins when present
	attached := slog.Default().With("trace_id", "abc")
	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, fallback))

	// nil fallback degrades to the process default
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
