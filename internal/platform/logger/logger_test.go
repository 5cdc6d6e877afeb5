package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "mixed case level", level: "DeBuG"},
		{name: "invalid level falls back to info", level: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(Config{Level: tt.level})
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		stored := slog.New(slog.NewJSONHandler(&buf, nil))

		ctx := WithLogger(context.Background(), stored)
		got := FromContext(ctx)

		assert.Same(t, stored, got)
	})

	t.Run("falls back to default", func(t *testing.T) {
		got := FromContext(context.Background())
		assert.Same(t, slog.Default(), got)
	})
}
