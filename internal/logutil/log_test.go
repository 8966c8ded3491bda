package logutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("req.id", "abc").Logger()
	ctx := WithLogger(context.Background(), logger)
	l := GetOrDefault(ctx)
	l.Info().Msg("hello")
	require.Contains(t, buf.String(), `"req.id":"abc"`)
	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Setup("loud", false))
	require.NoError(t, Setup("warn", false))
}
