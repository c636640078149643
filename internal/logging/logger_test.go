package logging

import (
	"bytes"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	logger.Info("hidden message")
	logger.Warn("visible message", "item", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden message")
	require.Contains(t, out, "visible message")
	require.Contains(t, out, "item=3")
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Writer: &buf, Prefix: "plyconv"})
	require.NoError(t, err)

	logger.Debug("parsed legacy playlist", "items", 2)
	require.Contains(t, buf.String(), "parsed legacy playlist")
	require.Contains(t, buf.String(), "plyconv")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]charmlog.Level{
		"debug": charmlog.DebugLevel,
		"INFO":  charmlog.InfoLevel,
		"":      charmlog.WarnLevel,
		"warn":  charmlog.WarnLevel,
		"error": charmlog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
