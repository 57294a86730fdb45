package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/folio-panel/folio/config"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   config.LogLevel
		want logging.Level
	}{
		{config.Debug, logging.DEBUG},
		{config.Info, logging.INFO},
		{config.Notice, logging.NOTICE},
		{config.Warn, logging.WARNING},
		{config.Error, logging.ERROR},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_LOG_FOLDER", dir)

	InitLogger(logging.ERROR)
	defer CloseLogger()

	Debugf("seeded %d rows", 3)

	data, err := os.ReadFile(filepath.Join(dir, "folio.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "seeded 3 rows"))
}

func TestInitLoggerTruncatesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_LOG_FOLDER", dir)
	path := filepath.Join(dir, "folio.log")
	require.NoError(t, os.WriteFile(path, []byte("left over from last start\n"), 0o660))

	InitLogger(logging.ERROR)
	defer CloseLogger()

	Debugf("fresh start")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "left over")
	assert.Contains(t, string(data), "fresh start")
}
