package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTruncatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	logger, closer, err := Open(path)
	require.NoError(t, err)

	Banner(logger)
	logger.Info("Row Count", "rows", 42)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "stale content")
	assert.Contains(t, content, "Running New File")
	assert.Contains(t, content, "rows=42")
}

func TestOpenBadPath(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing", "run.log"))
	assert.Error(t, err)
}
