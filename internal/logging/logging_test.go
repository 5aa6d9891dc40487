package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	l, err := New(Options{Dir: dir, Level: "info"})
	require.NoError(t, err)

	l.With("component", "store").Warnw("persist failed", "key", "taskflow_tasks")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "taskflow.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"component":"store"`)
	assert.Contains(t, string(b), "persist failed")
}

func TestNew_RejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_NoSinksIsNop(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	l.Infow("dropped")
}
