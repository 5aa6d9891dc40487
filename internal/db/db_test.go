package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV_SetGetDelete(t *testing.T) {
	kv, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("taskflow_streak")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("taskflow_streak", "1"))
	require.NoError(t, kv.Set("taskflow_streak", "2"))

	v, ok, err := kv.Get("taskflow_streak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	require.NoError(t, kv.Delete("taskflow_streak"))
	require.NoError(t, kv.Delete("taskflow_missing"))

	_, ok, err = kv.Get("taskflow_streak")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("taskflow_darkMode", "true"))
	require.NoError(t, kv.Close())

	kv, err = Open(path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get("taskflow_darkMode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))
	assert.Equal(t, 2, kv.Len())

	v, ok, _ := kv.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, kv.Delete("a"))
	_, ok, _ = kv.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, kv.Len())
}
