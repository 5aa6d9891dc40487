package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/taskflow/internal/models"
)

func TestHistory_RecordUndoRedo(t *testing.T) {
	h := NewHistory()
	_, ok := h.Undo()
	assert.False(t, ok)

	s0 := []models.Task{}
	s1 := []models.Task{{ID: 1, Text: "a"}}
	s2 := []models.Task{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}
	h.Record(s0)
	h.Record(s1)
	h.Record(s2)
	assert.Equal(t, 2, h.Cursor())

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, s1, got)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, s2, got)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistory_RecordTruncatesRedoTail(t *testing.T) {
	h := NewHistory()
	h.Record(nil)
	h.Record([]models.Task{{ID: 1}})
	h.Record([]models.Task{{ID: 1}, {ID: 2}})

	h.Undo()
	h.Undo()
	h.Record([]models.Task{{ID: 3}})

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())
	assert.True(t, h.CanUndo())
}

func TestHistory_SnapshotsAreCopies(t *testing.T) {
	h := NewHistory()
	live := []models.Task{{ID: 1, Text: "a"}}
	h.Record(live)
	h.Record([]models.Task{})
	live[0].Text = "mutated"

	got, _ := h.Undo()
	assert.Equal(t, "a", got[0].Text)

	got[0].Text = "mutated again"
	h.Redo()
	again, _ := h.Undo()
	assert.Equal(t, "a", again[0].Text)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Record(nil)
	h.Record(nil)
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, h.Cursor())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
