package todo

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/db"
	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/view"
)

var start = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *db.MemoryKV, *clock.FakeClock) {
	t.Helper()
	kv := db.NewMemoryKV()
	clk := clock.NewFakeClock(start)
	return Open(kv, WithClock(clk), WithLogger(zap.NewNop().Sugar())), kv, clk
}

func TestAdd(t *testing.T) {
	s, _, _ := newTestStore(t)

	ch := s.Add("  Buy milk  ", models.PriorityHigh, "Shopping", nil)
	require.True(t, ch.Changed)
	require.NotNil(t, ch.Task)
	assert.Equal(t, uint(1), ch.Task.ID)
	assert.Equal(t, "Buy milk", ch.Task.Text)
	assert.Equal(t, models.PriorityHigh, ch.Task.Priority)
	assert.Equal(t, "Shopping", ch.Task.Category)
	assert.Equal(t, start, ch.Task.CreatedAt)
	assert.False(t, ch.Task.ReminderShown)

	second := s.Add("Call mom", "urgent", "All", nil)
	assert.Equal(t, uint(2), second.Task.ID)
	assert.Equal(t, models.PriorityNormal, second.Task.Priority)
	assert.Equal(t, models.DefaultCategory, second.Task.Category)
}

func TestAdd_EmptyTextIsNoop(t *testing.T) {
	s, kv, _ := newTestStore(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		ch := s.Add(text, models.PriorityNormal, "Work", nil)
		assert.False(t, ch.Changed)
		assert.Nil(t, ch.Task)
	}
	assert.Empty(t, s.Tasks())
	assert.Equal(t, 0, kv.Len())
	assert.False(t, s.CanUndo())
}

func TestAdd_CopiesDueDate(t *testing.T) {
	s, _, _ := newTestStore(t)
	due := start.Add(time.Hour)
	ch := s.Add("Dentist", models.PriorityNormal, "Health", &due)

	due = due.Add(24 * time.Hour)
	got, ok := s.Task(ch.Task.ID)
	require.True(t, ok)
	assert.Equal(t, start.Add(time.Hour), *got.DueDateTime)
}

func TestBuyMilkScenario(t *testing.T) {
	s, _, _ := newTestStore(t)

	ch := s.Add("Buy milk", models.PriorityNormal, "Personal", nil)
	id := ch.Task.ID
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Completed)
	assert.Nil(t, tasks[0].CompletedAt)

	ch = s.Toggle(id)
	assert.True(t, ch.Task.Completed)
	require.NotNil(t, ch.Task.CompletedAt)
	assert.Equal(t, start, *ch.Task.CompletedAt)
	assert.True(t, ch.StreakBumped)
	assert.Equal(t, 1, s.Streak())

	ch = s.Toggle(id)
	assert.False(t, ch.Task.Completed)
	assert.Nil(t, ch.Task.CompletedAt)
	assert.False(t, ch.StreakBumped)
	assert.Equal(t, 1, s.Streak())
}

func TestStreak_OncePerDay(t *testing.T) {
	s, _, clk := newTestStore(t)
	a := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID
	b := s.Add("b", models.PriorityNormal, "Work", nil).Task.ID

	s.Toggle(a)
	s.Toggle(b)
	assert.Equal(t, 1, s.Streak())

	clk.Advance(24 * time.Hour)
	s.Toggle(a) // un-complete
	assert.Equal(t, 1, s.Streak())
	ch := s.Toggle(a)
	assert.True(t, ch.StreakBumped)
	assert.Equal(t, 2, s.Streak())
}

func TestToggle_Involution(t *testing.T) {
	s, _, clk := newTestStore(t)
	id := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID
	s.Toggle(id)
	before, _ := s.Task(id)

	clk.Advance(time.Minute)
	s.Toggle(id)
	s.Toggle(id)
	after, _ := s.Task(id)
	assert.Equal(t, before.Completed, after.Completed)
	assert.NotNil(t, after.CompletedAt)

	s.Toggle(id)
	s.Toggle(id)
	s.Toggle(id)
	final, _ := s.Task(id)
	assert.False(t, final.Completed)
	assert.Nil(t, final.CompletedAt)
}

func TestMissingIDsAreNoops(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add("a", models.PriorityNormal, "Work", nil)

	assert.False(t, s.Toggle(99).Changed)
	assert.False(t, s.Edit(99, "x").Changed)
	assert.False(t, s.Delete(99).Changed)
	assert.False(t, s.SetDue(99, nil).Changed)
	assert.Len(t, s.Tasks(), 1)
}

func TestEdit(t *testing.T) {
	s, _, _ := newTestStore(t)
	id := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID

	assert.False(t, s.Edit(id, "   ").Changed)
	ch := s.Edit(id, " b ")
	require.True(t, ch.Changed)
	assert.Equal(t, "b", ch.Task.Text)
}

func TestDeleteAndClearCompleted(t *testing.T) {
	s, _, _ := newTestStore(t)
	a := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID
	b := s.Add("b", models.PriorityNormal, "Work", nil).Task.ID
	c := s.Add("c", models.PriorityNormal, "Work", nil).Task.ID

	ch := s.Delete(b)
	assert.Equal(t, b, ch.Task.ID)

	s.Toggle(a)
	s.ClearCompleted()
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, c, tasks[0].ID)

	// ids are never reused
	d := s.Add("d", models.PriorityNormal, "Work", nil).Task.ID
	assert.Equal(t, uint(4), d)
}

func TestSetDue_RearmsReminder(t *testing.T) {
	s, _, _ := newTestStore(t)
	due := start.Add(time.Minute)
	id := s.Add("a", models.PriorityNormal, "Work", &due).Task.ID
	require.True(t, s.MarkReminderShown(id))

	later := start.Add(time.Hour)
	ch := s.SetDue(id, &later)
	assert.False(t, ch.Task.ReminderShown)
	assert.Equal(t, later, *ch.Task.DueDateTime)

	ch = s.SetDue(id, nil)
	assert.Nil(t, ch.Task.DueDateTime)
}

func TestUndoRedo(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.False(t, s.Undo().Changed)

	a := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID
	s.Add("b", models.PriorityNormal, "Work", nil)
	afterB := s.Tasks()

	require.True(t, s.Undo().Changed)
	assert.Len(t, s.Tasks(), 1)
	require.True(t, s.Redo().Changed)
	assert.Equal(t, afterB, s.Tasks())
	assert.False(t, s.Redo().Changed)

	// undo past the first add restores the empty list, then stops
	s.Undo()
	s.Undo()
	assert.Empty(t, s.Tasks())
	assert.False(t, s.Undo().Changed)

	// a new mutation discards the redo tail
	s.Redo()
	s.Toggle(a)
	assert.False(t, s.CanRedo())
	assert.True(t, s.Tasks()[0].Completed)
}

func TestUndo_DoesNotReuseIDs(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add("a", models.PriorityNormal, "Work", nil)
	s.Undo()
	ch := s.Add("b", models.PriorityNormal, "Work", nil)
	assert.Equal(t, uint(2), ch.Task.ID)
}

func TestUndo_IsPersisted(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.Add("a", models.PriorityNormal, "Work", nil)
	s.Add("b", models.PriorityNormal, "Work", nil)
	s.Undo()

	reopened := Open(kv, WithLogger(zap.NewNop().Sugar()))
	assert.Len(t, reopened.Tasks(), 1)
}

func TestAchievements_MonotonicAcrossDelete(t *testing.T) {
	s, _, _ := newTestStore(t)
	id := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID

	ch := s.Toggle(id)
	require.Len(t, ch.Unlocked, 1)
	assert.Equal(t, "first_task", ch.Unlocked[0].ID)

	s.Delete(id)
	s.Undo()
	s.Redo()
	require.Len(t, s.Achievements(), 1)
	assert.Equal(t, start, s.Achievements()[0].UnlockedAt)

	// completing again never re-unlocks
	id2 := s.Add("b", models.PriorityNormal, "Work", nil).Task.ID
	assert.Empty(t, s.Toggle(id2).Unlocked)
	assert.Len(t, s.Achievements(), 1)
}

func TestRandomOpsKeepCountsConsistent(t *testing.T) {
	s, _, clk := newTestStore(t)
	rng := rand.New(rand.NewSource(42))
	seen := map[string]bool{}

	for i := 0; i < 500; i++ {
		tasks := s.Tasks()
		pick := func() uint {
			if len(tasks) == 0 || rng.Intn(10) == 0 {
				return uint(rng.Intn(1000))
			}
			return tasks[rng.Intn(len(tasks))].ID
		}
		switch rng.Intn(7) {
		case 0, 1:
			s.Add("task", models.Priorities[rng.Intn(3)], models.DefaultCategories[rng.Intn(5)], nil)
		case 2:
			s.Toggle(pick())
		case 3:
			s.Edit(pick(), "edited")
		case 4:
			s.Delete(pick())
		case 5:
			s.Undo()
		case 6:
			s.Redo()
		}
		clk.Advance(time.Duration(rng.Intn(120)) * time.Minute)

		st := view.ComputeStats(s.Tasks(), clk.Now())
		require.Equal(t, st.Total, st.ActiveCount+st.CompletedCount)
		for _, tk := range s.Tasks() {
			require.Equal(t, tk.Completed, tk.CompletedAt != nil)
		}

		for id := range seen {
			require.Contains(t, achievementIDs(s.Achievements()), id)
		}
		for _, a := range s.Achievements() {
			seen[a.ID] = true
		}
	}
}

func achievementIDs(u []models.UnlockedAchievement) []string {
	out := []string{}
	for _, a := range u {
		out = append(out, a.ID)
	}
	return out
}

func TestReset(t *testing.T) {
	s, kv, _ := newTestStore(t)
	id := s.Add("a", models.PriorityNormal, "Work", nil).Task.ID
	s.Toggle(id)
	s.SetDarkMode(true)
	s.AddCategory("Garden")
	require.Greater(t, kv.Len(), 0)

	require.True(t, s.Reset().Changed)
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.Achievements())
	assert.Equal(t, 0, s.Streak())
	assert.False(t, s.DarkMode())
	assert.True(t, s.SoundEnabled())
	assert.Equal(t, models.DefaultCategories, s.Categories())
	assert.False(t, s.CanUndo())
	assert.Equal(t, 0, kv.Len())

	// streak bookkeeping starts over too
	id = s.Add("b", models.PriorityNormal, "Work", nil).Task.ID
	assert.True(t, s.Toggle(id).StreakBumped)
}

func TestCategories(t *testing.T) {
	s, _, _ := newTestStore(t)
	assert.True(t, s.AddCategory(" Garden "))
	assert.False(t, s.AddCategory("Garden"))
	assert.False(t, s.AddCategory(" "))
	assert.False(t, s.AddCategory("All"))
	assert.Contains(t, s.Categories(), "Garden")

	assert.True(t, s.RemoveCategory("Work"))
	assert.False(t, s.RemoveCategory("Work"))
	assert.NotContains(t, s.Categories(), "Work")
}

func TestReopenRestoresState(t *testing.T) {
	s, kv, _ := newTestStore(t)
	due := start.Add(time.Hour)
	id := s.Add("a", models.PriorityHigh, "Work", &due).Task.ID
	s.Toggle(id)
	s.SetSoundEnabled(false)
	s.SetDarkMode(true)

	r := Open(kv, WithLogger(zap.NewNop().Sugar()))
	assert.Equal(t, s.Snapshot(), r.Snapshot())
	next := r.Add("b", models.PriorityNormal, "Work", nil)
	assert.Equal(t, uint(2), next.Task.ID)
}

func TestLoad_PerKeyFallback(t *testing.T) {
	kv := db.NewMemoryKV()
	require.NoError(t, kv.Set(KeyTasks, "{not json"))
	require.NoError(t, kv.Set(KeyStreak, "many"))
	require.NoError(t, kv.Set(KeyDarkMode, "true"))
	require.NoError(t, kv.Set(KeyCategories, `["Only"]`))
	require.NoError(t, kv.Set(KeySoundEnabled, "maybe"))

	core, logs := observer.New(zapcore.WarnLevel)
	s := Open(kv, WithLogger(zap.New(core).Sugar()))

	assert.Empty(t, s.Tasks())
	assert.Equal(t, 0, s.Streak())
	assert.True(t, s.DarkMode())
	assert.True(t, s.SoundEnabled())
	assert.Equal(t, []string{"Only"}, s.Categories())
	assert.Equal(t, 3, logs.Len())
}

func TestLoad_NormalizesRecords(t *testing.T) {
	kv := db.NewMemoryKV()
	raw := `[{"id":7,"text":"x","completed":false,"completedAt":"2026-10-19T09:00:00Z","priority":"medium","category":"Work"}]`
	require.NoError(t, kv.Set(KeyTasks, raw))

	s := Open(kv, WithLogger(zap.NewNop().Sugar()))
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].CompletedAt)
	assert.Equal(t, models.PriorityNormal, tasks[0].Priority)
	assert.Equal(t, uint(8), s.Add("y", models.PriorityNormal, "Work", nil).Task.ID)
}

func TestLoad_CompletedWithoutTimestamp(t *testing.T) {
	kv := db.NewMemoryKV()
	raw := `[{"id":3,"text":"x","completed":true,"completedAt":null,"createdAt":"2026-10-18T08:00:00Z","priority":"low","category":"Work"}]`
	require.NoError(t, kv.Set(KeyTasks, raw))

	s := Open(kv, WithLogger(zap.NewNop().Sugar()))
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC), tasks[0].CompletedAt.UTC())
}

func TestAchievements_CountEverythingEverCreated(t *testing.T) {
	s, kv, clk := newTestStore(t)

	var unlocked []string
	for i, category := range []string{"Work", "Errands", "Garden", "Reading", "Music"} {
		due := clk.Now().Add(time.Duration(i+1) * time.Hour)
		ch := s.Add("task", models.PriorityNormal, category, &due)
		for _, u := range ch.Unlocked {
			unlocked = append(unlocked, u.ID)
		}
		s.Delete(ch.Task.ID)
	}
	assert.Empty(t, s.Tasks())
	assert.ElementsMatch(t, []string{"category_explorer", "reminder_pro"}, unlocked)

	r := Open(kv, WithClock(clk), WithLogger(zap.NewNop().Sugar()))
	usage := r.Snapshot().Usage
	assert.Len(t, usage.Categories, 5)
	assert.Len(t, usage.DueTaskIDs, 5)
	assert.Equal(t, uint(6), r.Add("next", models.PriorityNormal, "Work", nil).Task.ID)

	r.Reset()
	assert.Empty(t, r.Snapshot().Usage.Categories)
	assert.Empty(t, r.Snapshot().Usage.DueTaskIDs)
	_, ok, _ := kv.Get(KeyUsage)
	assert.False(t, ok)
}

func TestAchievements_DueDateAddedLaterCounts(t *testing.T) {
	s, _, clk := newTestStore(t)
	for i := 0; i < 4; i++ {
		due := clk.Now().Add(time.Hour)
		s.Add("with due", models.PriorityNormal, "Work", &due)
	}
	plain := s.Add("plain", models.PriorityNormal, "Work", nil)
	assert.Empty(t, plain.Unlocked)

	due := clk.Now().Add(2 * time.Hour)
	ch := s.SetDue(plain.Task.ID, &due)
	require.Len(t, ch.Unlocked, 1)
	assert.Equal(t, "reminder_pro", ch.Unlocked[0].ID)

	// moving the same task's due date again does not count twice
	s.SetDue(plain.Task.ID, nil)
	s.SetDue(plain.Task.ID, &due)
	assert.Len(t, s.Snapshot().Usage.DueTaskIDs, 5)
}

type failingKV struct{ *db.MemoryKV }

func (failingKV) Set(string, string) error { return errors.New("disk full") }

func TestPersistFailureIsLoggedAndSwallowed(t *testing.T) {
	kv := failingKV{db.NewMemoryKV()}
	core, logs := observer.New(zapcore.ErrorLevel)
	s := Open(kv, WithLogger(zap.New(core).Sugar()))

	ch := s.Add("a", models.PriorityNormal, "Work", nil)
	require.True(t, ch.Changed)
	assert.Len(t, s.Tasks(), 1)
	assert.Greater(t, logs.FilterMessage("failed to persist").Len(), 0)
}
