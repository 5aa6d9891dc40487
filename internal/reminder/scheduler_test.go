package reminder

import (
	"bytes"
	"context"
	"errors"
	"sync"
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
	"github.com/balkashynov/taskflow/internal/todo"
)

var start = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// fakeTone records calls and fails the test on a double start
type fakeTone struct {
	t        *testing.T
	mu       sync.Mutex
	on       bool
	starts   int
	stops    int
	startErr error
	stopErr  error
}

func (f *fakeTone) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.on {
		f.t.Errorf("tone started while already on")
	}
	f.starts++
	if f.startErr != nil {
		return f.startErr
	}
	f.on = true
	return nil
}

func (f *fakeTone) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	f.on = false
	return f.stopErr
}

func (f *fakeTone) isOn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

type fixture struct {
	store *todo.Store
	clk   *clock.FakeClock
	tone  *fakeTone
	sched *Scheduler
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	clk := clock.NewFakeClock(start)
	store := todo.Open(db.NewMemoryKV(), todo.WithClock(clk), todo.WithLogger(zap.NewNop().Sugar()))
	tone := &fakeTone{t: t}
	opts = append([]Option{WithClock(clk), WithLogger(zap.NewNop().Sugar())}, opts...)
	return &fixture{store: store, clk: clk, tone: tone, sched: New(store, tone, opts...)}
}

func (f *fixture) addDue(text string, in time.Duration) uint {
	due := f.clk.Now().Add(in)
	return f.store.Add(text, models.PriorityNormal, "Work", &due).Task.ID
}

func TestIsDue(t *testing.T) {
	due := start
	base := models.Task{ID: 1, DueDateTime: &due}
	tests := []struct {
		name string
		task models.Task
		now  time.Time
		want bool
	}{
		{"no due date", models.Task{ID: 1}, start, false},
		{"too early", base, start.Add(-61 * time.Second), false},
		{"window opens", base, start.Add(-60 * time.Second), true},
		{"inside window", base, start.Add(-30 * time.Second), true},
		{"at due time", base, start, true},
		{"past due", base, start.Add(time.Second), false},
		{"completed", func() models.Task { c := base; c.Completed = true; return c }(), start, false},
		{"already shown", func() models.Task { c := base; c.ReminderShown = true; return c }(), start, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDue(tt.task, tt.now, time.Minute))
		})
	}
}

func TestReminderLifecycle_SnoozeReturnsToPending(t *testing.T) {
	f := newFixture(t)
	id := f.addDue("Stand-up", 90*time.Second)

	// PENDING
	_, raised := f.sched.Poll()
	assert.False(t, raised)

	// DUE: 30s before the due time
	f.clk.Advance(60 * time.Second)
	r, raised := f.sched.Poll()
	require.True(t, raised)
	assert.Equal(t, id, r.Task.ID)
	assert.True(t, r.Task.ReminderShown)
	assert.True(t, f.tone.isOn())

	got, _ := f.store.Task(id)
	assert.True(t, got.ReminderShown)
	active, ok := f.sched.Active()
	require.True(t, ok)
	assert.Equal(t, id, active.ID)

	// the next poll never re-triggers
	_, raised = f.sched.Poll()
	assert.False(t, raised)

	oldDue := *got.DueDateTime
	snoozed, ok := f.sched.Snooze(id, 5)
	require.True(t, ok)
	assert.Equal(t, oldDue.Add(5*time.Minute), *snoozed.DueDateTime)
	assert.False(t, snoozed.ReminderShown)
	assert.False(t, f.tone.isOn())
	_, ok = f.sched.Active()
	assert.False(t, ok)

	// PENDING again until the new window opens
	_, raised = f.sched.Poll()
	assert.False(t, raised)
	f.clk.Advance(5 * time.Minute)
	_, raised = f.sched.Poll()
	assert.True(t, raised)
}

func TestDismissKeepsReminderSilenced(t *testing.T) {
	f := newFixture(t)
	id := f.addDue("Call", 10*time.Second)

	_, raised := f.sched.Poll()
	require.True(t, raised)
	require.True(t, f.sched.Dismiss(id))
	assert.False(t, f.tone.isOn())

	f.clk.Advance(5 * time.Second)
	_, raised = f.sched.Poll()
	assert.False(t, raised)
	got, _ := f.store.Task(id)
	assert.True(t, got.ReminderShown)
}

func TestOneReminderAtATime(t *testing.T) {
	f := newFixture(t)
	first := f.addDue("first", 20*time.Second)
	second := f.addDue("second", 30*time.Second)

	r, raised := f.sched.Poll()
	require.True(t, raised)
	assert.Equal(t, first, r.Task.ID)

	_, raised = f.sched.Poll()
	assert.False(t, raised)
	got, _ := f.store.Task(second)
	assert.False(t, got.ReminderShown)

	f.sched.Dismiss(first)
	r, raised = f.sched.Poll()
	require.True(t, raised)
	assert.Equal(t, second, r.Task.ID)
	assert.Equal(t, 2, f.tone.starts)
	assert.Equal(t, 1, f.tone.stops)
}

func TestCompletedTasksNeverRemind(t *testing.T) {
	f := newFixture(t)
	id := f.addDue("done already", 10*time.Second)
	f.store.Toggle(id)

	_, raised := f.sched.Poll()
	assert.False(t, raised)
}

func TestSoundDisabled_NoTone(t *testing.T) {
	f := newFixture(t)
	f.store.SetSoundEnabled(false)
	f.addDue("quiet", 10*time.Second)

	_, raised := f.sched.Poll()
	require.True(t, raised)
	assert.Equal(t, 0, f.tone.starts)
}

func TestToneFailuresAreLoggedAndSwallowed(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(t, WithLogger(zap.New(core).Sugar()))
	f.tone.startErr = errors.New("no audio device")
	id := f.addDue("loud", 10*time.Second)

	_, raised := f.sched.Poll()
	require.True(t, raised, "reminder is still shown without sound")
	assert.Equal(t, 1, logs.FilterMessage("failed to start alert tone").Len())

	// a failed start is not held, so dismiss does not try to stop it
	f.sched.Dismiss(id)
	assert.Equal(t, 0, f.tone.stops)
}

func TestToneStopFailureStillCountsAsStopped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(t, WithLogger(zap.New(core).Sugar()))
	f.tone.stopErr = errors.New("device gone")
	a := f.addDue("a", 10*time.Second)
	f.addDue("b", 20*time.Second)

	f.sched.Poll()
	f.sched.Dismiss(a)
	assert.Equal(t, 1, logs.FilterMessage("failed to stop alert tone").Len())

	_, raised := f.sched.Poll()
	require.True(t, raised)
	assert.Equal(t, 2, f.tone.starts)
}

func TestSnoozeWithoutDueDate(t *testing.T) {
	f := newFixture(t)
	id := f.store.Add("no due", models.PriorityNormal, "Work", nil).Task.ID
	_, ok := f.sched.Snooze(id, 5)
	assert.False(t, ok)
	_, ok = f.sched.Snooze(999, 5)
	assert.False(t, ok)
}

func TestStartStop(t *testing.T) {
	f := newFixture(t, WithInterval(5*time.Millisecond))
	id := f.addDue("soon", 2*time.Minute)

	require.NoError(t, f.sched.Start(context.Background()))
	assert.Error(t, f.sched.Start(context.Background()))

	f.clk.Advance(90 * time.Second)
	select {
	case r := <-f.sched.Reminders():
		assert.Equal(t, id, r.Task.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no reminder raised")
	}
	assert.True(t, f.tone.isOn())

	f.sched.Stop()
	f.sched.Stop()
	assert.False(t, f.tone.isOn())
	_, ok := f.sched.Active()
	assert.False(t, ok)

	// restartable after Stop
	require.NoError(t, f.sched.Start(context.Background()))
	f.sched.Stop()
}

func TestStart_ContextCancelEndsLoop(t *testing.T) {
	f := newFixture(t, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, f.sched.Start(ctx))
	cancel()
	f.sched.Stop()
}

func TestBell(t *testing.T) {
	var buf syncBuffer
	b := NewBell(&buf, 5*time.Millisecond)

	require.NoError(t, b.Start())
	assert.True(t, b.Ringing())
	assert.Error(t, b.Start())

	require.Eventually(t, func() bool { return buf.count() >= 2 }, time.Second, time.Millisecond)
	require.NoError(t, b.Stop())
	assert.False(t, b.Ringing())
	require.NoError(t, b.Stop())

	n := buf.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, buf.count())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Count(s.buf.Bytes(), []byte("\a"))
}

func TestChime(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Chime(&buf))
	assert.Equal(t, "\a", buf.String())
}
