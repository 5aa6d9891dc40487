package todo

import (
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/db"
	"github.com/balkashynov/taskflow/internal/logging"
	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/view"
)

// StreakMilestone is how often, in days, a streak is worth celebrating
const StreakMilestone = 7

// Change describes what a store operation did.
// Changed is false when the operation was a silent no-op.
type Change struct {
	Changed      bool
	Task         *models.Task
	Unlocked     []models.UnlockedAchievement
	StreakBumped bool
	Streak       int
}

// Milestone reports whether this change bumped the streak onto a multiple
// of StreakMilestone
func (c Change) Milestone() bool {
	return c.StreakBumped && c.Streak > 0 && c.Streak%StreakMilestone == 0
}

// Store owns the live task sequence and mirrors it, with the rest of the
// user state, to a KV on every mutation. It is safe for concurrent use;
// each method runs to completion before another starts.
type Store struct {
	mu    sync.Mutex
	kv    db.KV
	clock clock.Clock
	log   *zap.SugaredLogger

	tasks          []models.Task
	nextID         uint
	achievements   []models.UnlockedAchievement
	streak         int
	lastCompletion string
	darkMode       bool
	soundEnabled   bool
	categories     []string
	usage          models.Usage

	history *History
}

// Option configures a Store
type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = l }
}

// Open loads persisted state from kv, falling back per key to defaults
func Open(kv db.KV, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		clock:   clock.RealClock{},
		nextID:  1,
		history: NewHistory(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Component("store")
	}
	s.setDefaults()
	s.load()
	s.history.Record(s.tasks)
	return s
}

func (s *Store) setDefaults() {
	s.tasks = nil
	s.achievements = nil
	s.streak = 0
	s.lastCompletion = ""
	s.darkMode = false
	s.soundEnabled = true
	s.categories = slices.Clone(models.DefaultCategories)
	s.usage = models.Usage{}
}

// Add appends a new task. Empty text (after trimming) is a no-op.
func (s *Store) Add(text string, priority models.Priority, category string, due *time.Time) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return Change{}
	}
	if p, ok := models.ParsePriority(string(priority)); ok {
		priority = p
	} else {
		priority = models.PriorityNormal
	}
	category = strings.TrimSpace(category)
	if category == "" || category == models.AllCategories {
		category = models.DefaultCategory
	}

	task := models.Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: s.clock.Now(),
		Priority:  priority,
		Category:  category,
	}
	if due != nil {
		d := *due
		task.DueDateTime = &d
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	ch := s.commit(true)
	ch.Task = s.taskCopy(task.ID)
	return ch
}

// Toggle flips completion. The first completion of a calendar day bumps
// the streak; un-completing never touches it.
func (s *Store) Toggle(id uint) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}

	now := s.clock.Now()
	t := &s.tasks[i]
	t.Completed = !t.Completed
	bumped := false
	if t.Completed {
		t.CompletedAt = &now
		today := now.Format(dateLayout)
		if s.lastCompletion != today {
			s.streak++
			s.lastCompletion = today
			bumped = true
		}
	} else {
		t.CompletedAt = nil
	}

	ch := s.commit(true)
	ch.Task = s.taskCopy(id)
	ch.StreakBumped = bumped
	return ch
}

// Edit replaces the task text. Empty text (after trimming) is a no-op.
func (s *Store) Edit(id uint, text string) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	i := s.indexOf(id)
	if text == "" || i < 0 {
		return Change{}
	}
	s.tasks[i].Text = text

	ch := s.commit(true)
	ch.Task = s.taskCopy(id)
	return ch
}

// SetDue replaces the due date (nil clears it) and re-arms the reminder
func (s *Store) SetDue(id uint, due *time.Time) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}
	if due != nil {
		d := *due
		s.tasks[i].DueDateTime = &d
	} else {
		s.tasks[i].DueDateTime = nil
	}
	s.tasks[i].ReminderShown = false

	ch := s.commit(true)
	ch.Task = s.taskCopy(id)
	return ch
}

// Delete removes a task; missing ids are a no-op
func (s *Store) Delete(id uint) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Change{}
	}
	removed := s.tasks[i].Clone()
	s.tasks = slices.Delete(s.tasks, i, i+1)

	ch := s.commit(true)
	ch.Task = &removed
	return ch
}

// ClearCompleted removes every completed task
func (s *Store) ClearCompleted() Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool { return t.Completed })
	return s.commit(true)
}

// Reset wipes tasks, achievements, streak, usage, history and settings, and
// removes every persisted key.
func (s *Store) Reset() Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setDefaults()
	s.history.Clear()
	s.history.Record(s.tasks)
	for _, key := range AllKeys {
		if err := s.kv.Delete(key); err != nil {
			s.log.Errorw("failed to remove persisted value", "key", key, "error", err)
		}
	}
	return Change{Changed: true}
}

// Undo restores the previous snapshot
func (s *Store) Undo() Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.history.Undo()
	if !ok {
		return Change{}
	}
	s.tasks = snapshot
	return s.commit(false)
}

// Redo re-applies the next snapshot
func (s *Store) Redo() Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.history.Redo()
	if !ok {
		return Change{}
	}
	s.tasks = snapshot
	return s.commit(false)
}

// commit runs the post-mutation pipeline: history, usage, achievements,
// persistence. Caller holds s.mu.
func (s *Store) commit(record bool) Change {
	if record {
		s.history.Record(s.tasks)
	}
	s.usage.Observe(s.tasks)
	unlocked := s.evaluate()
	s.persist()
	return Change{Changed: true, Unlocked: unlocked, Streak: s.streak}
}

func (s *Store) evaluate() []models.UnlockedAchievement {
	fresh := view.EvaluateAchievements(view.Progress{Tasks: s.tasks, Usage: s.usage}, s.achievements, s.clock.Now())
	if len(fresh) > 0 {
		s.achievements = append(s.achievements, fresh...)
		for _, a := range fresh {
			s.log.Infow("achievement unlocked", "id", a.ID)
		}
	}
	return fresh
}

func (s *Store) indexOf(id uint) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *Store) taskCopy(id uint) *models.Task {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	c := s.tasks[i].Clone()
	return &c
}
