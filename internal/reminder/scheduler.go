package reminder

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/logging"
	"github.com/balkashynov/taskflow/internal/models"
)

const (
	DefaultInterval = 10 * time.Second
	DefaultLeadTime = time.Minute
)

// SnoozeChoices are the snooze lengths offered to the user, in minutes
var SnoozeChoices = []int{5, 10, 15, 30}

// Source is the task state the scheduler reads and flags
type Source interface {
	ClaimReminder(due func(models.Task) bool) (models.Task, bool)
	Snooze(id uint, d time.Duration) (models.Task, bool)
	MarkReminderShown(id uint) bool
	SoundEnabled() bool
}

// Reminder is raised when a task enters its due window
type Reminder struct {
	Task     models.Task
	RaisedAt time.Time
}

// IsDue reports whether t should raise a reminder at now: it has a due
// date, is not completed, has not been shown, and now lies within
// [due-lead, due].
func IsDue(t models.Task, now time.Time, lead time.Duration) bool {
	if t.DueDateTime == nil || t.Completed || t.ReminderShown {
		return false
	}
	due := *t.DueDateTime
	return !now.Before(due.Add(-lead)) && !now.After(due)
}

// Scheduler polls a Source on a fixed interval and raises at most one
// reminder at a time, holding the alert tone while it is active.
type Scheduler struct {
	src      Source
	tone     Tone
	clock    clock.Clock
	interval time.Duration
	lead     time.Duration
	log      *zap.SugaredLogger

	mu      sync.Mutex
	active  *models.Task
	ringing bool
	events  chan Reminder
	cancel  context.CancelFunc
	done    chan struct{}
}

// Option configures a Scheduler
type Option func(*Scheduler)

func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithLeadTime(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.lead = d
		}
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Scheduler) { s.log = l }
}

func New(src Source, tone Tone, opts ...Option) *Scheduler {
	if tone == nil {
		tone = Silent{}
	}
	s := &Scheduler{
		src:      src,
		tone:     tone,
		clock:    clock.RealClock{},
		interval: DefaultInterval,
		lead:     DefaultLeadTime,
		events:   make(chan Reminder, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Component("reminder")
	}
	return s
}

// Reminders delivers each reminder as it becomes active
func (s *Scheduler) Reminders() <-chan Reminder {
	return s.events
}

// Active returns the reminder currently on screen, if any
func (s *Scheduler) Active() (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return models.Task{}, false
	}
	return s.active.Clone(), true
}

// Poll runs one scan. If no reminder is active, the first due task is
// flagged as shown, becomes active and starts the tone. Other due tasks
// wait for a later poll.
func (s *Scheduler) Poll() (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return Reminder{}, false
	}

	now := s.clock.Now()
	task, ok := s.src.ClaimReminder(func(t models.Task) bool {
		return IsDue(t, now, s.lead)
	})
	if !ok {
		return Reminder{}, false
	}

	s.active = &task
	if s.src.SoundEnabled() {
		s.startTone()
	}
	s.log.Infow("reminder raised", "task", task.ID, "due", task.DueDateTime)

	r := Reminder{Task: task.Clone(), RaisedAt: now}
	select {
	case s.events <- r:
	default:
		s.log.Debugw("reminder listener busy, event dropped", "task", task.ID)
	}
	return r, true
}

// Snooze pushes the task's due date back by minutes, re-arms its reminder,
// silences the tone and dismisses it if it is the active reminder.
func (s *Scheduler) Snooze(id uint, minutes int) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.src.Snooze(id, time.Duration(minutes)*time.Minute)
	s.dismissLocked(id)
	if ok {
		s.log.Infow("reminder snoozed", "task", id, "minutes", minutes)
	}
	return task, ok
}

// Dismiss stops the reminder for the task's current due date for good
func (s *Scheduler) Dismiss(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.src.MarkReminderShown(id)
	s.dismissLocked(id)
	if ok {
		s.log.Infow("reminder stopped", "task", id)
	}
	return ok
}

func (s *Scheduler) dismissLocked(id uint) {
	if s.active != nil && s.active.ID == id {
		s.active = nil
		s.stopTone()
	}
}

// Start launches the poll loop. It polls once immediately, then every
// interval until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return errors.New("scheduler already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go s.run(ctx, done)
	return nil
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Poll()
		}
	}
}

// Stop ends the poll loop, waits for it, silences the tone and drops the
// active reminder. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	s.mu.Lock()
	s.active = nil
	s.stopTone()
	s.mu.Unlock()
}

// startTone never starts a second tone while one is held. Caller holds s.mu.
func (s *Scheduler) startTone() {
	if s.ringing {
		s.stopTone()
	}
	if err := s.tone.Start(); err != nil {
		s.log.Warnw("failed to start alert tone", "error", err)
		return
	}
	s.ringing = true
}

// stopTone always leaves the tone considered stopped. Caller holds s.mu.
func (s *Scheduler) stopTone() {
	if !s.ringing {
		return
	}
	s.ringing = false
	if err := s.tone.Stop(); err != nil {
		s.log.Warnw("failed to stop alert tone", "error", err)
	}
}
