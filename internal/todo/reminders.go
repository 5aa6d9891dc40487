package todo

import (
	"time"

	"github.com/balkashynov/taskflow/internal/models"
)

// ClaimReminder finds the first task, in store order, for which due
// reports true, flags its reminder as shown and returns it. The scan and
// the flag happen under one lock so a concurrent edit cannot slip between.
func (s *Store) ClaimReminder(due func(models.Task) bool) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if due(s.tasks[i]) {
			s.tasks[i].ReminderShown = true
			s.persist()
			return s.tasks[i].Clone(), true
		}
	}
	return models.Task{}, false
}

// MarkReminderShown keeps the reminder silenced for the current due date
func (s *Store) MarkReminderShown(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].ReminderShown = true
	s.persist()
	return true
}

// Snooze pushes the due date back by d and re-arms the reminder.
// Tasks without a due date are left alone.
func (s *Store) Snooze(id uint, d time.Duration) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.tasks[i].DueDateTime == nil {
		return models.Task{}, false
	}
	due := s.tasks[i].DueDateTime.Add(d)
	s.tasks[i].DueDateTime = &due
	s.tasks[i].ReminderShown = false
	s.persist()
	return s.tasks[i].Clone(), true
}
