package todo

import (
	"slices"
	"strings"

	"github.com/balkashynov/taskflow/internal/models"
)

// State is a read-only copy of everything the store persists
type State struct {
	Tasks          []models.Task                `json:"tasks" yaml:"tasks"`
	Achievements   []models.UnlockedAchievement `json:"achievements" yaml:"achievements"`
	Streak         int                          `json:"streak" yaml:"streak"`
	LastCompletion string                       `json:"lastCompletion,omitempty" yaml:"lastCompletion,omitempty"`
	DarkMode       bool                         `json:"darkMode" yaml:"darkMode"`
	SoundEnabled   bool                         `json:"soundEnabled" yaml:"soundEnabled"`
	Categories     []string                     `json:"categories" yaml:"categories"`
	Usage          models.Usage                 `json:"usage" yaml:"usage"`
}

// Snapshot copies the whole persisted state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Tasks:          models.CloneTasks(s.tasksOrEmpty()),
		Achievements:   slices.Clone(s.achievements),
		Streak:         s.streak,
		LastCompletion: s.lastCompletion,
		DarkMode:       s.darkMode,
		SoundEnabled:   s.soundEnabled,
		Categories:     slices.Clone(s.categories),
		Usage:          s.usage.Clone(),
	}
}

// Tasks returns a copy of the live sequence
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneTasks(s.tasksOrEmpty())
}

// Task looks up one task by id
func (s *Store) Task(id uint) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.taskCopy(id); t != nil {
		return *t, true
	}
	return models.Task{}, false
}

func (s *Store) Achievements() []models.UnlockedAchievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.achievements)
}

func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

func (s *Store) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.soundEnabled
}

func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

func (s *Store) SetDarkMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = on
	s.persist()
}

func (s *Store) SetSoundEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.soundEnabled = on
	s.persist()
}

// AddCategory adds a managed category. Blank or duplicate names are ignored.
func (s *Store) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || name == models.AllCategories || slices.Contains(s.categories, name) {
		return false
	}
	s.categories = append(s.categories, name)
	s.persist()
	return true
}

// RemoveCategory drops a managed category. Tasks keep their category text.
func (s *Store) RemoveCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.categories, name)
	if i < 0 {
		return false
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	s.persist()
	return true
}
