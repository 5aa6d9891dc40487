package todo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/balkashynov/taskflow/internal/models"
)

// KeyPrefix namespaces every persisted key
const KeyPrefix = "taskflow_"

const (
	KeyTasks          = KeyPrefix + "tasks"
	KeyDarkMode       = KeyPrefix + "darkMode"
	KeyStreak         = KeyPrefix + "streak"
	KeyAchievements   = KeyPrefix + "achievements"
	KeySoundEnabled   = KeyPrefix + "soundEnabled"
	KeyCategories     = KeyPrefix + "categories"
	KeyLastCompletion = KeyPrefix + "lastCompletion"
	KeyUsage          = KeyPrefix + "usage"
)

// AllKeys lists every key the store owns
var AllKeys = []string{
	KeyTasks, KeyDarkMode, KeyStreak, KeyAchievements,
	KeySoundEnabled, KeyCategories, KeyLastCompletion, KeyUsage,
}

// dateLayout is the calendar-day format used for streak bookkeeping
const dateLayout = "Mon Jan 02 2006"

// load reads each key independently. A missing key keeps the default; an
// unparsable key keeps the default and is logged.
func (s *Store) load() {
	if raw, ok := s.read(KeyTasks); ok {
		var tasks []models.Task
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeyTasks, "error", err)
		} else {
			s.tasks = normalizeLoaded(tasks)
		}
	}

	if raw, ok := s.read(KeyDarkMode); ok {
		if v, err := strconv.ParseBool(raw); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeyDarkMode, "error", err)
		} else {
			s.darkMode = v
		}
	}

	if raw, ok := s.read(KeyStreak); ok {
		if v, err := strconv.Atoi(raw); err != nil || v < 0 {
			s.log.Warnw("invalid persisted value, using default", "key", KeyStreak, "value", raw)
		} else {
			s.streak = v
		}
	}

	if raw, ok := s.read(KeyAchievements); ok {
		var unlocked []models.UnlockedAchievement
		if err := json.Unmarshal([]byte(raw), &unlocked); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeyAchievements, "error", err)
		} else {
			s.achievements = unlocked
		}
	}

	if raw, ok := s.read(KeySoundEnabled); ok {
		if v, err := strconv.ParseBool(raw); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeySoundEnabled, "error", err)
		} else {
			s.soundEnabled = v
		}
	}

	if raw, ok := s.read(KeyCategories); ok {
		var categories []string
		if err := json.Unmarshal([]byte(raw), &categories); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeyCategories, "error", err)
		} else {
			s.categories = categories
		}
	}

	if raw, ok := s.read(KeyLastCompletion); ok {
		s.lastCompletion = raw
	}

	if raw, ok := s.read(KeyUsage); ok {
		var usage models.Usage
		if err := json.Unmarshal([]byte(raw), &usage); err != nil {
			s.log.Warnw("invalid persisted value, using default", "key", KeyUsage, "error", err)
		} else {
			s.usage = usage
		}
	}
	// stores written before usage was tracked start from their live tasks
	s.usage.Observe(s.tasks)

	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	for _, id := range s.usage.DueTaskIDs {
		if id >= s.nextID {
			s.nextID = id + 1
		}
	}
}

func (s *Store) read(key string) (string, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warnw("failed to read persisted value, using default", "key", key, "error", err)
		return "", false
	}
	return raw, ok
}

// persist writes every field. Failures are logged and swallowed; the
// in-memory state stays authoritative.
func (s *Store) persist() {
	tasks, err := json.Marshal(s.tasksOrEmpty())
	if err != nil {
		s.log.Errorw("failed to encode tasks", "error", err)
	} else {
		s.write(KeyTasks, string(tasks))
	}

	achievements := s.achievements
	if achievements == nil {
		achievements = []models.UnlockedAchievement{}
	}
	if b, err := json.Marshal(achievements); err != nil {
		s.log.Errorw("failed to encode achievements", "error", err)
	} else {
		s.write(KeyAchievements, string(b))
	}

	if b, err := json.Marshal(s.categories); err != nil {
		s.log.Errorw("failed to encode categories", "error", err)
	} else {
		s.write(KeyCategories, string(b))
	}

	if b, err := json.Marshal(s.usage); err != nil {
		s.log.Errorw("failed to encode usage", "error", err)
	} else {
		s.write(KeyUsage, string(b))
	}

	s.write(KeyDarkMode, strconv.FormatBool(s.darkMode))
	s.write(KeyStreak, strconv.Itoa(s.streak))
	s.write(KeySoundEnabled, strconv.FormatBool(s.soundEnabled))
	if s.lastCompletion != "" {
		s.write(KeyLastCompletion, s.lastCompletion)
	}
}

func (s *Store) write(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.log.Errorw("failed to persist", "key", key, "error", fmt.Errorf("persist: %w", err))
	}
}

func (s *Store) tasksOrEmpty() []models.Task {
	if s.tasks == nil {
		return []models.Task{}
	}
	return s.tasks
}

// normalizeLoaded repairs records written by older or hand-edited stores.
// CompletedAt is set exactly when Completed is; a completed record with no
// timestamp is taken to have been completed when it was created.
func normalizeLoaded(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case !t.Completed:
			t.CompletedAt = nil
		case t.CompletedAt == nil:
			at := t.CreatedAt
			t.CompletedAt = &at
		}
		t.Priority, _ = models.ParsePriority(string(t.Priority))
		out = append(out, t)
	}
	return out
}
