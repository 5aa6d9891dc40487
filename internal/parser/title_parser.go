package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/taskflow/internal/models"
)

var (
	categoryRegex = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_-]+)`)
	priorityRegex = regexp.MustCompile(`(?:^|\s)\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`(?:^|\s)due:(\S+)`)
)

// ParsedTask represents a task parsed from smart title syntax
type ParsedTask struct {
	Text     string
	Category string
	Priority models.Priority
	DueDate  *time.Time
	Errors   []string
}

// ParseTitle extracts metadata from a task title relative to now.
// Syntax: "Task text #Category +priority due:30m"
// Unknown fields are left zero so the caller can fill in defaults.
func ParseTitle(input string, now time.Time) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	// Category (#Work); the last one wins
	if matches := categoryRegex.FindAllStringSubmatch(input, -1); len(matches) > 0 {
		result.Category = matches[len(matches)-1][1]
		input = categoryRegex.ReplaceAllString(input, " ")
	}

	// Priority (+high, +3, +low)
	if m := priorityRegex.FindStringSubmatch(input); m != nil {
		if p, ok := models.ParsePriority(m[1]); ok {
			result.Priority = p
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+m[1]+"'. Use: low, normal, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, " ")
	}

	// Due date (due:30m, due:15/12/2026@14:30)
	if m := dueRegex.FindStringSubmatch(input); m != nil {
		dueDate, err := ParseDueDateAt(m[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.DueDate = dueDate
		}
		input = dueRegex.ReplaceAllString(input, " ")
	}

	result.Text = strings.Join(strings.Fields(input), " ")
	return result
}
