package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateTimeRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ @T](\d{1,2}):(\d{2}))?$`)
	isoRegex      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[ T@](\d{1,2}):(\d{2}))?$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(m|min|mins|minute|minutes|h|hr|hrs|hour|hours|d|day|days|w|week|weeks)$`)
)

// ParseDueDate parses a due date/time relative to the current time.
// See ParseDueDateAt for the accepted formats.
func ParseDueDate(input string) (*time.Time, error) {
	return ParseDueDateAt(input, time.Now())
}

// ParseDueDateAt parses a due date/time relative to now.
// Supported formats:
// - dd/mm/yyyy, dd/mm/yyyy hh:mm, dd/mm/yyyy@hh:mm (e.g., "15/12/2026@14:30")
// - yyyy-mm-dd, yyyy-mm-ddThh:mm
// - X minutes/hours (e.g., "30 minutes", "30m", "2h")
// - X days/weeks (e.g., "3 days", "1w"), due at the end of the target day
//
// A date without a time is due at 23:59.
func ParseDueDateAt(input string, now time.Time) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	if m := dateTimeRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[3], m[2], m[1], m[4], m[5], now.Location())
	}
	if m := isoRegex.FindStringSubmatch(input); m != nil {
		return buildDate(m[1], m[2], m[3], m[4], m[5], now.Location())
	}
	if dueDate, err := parseRelativeTime(input, now); err == nil {
		return dueDate, nil
	} else if relativeRegex.MatchString(strings.ToLower(input)) {
		return nil, err
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy[ hh:mm], X minutes, X hours, X days or X weeks")
}

func buildDate(yearStr, monthStr, dayStr, hourStr, minuteStr string, loc *time.Location) (*time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	day, _ := strconv.Atoi(dayStr)

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2000 and 2100")
	}

	hour, minute := 23, 59
	if hourStr != "" {
		hour, _ = strconv.Atoi(hourStr)
		minute, _ = strconv.Atoi(minuteStr)
		if hour > 23 || minute > 59 {
			return nil, fmt.Errorf("invalid time %s:%s", hourStr, minuteStr)
		}
	}

	dueDate := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date normalizes 31/02 into March
	if dueDate.Day() != day || dueDate.Month() != time.Month(month) {
		return nil, fmt.Errorf("invalid date")
	}
	return &dueDate, nil
}

// parseRelativeTime parses "30m", "2 hours", "3 days", "1w" and the like
func parseRelativeTime(input string, now time.Time) (*time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return nil, fmt.Errorf("amount must be a positive number")
	}

	endOfDay := func(days int) *time.Time {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		d := today.AddDate(0, 0, days).Add(23*time.Hour + 59*time.Minute)
		return &d
	}

	switch matches[2] {
	case "m", "min", "mins", "minute", "minutes":
		if amount > 525600 {
			return nil, fmt.Errorf("minutes must be between 1 and 525600")
		}
		d := now.Add(time.Duration(amount) * time.Minute)
		return &d, nil
	case "h", "hr", "hrs", "hour", "hours":
		if amount > 8760 {
			return nil, fmt.Errorf("hours must be between 1 and 8760")
		}
		d := now.Add(time.Duration(amount) * time.Hour)
		return &d, nil
	case "d", "day", "days":
		if amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		return endOfDay(amount), nil
	default:
		if amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		return endOfDay(amount * 7), nil
	}
}

// FormatDueDate renders a due date relative to now for list and board views
func FormatDueDate(dueDate *time.Time, now time.Time) string {
	if dueDate == nil {
		return ""
	}

	clock := dueDate.Format("15:04")
	left := dueDate.Sub(now)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, now.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	switch {
	case left < 0:
		return fmt.Sprintf("⚠️ OVERDUE (%s %s)", dueDate.Format("02/01"), clock)
	case left < time.Hour:
		return fmt.Sprintf("⏰ Due in %dm", int(left.Minutes()))
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Due today %s", clock)
	case daysDiff == 1:
		return fmt.Sprintf("📅 Due tomorrow %s", clock)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 Due %s %s (in %d days)", dueDate.Format("02/01/2006"), clock, daysDiff)
	default:
		return fmt.Sprintf("📅 Due %s %s", dueDate.Format("02/01/2006"), clock)
	}
}
