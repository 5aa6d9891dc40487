package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/parser"
	"github.com/balkashynov/taskflow/internal/todo"
)

// InputKind is what an InputModel submits
type InputKind int

const (
	InputAdd InputKind = iota
	InputEdit
)

// InputModel is a single-line task editor with smart syntax preview.
// It runs embedded in the board or as its own program.
type InputModel struct {
	kind   InputKind
	taskID uint
	input  textinput.Model
	theme  Theme
	now    func() time.Time
	width  int

	parsed        parser.ParsedTask
	validationErr string

	submitted  bool
	cancelled  bool
	standalone bool
}

// NewAddInput creates an editor for a new task, pre-filled with text
func NewAddInput(text string, theme Theme, now func() time.Time) InputModel {
	m := newInput(InputAdd, theme, now)
	m.input.Placeholder = "Buy milk #Shopping +high due:30m"
	m.input.SetValue(text)
	m.reparse()
	return m
}

// NewEditInput creates an editor for an existing task's text.
// A due: token in the new text moves the due date.
func NewEditInput(task models.Task, theme Theme, now func() time.Time) InputModel {
	m := newInput(InputEdit, theme, now)
	m.taskID = task.ID
	m.input.Placeholder = "New text (due:2h to move the due date)"
	m.input.SetValue(task.Text)
	m.reparse()
	return m
}

func newInput(kind InputKind, theme Theme, now func() time.Time) InputModel {
	ti := textinput.New()
	ti.Width = 60
	ti.CharLimit = 200
	ti.Focus()
	ti.TextStyle = theme.fg(theme.PrimaryText)
	ti.PlaceholderStyle = theme.fg(theme.Placeholder)
	ti.Cursor.Style = theme.fg(theme.AccentBright)
	return InputModel{kind: kind, input: ti, theme: theme, now: now}
}

func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	return m, cmd
}

func (m InputModel) update(msg tea.Msg) (InputModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = min(60, max(20, msg.Width-10))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, m.quit()
		case "enter":
			m.reparse()
			if m.parsed.Text == "" {
				m.validationErr = "Task text is required"
				return m, nil
			}
			if len(m.parsed.Errors) > 0 {
				m.validationErr = strings.Join(m.parsed.Errors, "; ")
				return m, nil
			}
			m.submitted = true
			return m, m.quit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m InputModel) quit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

func (m *InputModel) reparse() {
	m.parsed = parser.ParseTitle(m.input.Value(), m.now())
	m.validationErr = ""
}

// Done reports whether the user submitted or cancelled
func (m InputModel) Done() bool {
	return m.submitted || m.cancelled
}

// Apply writes a submitted input to the store and describes the result
func (m InputModel) Apply(s *todo.Store) (todo.Change, string) {
	if !m.submitted {
		return todo.Change{}, ""
	}
	p := m.parsed
	switch m.kind {
	case InputEdit:
		ch := s.Edit(m.taskID, p.Text)
		if p.DueDate != nil {
			due := s.SetDue(m.taskID, p.DueDate)
			ch.Unlocked = append(ch.Unlocked, due.Unlocked...)
			ch.Changed = ch.Changed || due.Changed
		}
		if !ch.Changed {
			return ch, ""
		}
		return ch, fmt.Sprintf("✏️  Updated task #%d", m.taskID)
	default:
		ch := s.Add(p.Text, p.Priority, p.Category, p.DueDate)
		if !ch.Changed {
			return ch, ""
		}
		return ch, fmt.Sprintf("✅ Added task #%d: %s", ch.Task.ID, ch.Task.Text)
	}
}

func (m InputModel) View() string {
	title := "➕ New task"
	if m.kind == InputEdit {
		title = fmt.Sprintf("✏️  Edit task #%d", m.taskID)
	}

	var b strings.Builder
	b.WriteString(m.theme.fg(m.theme.AccentBright).Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	if m.validationErr != "" {
		b.WriteString(m.theme.fg(m.theme.Error).Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.fg(m.theme.HelpText).Italic(true).Render("#Category · +priority · due:30m | enter save · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.AccentMain)).
		Padding(1, 2).
		Render(b.String())
}

// renderPreview shows what the smart syntax resolved to
func (m InputModel) renderPreview() string {
	label := m.theme.fg(m.theme.SecondaryText)
	value := m.theme.fg(m.theme.PrimaryText)
	none := m.theme.fg(m.theme.DisabledText)

	field := func(name, v, fallback string) string {
		if v == "" {
			return label.Render(name+": ") + none.Render(fallback)
		}
		return label.Render(name+": ") + value.Render(v)
	}

	due := ""
	if m.parsed.DueDate != nil {
		due = parser.FormatDueDate(m.parsed.DueDate, m.now())
	}
	if m.kind == InputEdit {
		return field("Due", due, "unchanged")
	}
	return strings.Join([]string{
		field("Category", m.parsed.Category, models.DefaultCategory),
		field("Priority", string(m.parsed.Priority), string(models.PriorityNormal)),
		field("Due", due, "none"),
	}, "  ·  ")
}
