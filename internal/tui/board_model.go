package tui

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/models"
	"github.com/balkashynov/taskflow/internal/parser"
	"github.com/balkashynov/taskflow/internal/reminder"
	"github.com/balkashynov/taskflow/internal/todo"
	"github.com/balkashynov/taskflow/internal/view"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusSearch
	FocusInput
	FocusReminder
)

type shimmerTickMsg struct{}

// refreshTickMsg re-reads the store so due labels stay current
type refreshTickMsg struct{}

type toastExpiredMsg struct{ seq int }

const (
	refreshInterval = 15 * time.Second
	toastDuration   = 4 * time.Second
)

var (
	priorityFilters = []string{models.AllPriorities, string(models.PriorityLow), string(models.PriorityNormal), string(models.PriorityHigh)}
	statusFilters   = []models.StatusFilter{models.StatusAll, models.StatusActive, models.StatusCompleted}
)

// BoardModel is the interactive task board
type BoardModel struct {
	ctx   context.Context
	store *todo.Store
	sched *reminder.Scheduler
	clock clock.Clock
	theme Theme

	width  int
	height int

	all      []models.Task
	tasks    []models.Task // filtered view of all
	filter   view.Filter
	selected int
	perPage  int

	focus     Focus
	prevFocus Focus
	search    textinput.Model
	input     InputModel
	modal     *ReminderModal

	toast    string
	toastSeq int

	shimmer *Shimmer
	chime   io.Writer // nil keeps the board silent
}

// NewBoardModel creates a board over s. sched may be nil to run without
// reminders.
func NewBoardModel(ctx context.Context, s *todo.Store, sched *reminder.Scheduler, clk clock.Clock) BoardModel {
	theme := ThemeFor(s.DarkMode())

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "type to filter"
	search.CharLimit = 100

	m := BoardModel{
		ctx:   ctx,
		store: s,
		sched: sched,
		clock: clk,
		theme: theme,
		filter: view.Filter{
			Category: models.AllCategories,
			Priority: models.AllPriorities,
			Status:   models.StatusAll,
		},
		search:  search,
		shimmer: NewShimmer(DefaultShimmerConfig(), theme),
	}
	m.applyTheme()
	m.reload()
	return m
}

func (m BoardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{refreshTick()}
	if d := m.shimmer.TickInterval(); d > 0 {
		cmds = append(cmds, shimmerTick(d))
	}
	if m.sched != nil {
		cmds = append(cmds, waitForReminder(m.ctx, m.sched.Reminders()))
	}
	return tea.Batch(cmds...)
}

func shimmerTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return shimmerTickMsg{} })
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if d := m.shimmer.TickInterval(); d > 0 && m.focus == FocusTable {
			return m, shimmerTick(d)
		}
		return m, nil

	case refreshTickMsg:
		m.reload()
		return m, refreshTick()

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case reminderMsg:
		m.reload()
		m.modal = newReminderModal(reminder.Reminder(msg))
		if m.focus != FocusReminder {
			m.prevFocus = m.focus
		}
		m.focus = FocusReminder
		return m, tea.Batch(waitForReminder(m.ctx, m.sched.Reminders()), pulseTick())

	case pulseTickMsg:
		if m.modal == nil {
			return m, nil
		}
		m.modal.pulse++
		return m, pulseTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// header(3) + column headers(2) + borders(2) + toast/help(3) + margins
		m.perPage = max(3, m.height-13)
		m.search.Width = max(10, m.width-12)
		m.input, _ = m.input.update(msg)
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case FocusReminder:
			return m.handleReminderKeys(msg)
		case FocusSearch:
			return m.handleSearchKeys(msg)
		case FocusInput:
			return m.handleInputKeys(msg)
		}
		return m.handleTableKeys(msg)
	}

	if m.focus == FocusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		// clear the search first, quit on a second press
		if m.filter.SearchTerm != "" {
			m.filter.SearchTerm = ""
			m.search.SetValue("")
			m.reload()
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "left", "h":
		m.moveSelection(-m.pageSize())
	case "right", "l":
		m.moveSelection(m.pageSize())

	case "/":
		m.focus = FocusSearch
		m.search.SetValue(m.filter.SearchTerm)
		m.shimmer.SetActive(false)
		return m, m.search.Focus()

	case "c":
		options := append([]string{models.AllCategories}, m.store.Categories()...)
		current := m.filter.Category
		if current == "" {
			current = models.AllCategories
		}
		m.filter.Category = cycle(options, current)
		m.reload()
		return m.notify("Category: " + m.filter.Category)
	case "p":
		m.filter.Priority = cycle(priorityFilters, m.filter.Priority)
		m.reload()
		return m.notify("Priority: " + m.filter.Priority)
	case "f":
		m.filter.Status = cycle(statusFilters, m.filter.Status)
		m.reload()
		return m.notify("Status: " + string(m.filter.Status))

	case "a":
		m.input = NewAddInput("", m.theme, m.clock.Now)
		m.input, _ = m.input.update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.focus = FocusInput
		m.shimmer.SetActive(false)
		return m, textinput.Blink
	case "e":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.input = NewEditInput(task, m.theme, m.clock.Now)
		m.input, _ = m.input.update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.focus = FocusInput
		m.shimmer.SetActive(false)
		return m, textinput.Blink

	case " ", "d":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		ch := m.store.Toggle(task.ID)
		status := "↩️  Back to todo"
		if ch.Task != nil && ch.Task.Completed {
			status = "✅ Done"
		}
		return m.applyWithCue(ch, fmt.Sprintf("%s: %s", status, task.Text), ch.Task != nil && ch.Task.Completed)
	case "x":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.apply(m.store.Delete(task.ID), "🗑️  Deleted: "+task.Text)
	case "C":
		before := len(m.all)
		ch := m.store.ClearCompleted()
		m.reload()
		return m.apply(ch, fmt.Sprintf("🧹 Cleared %d completed task(s)", before-len(m.all)))

	case "u":
		ch := m.store.Undo()
		if !ch.Changed {
			return m.notify("Nothing to undo")
		}
		return m.apply(ch, "↶ Undone")
	case "r":
		ch := m.store.Redo()
		if !ch.Changed {
			return m.notify("Nothing to redo")
		}
		return m.apply(ch, "↷ Redone")

	case "s":
		on := !m.store.SoundEnabled()
		m.store.SetSoundEnabled(on)
		if on {
			return m.notify("🔔 Sound on")
		}
		return m.notify("🔕 Sound off")
	case "t":
		m.store.SetDarkMode(!m.store.DarkMode())
		m.theme = ThemeFor(m.store.DarkMode())
		m.applyTheme()
		return m, nil
	}
	return m, nil
}

// handleSearchKeys filters live as the query changes
func (m BoardModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filter.SearchTerm = ""
		m.search.SetValue("")
		m.leaveSearch()
		m.reload()
		return m, m.shimmerCmd()
	case "enter":
		m.leaveSearch()
		return m, m.shimmerCmd()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.SearchTerm = m.search.Value()
	m.reload()
	return m, cmd
}

func (m *BoardModel) leaveSearch() {
	m.focus = FocusTable
	m.search.Blur()
	m.shimmer.SetActive(true)
}

func (m BoardModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	if !m.input.Done() {
		return m, cmd
	}

	m.focus = FocusTable
	m.shimmer.SetActive(true)
	if m.input.cancelled {
		return m, m.shimmerCmd()
	}
	ch, text := m.input.Apply(m.store)
	if ch.Task != nil && m.input.kind == InputAdd {
		m.selectID(ch.Task.ID)
	}
	next, toastCmd := m.applyWithCue(ch, text, m.input.kind == InputAdd)
	return next, tea.Batch(toastCmd, m.shimmerCmd())
}

func (m BoardModel) handleReminderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	id := m.modal.reminder.Task.ID
	switch m.modal.handleKey(msg.String()) {
	case ReminderSnooze:
		minutes := m.modal.SnoozeMinutes()
		m.closeModal()
		if _, ok := m.sched.Snooze(id, minutes); ok {
			m.reload()
			return m.notify(fmt.Sprintf("😴 Snoozed #%d for %d minutes", id, minutes))
		}
		m.reload()
		return m, nil
	case ReminderStop:
		m.closeModal()
		m.sched.Dismiss(id)
		m.reload()
		return m.notify("🔕 Reminder stopped")
	}
	return m, nil
}

func (m *BoardModel) closeModal() {
	m.modal = nil
	m.focus = m.prevFocus
}

// apply refreshes after a store change and announces it. Achievements and
// streak milestones take precedence over the plain message.
func (m BoardModel) apply(ch todo.Change, text string) (tea.Model, tea.Cmd) {
	return m.applyWithCue(ch, text, false)
}

// applyWithCue is apply that also rings once when cue is set (adds and
// completions) or an achievement unlocked
func (m BoardModel) applyWithCue(ch todo.Change, text string, cue bool) (tea.Model, tea.Cmd) {
	m.reload()
	if !ch.Changed {
		return m, nil
	}
	next, cmd := m.notify(toastFor(ch, text))
	return next, tea.Batch(cmd, m.chimeCmd(ch, cue))
}

func (m BoardModel) chimeCmd(ch todo.Change, cue bool) tea.Cmd {
	if m.chime == nil || !(cue || len(ch.Unlocked) > 0) || !m.store.SoundEnabled() {
		return nil
	}
	w := m.chime
	return func() tea.Msg {
		_ = reminder.Chime(w)
		return nil
	}
}

func toastFor(ch todo.Change, text string) string {
	var parts []string
	for _, u := range ch.Unlocked {
		if a, ok := view.Lookup(u.ID); ok {
			text := fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Title)
			if a.Major {
				text = "🎉 " + text + " 🎉"
			}
			parts = append(parts, text)
		}
	}
	if ch.Milestone() {
		parts = append(parts, fmt.Sprintf("🔥 %d day streak!", ch.Streak))
	}
	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, " · ")
}

func (m BoardModel) notify(text string) (tea.Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m BoardModel) shimmerCmd() tea.Cmd {
	if d := m.shimmer.TickInterval(); d > 0 {
		return shimmerTick(d)
	}
	return nil
}

func (m *BoardModel) applyTheme() {
	m.shimmer.SetTheme(m.theme)
	m.search.TextStyle = m.theme.fg(m.theme.PrimaryText)
	m.search.PromptStyle = m.theme.fg(m.theme.AccentBright)
	m.search.PlaceholderStyle = m.theme.fg(m.theme.Placeholder)
}

// reload re-reads the store and re-applies the filter, keeping the
// selected task selected when it is still visible
func (m *BoardModel) reload() {
	var selectedID uint
	if t, ok := m.selectedTask(); ok {
		selectedID = t.ID
	}
	m.all = m.store.Tasks()
	m.tasks = view.FilteredTasks(m.all, m.filter)
	m.selectID(selectedID)
}

func (m *BoardModel) selectID(id uint) {
	if i := slices.IndexFunc(m.tasks, func(t models.Task) bool { return t.ID == id }); i >= 0 {
		m.selected = i
		return
	}
	m.selected = min(m.selected, max(0, len(m.tasks)-1))
}

func (m *BoardModel) moveSelection(delta int) {
	if len(m.tasks) == 0 {
		return
	}
	next := min(max(0, m.selected+delta), len(m.tasks)-1)
	if next != m.selected {
		m.selected = next
		m.shimmer.Reset()
	}
}

func (m BoardModel) selectedTask() (models.Task, bool) {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.selected], true
}

func (m BoardModel) pageSize() int {
	if m.perPage <= 0 {
		return max(1, len(m.tasks))
	}
	return m.perPage
}

func cycle[T comparable](options []T, current T) T {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

// View renders the TUI
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch {
	case m.focus == FocusReminder && m.modal != nil:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.modal.View(m.theme, m.width, m.clock.Now()))
	case m.focus == FocusInput:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.input.View())
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTaskTable(leftWidth),
		" ",
		m.renderTaskDetails(rightWidth),
	)

	var bottom string
	if m.focus == FocusSearch {
		bottom = m.renderSearchBar()
	} else {
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderToast(),
		bottom,
	)
}

func (m BoardModel) renderHeader() string {
	now := m.clock.Now()
	st := view.ComputeStats(m.all, now)

	logo := m.theme.fg(m.theme.AccentMain).Bold(true).Render("taskflow")
	secondary := m.theme.fg(m.theme.SecondaryText)

	filled := st.ProgressPercentage / 10
	bar := m.theme.fg(m.theme.Success).Render(strings.Repeat("█", filled)) +
		m.theme.fg(m.theme.DisabledText).Render(strings.Repeat("░", 10-filled))

	sound := "🔔"
	if !m.store.SoundEnabled() {
		sound = "🔕"
	}
	stats := secondary.Render(fmt.Sprintf("%d/%d done ", st.CompletedCount, st.Total)) + bar +
		secondary.Render(fmt.Sprintf(" %d%%  ·  ⏳ %d upcoming  ·  🔥 %d  ·  🏆 %d/%d  ·  %s",
			st.ProgressPercentage, st.Upcoming, m.store.Streak(),
			len(m.store.Achievements()), len(view.Catalog), sound))

	filters := fmt.Sprintf("Category: %s  │  Priority: %s  │  Status: %s",
		m.filter.Category, m.filter.Priority, m.filter.Status)
	if m.filter.SearchTerm != "" {
		filters += fmt.Sprintf("  │  Search: %q", m.filter.SearchTerm)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		logo+"  "+stats,
		m.theme.fg(m.theme.HelpText).Render(filters),
	)
}

// renderTaskTable renders the left panel with the task table
func (m BoardModel) renderTaskTable(width int) string {
	var b strings.Builder

	if len(m.tasks) == 0 {
		empty := "No tasks yet. Press a to add one."
		if len(m.all) > 0 {
			empty = "No tasks match the current filters."
		}
		b.WriteString(m.theme.fg(m.theme.SecondaryText).Italic(true).Render(empty))
		return m.panel(width, m.theme.Border).Render(b.String())
	}

	idWidth, statusWidth, priorityWidth, dueWidth := 5, 7, 7, 10
	categoryWidth := 10
	textWidth := max(12, width-idWidth-statusWidth-priorityWidth-dueWidth-categoryWidth-10)

	cell := func(w int, s string) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
	}
	row := func(cols ...string) string {
		return strings.Join(cols, " ")
	}

	header := m.theme.fg(m.theme.AccentBright).Bold(true)
	b.WriteString(header.Render(row(
		cell(idWidth, "ID"),
		cell(textWidth, "TASK"),
		cell(categoryWidth, "CATEGORY"),
		cell(priorityWidth, "PRIO"),
		cell(statusWidth, "STATUS"),
		cell(dueWidth, "DUE"),
	)))
	b.WriteString("\n")

	now := m.clock.Now()
	size := m.pageSize()
	page := m.selected / size
	start := page * size
	end := min(start+size, len(m.tasks))

	for i := start; i < end; i++ {
		task := m.tasks[i]
		selected := i == m.selected

		text := truncate(task.Text, textWidth-1)
		textStyle := m.theme.fg(m.theme.PrimaryText)
		if task.Completed {
			textStyle = m.theme.fg(m.theme.DisabledText).Strikethrough(true)
		}
		if selected {
			text = m.shimmer.Render(text)
		} else {
			text = textStyle.Render(text)
		}

		status := m.theme.fg(m.theme.SecondaryText).Render("○ todo")
		if task.Completed {
			status = m.theme.fg(m.theme.Success).Render("✓ done")
		}

		dueText, dueColor := m.shortDue(task, now)
		marker := " "
		if selected {
			marker = m.theme.fg(m.theme.AccentMain).Bold(true).Render("▶")
		}

		b.WriteString(marker + row(
			cell(idWidth-1, fmt.Sprintf("#%d", task.ID)),
			cell(textWidth, text),
			cell(categoryWidth, m.theme.fg(m.theme.AccentBright).Render(truncate(task.Category, categoryWidth-1))),
			cell(priorityWidth, m.priorityStyle(task.Priority).Render(string(task.Priority))),
			cell(statusWidth, status),
			cell(dueWidth, m.theme.fg(dueColor).Render(dueText)),
		))
		b.WriteString("\n")
	}

	if size < len(m.tasks) {
		totalPages := (len(m.tasks) + size - 1) / size
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.HelpText)).
			Align(lipgloss.Center).
			Width(width - 2).
			Render(fmt.Sprintf("Page %d/%d (%d tasks)", page+1, totalPages, len(m.tasks))))
	}

	return m.panel(width, m.theme.Border).Render(strings.TrimRight(b.String(), "\n"))
}

// shortDue is the compact due label for the table column
func (m BoardModel) shortDue(task models.Task, now time.Time) (string, string) {
	if task.DueDateTime == nil {
		return "-", m.theme.DisabledText
	}
	if task.Completed {
		return task.DueDateTime.Format("02/01"), m.theme.DisabledText
	}
	due := *task.DueDateTime
	left := due.Sub(now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location()).Sub(today).Hours() / 24)

	switch {
	case left < 0:
		return "OVERDUE", m.theme.Error
	case left < time.Hour:
		return fmt.Sprintf("in %dm", int(left.Minutes())), m.theme.Error
	case days == 0:
		return due.Format("15:04"), m.theme.Warning
	case days == 1:
		return "TOMORROW", m.theme.Warning
	case days <= 7:
		return fmt.Sprintf("%dd", days), m.theme.AccentBright
	default:
		return due.Format("02/01"), m.theme.SecondaryText
	}
}

func (m BoardModel) priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return m.theme.fg(m.theme.Error).Bold(true)
	case models.PriorityNormal:
		return m.theme.fg(m.theme.Warning)
	default:
		return m.theme.fg(m.theme.SecondaryText)
	}
}

// renderTaskDetails renders the right panel with task details
func (m BoardModel) renderTaskDetails(width int) string {
	task, ok := m.selectedTask()
	if !ok {
		logo := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.AccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width - 2).
			Render("taskflow")
		hint := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.SecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width - 2).
			MarginTop(1).
			Render("Select a task to view details")
		return m.panel(width, m.theme.Border).Render(logo + "\n" + hint)
	}

	now := m.clock.Now()
	label := m.theme.fg(m.theme.SecondaryText)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.theme.PrimaryText)).
		Width(width - 4).
		Render("📋 " + task.Text))
	b.WriteString("\n\n")

	line := func(name, value string) {
		b.WriteString(label.Render(name + ": "))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if task.Completed {
		line("Status", m.theme.fg(m.theme.Success).Bold(true).Render("done"))
	} else {
		line("Status", m.theme.fg(m.theme.SecondaryText).Bold(true).Render("todo"))
	}
	line("Category", m.theme.fg(m.theme.AccentBright).Render(task.Category))
	line("Priority", m.priorityStyle(task.Priority).Render(string(task.Priority)))
	line("Created", task.CreatedAt.Local().Format("02/01/2006 15:04"))
	if task.CompletedAt != nil {
		line("Completed", task.CompletedAt.Local().Format("02/01/2006 15:04"))
	}
	if task.DueDateTime != nil {
		line("Due", m.theme.fg(m.theme.Warning).Render(parser.FormatDueDate(task.DueDateTime, now)))
		state := "armed"
		if task.ReminderShown {
			state = "shown"
		}
		line("Reminder", state)
	}

	return m.panel(width, m.theme.Border).Render(strings.TrimRight(b.String(), "\n"))
}

func (m BoardModel) panel(width int, border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width)
}

func (m BoardModel) renderToast() string {
	if m.toast == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.AccentBright)).
		Bold(true).
		Padding(0, 1).
		Render(m.toast)
}

// renderSearchBar renders the search bar when active
func (m BoardModel) renderSearchBar() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(m.width - 2).
		Render(m.search.View())
}

// renderHelpBar renders the help bar with hotkey hints
func (m BoardModel) renderHelpBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.HelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/↓ nav · ←/→ page · / search · c/p/f filter · a add · e edit · d done · x del · C clear · u/r undo/redo · s sound · t theme · q quit")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(0, n)])
	}
	return string(r[:n-3]) + "..."
}
