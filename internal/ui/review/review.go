// Package review is the interactive review screen: it steps generated
// activities through reviewed and approved, and reverts rejects to
// draft, recording every transition.
package review

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/courseforge/internal/buildstate"
	"github.com/meera/courseforge/internal/coursetree"
	"github.com/meera/courseforge/internal/store"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Review  key.Binding
	Approve key.Binding
	Reject  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Review, k.Approve, k.Reject, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Review, k.Approve, k.Reject}, {k.Quit}}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Review:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "mark reviewed")),
	Approve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
	Reject:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "back to draft")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "save & quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))

	stateStyles = map[coursetree.BuildState]lipgloss.Style{
		coursetree.StateDraft:      lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		coursetree.StateGenerating: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		coursetree.StateGenerated:  lipgloss.NewStyle().Foreground(lipgloss.Color("#38BDF8")),
		coursetree.StateReviewed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6")),
		coursetree.StateApproved:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		coursetree.StatePublished:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")),
	}
)

// Model is the review screen's Bubble Tea model. Course mutations go
// through the buildstate package; the caller saves the course file
// after the program exits.
type Model struct {
	course     *coursetree.Course
	activities []*coursetree.Activity
	events     store.EventRepo

	selected int
	status   string
	width    int
	height   int
	help     help.Model
	keys     keyMap
}

// New creates a review model over the course. events may be nil.
func New(course *coursetree.Course, events store.EventRepo) Model {
	return Model{
		course:     course,
		activities: coursetree.Flatten(course),
		events:     events,
		help:       help.New(),
		keys:       keys,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.activities)-1 {
				m.selected++
			}
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Review):
			return m.transition(coursetree.StateReviewed), nil
		case key.Matches(msg, m.keys.Approve):
			return m.approve(), nil
		case key.Matches(msg, m.keys.Reject):
			return m.reject(), nil
		}
	}
	return m, nil
}

func (m Model) transition(target coursetree.BuildState) Model {
	a := m.current()
	if a == nil {
		return m
	}
	from := a.BuildState
	if _, err := buildstate.Transition(a, target); err != nil {
		m.status = errStyle.Render(err.Error())
		return m
	}
	m.recordTransition(a, from, target)
	m.status = fmt.Sprintf("%s → %s", a.Title, target)
	return m
}

func (m Model) approve() Model {
	a := m.current()
	if a == nil {
		return m
	}
	from := a.BuildState
	if _, err := buildstate.Approve(a); err != nil {
		m.status = errStyle.Render(err.Error())
		return m
	}
	m.recordTransition(a, from, coursetree.StateApproved)
	m.status = fmt.Sprintf("%s approved", a.Title)
	return m
}

func (m Model) reject() Model {
	a := m.current()
	if a == nil {
		return m
	}
	from := a.BuildState
	if from == coursetree.StateDraft {
		m.status = fmt.Sprintf("%s is already a draft", a.Title)
		return m
	}
	buildstate.Reset(a)
	m.recordTransition(a, from, coursetree.StateDraft)
	m.status = fmt.Sprintf("%s → draft", a.Title)
	return m
}

func (m Model) current() *coursetree.Activity {
	if m.selected < 0 || m.selected >= len(m.activities) {
		return nil
	}
	return m.activities[m.selected]
}

func (m Model) recordTransition(a *coursetree.Activity, from, to coursetree.BuildState) {
	if m.events == nil {
		return
	}
	err := m.events.AppendTransition(context.Background(), store.TransitionEventData{
		CourseID:   m.course.ID,
		ActivityID: a.ID,
		FromState:  string(from),
		ToState:    string(to),
		Trigger:    "review",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log transition event: %v\n", err)
	}
}

func (m Model) View() tea.View {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Review: " + m.course.Title))
	b.WriteString("\n\n")

	if len(m.activities) == 0 {
		b.WriteString(statusStyle.Render("  No activities in this course."))
		b.WriteString("\n")
	}

	for i, a := range m.activities {
		prefix := "  "
		line := fmt.Sprintf("%-40s %-10s %s", truncate(a.Title, 40), a.Type, renderState(a.BuildState))
		if i == m.selected {
			prefix = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func renderState(s coursetree.BuildState) string {
	style, ok := stateStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run starts the review program and reports whether every activity
// ended up approved or published, the precondition for publishing.
func Run(course *coursetree.Course, events store.EventRepo) error {
	p := tea.NewProgram(New(course, events))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review screen: %w", err)
	}
	return nil
}
