package review

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/courseforge/internal/coursetree"
)

func reviewCourse() *coursetree.Course {
	return &coursetree.Course{
		ID:    "course-1",
		Title: "Concurrency in Go",
		Modules: []coursetree.Module{
			{ID: "m1", Title: "Channels", Lessons: []coursetree.Lesson{
				{ID: "l1", Title: "Basics", Activities: []coursetree.Activity{
					{ID: "a1", Title: "Channel Reading", Type: coursetree.TypeReading, BuildState: coursetree.StateGenerated},
					{ID: "a2", Title: "Channels Quiz", Type: coursetree.TypeQuiz, BuildState: coursetree.StateDraft},
				}},
			}},
		},
	}
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyPressMsg
	switch k {
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		msg = tea.KeyPressMsg{Code: rune(k[0]), Text: k}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNavigation_Bounds(t *testing.T) {
	m := New(reviewCourse(), nil)

	m = press(t, m, "up")
	if m.selected != 0 {
		t.Errorf("selected = %d after up at top", m.selected)
	}

	m = press(t, m, "down")
	if m.selected != 1 {
		t.Errorf("selected = %d after down", m.selected)
	}
	m = press(t, m, "down")
	if m.selected != 1 {
		t.Errorf("selected = %d after down at bottom", m.selected)
	}
}

func TestReview_MarksGeneratedReviewed(t *testing.T) {
	c := reviewCourse()
	m := New(c, nil)

	m = press(t, m, "r")
	if got := c.Modules[0].Lessons[0].Activities[0].BuildState; got != coursetree.StateReviewed {
		t.Errorf("state = %s, want reviewed", got)
	}
	if !strings.Contains(m.status, "reviewed") {
		t.Errorf("status = %q", m.status)
	}
}

func TestReview_RejectsIllegalTransition(t *testing.T) {
	c := reviewCourse()
	m := New(c, nil)
	m = press(t, m, "down") // select the draft quiz

	m = press(t, m, "r")
	if got := c.Modules[0].Lessons[0].Activities[1].BuildState; got != coursetree.StateDraft {
		t.Errorf("state = %s, want draft (transition must be rejected)", got)
	}
	if m.status == "" {
		t.Error("expected an error status")
	}
}

func TestApprove_RequiresReviewed(t *testing.T) {
	c := reviewCourse()
	m := New(c, nil)

	m = press(t, m, "a")
	if got := c.Modules[0].Lessons[0].Activities[0].BuildState; got != coursetree.StateGenerated {
		t.Errorf("state = %s, approval from generated must fail", got)
	}

	m = press(t, m, "r")
	m = press(t, m, "a")
	if got := c.Modules[0].Lessons[0].Activities[0].BuildState; got != coursetree.StateApproved {
		t.Errorf("state = %s, want approved", got)
	}
}

func TestReject_ResetsToDraft(t *testing.T) {
	c := reviewCourse()
	m := New(c, nil)

	m = press(t, m, "d")
	if got := c.Modules[0].Lessons[0].Activities[0].BuildState; got != coursetree.StateDraft {
		t.Errorf("state = %s, want draft", got)
	}
	_ = m
}

func TestView_ListsActivities(t *testing.T) {
	m := New(reviewCourse(), nil)
	v := m.View()
	content := v.Content.(fmt.Stringer).String()

	for _, want := range []string{"Review: Concurrency in Go", "Channel Reading", "Channels Quiz"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
