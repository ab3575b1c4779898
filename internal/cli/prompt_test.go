package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestSelectModelDefaultAndMove(t *testing.T) {
	tests := []struct {
		name string
		def  int
		keys []tea.Msg
		want int
	}{
		{"default", 0, nil, 0},
		{"preselected", 2, nil, 2},
		{"down twice", 0, []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}}, 2},
		{"out of range default", 9, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newSelectModel(menuTitle, menu, tt.def), tt.keys...)
			m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			sm := m.(selectModel)
			if !sm.done || sm.aborted {
				t.Fatalf("state: done=%v aborted=%v", sm.done, sm.aborted)
			}
			if sm.choice != tt.want {
				t.Errorf("choice: got %d, want %d", sm.choice, tt.want)
			}
			if !strings.Contains(ansi.Strip(sm.View()), menu[tt.want]) {
				t.Errorf("View after choice: got %q", sm.View())
			}
		})
	}
}

func TestSelectModelDismiss(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(k.String(), func(t *testing.T) {
			m := press(t, newSelectModel(menuTitle, menu, 0), k).(selectModel)
			if !m.aborted {
				t.Errorf("%s: want aborted", k.String())
			}
		})
	}
}

func TestSelectModelViewListsOptions(t *testing.T) {
	view := ansi.Strip(newSelectModel(menuTitle, menu, 0).View())
	for _, o := range menu {
		if !strings.Contains(view, o) {
			t.Errorf("View missing %q:\n%s", o, view)
		}
	}
	if !strings.Contains(view, "> add") {
		t.Errorf("View should mark the default option:\n%s", view)
	}
}

func TestInputModel(t *testing.T) {
	m := press(t, newInputModel("Task:"), tea.KeyMsg{Type: tea.KeyEnter}).(inputModel)
	if m.done || m.err == "" {
		t.Fatalf("empty enter: done=%v err=%q", m.done, m.err)
	}

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  buy milk ")},
		tea.KeyMsg{Type: tea.KeyEnter},
	).(inputModel)
	if !m.done || m.aborted {
		t.Fatalf("state: done=%v aborted=%v", m.done, m.aborted)
	}
	if m.value != "buy milk" {
		t.Errorf("value: got %q, want %q", m.value, "buy milk")
	}
}

func TestInputModelEsc(t *testing.T) {
	m := press(t, newInputModel("Task:"),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
		tea.KeyMsg{Type: tea.KeyEsc},
	).(inputModel)
	if !m.aborted || m.value != "" {
		t.Errorf("esc: aborted=%v value=%q", m.aborted, m.value)
	}
}
