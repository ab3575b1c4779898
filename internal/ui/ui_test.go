package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todo/internal/model"
)

func TestRenderTasks(t *testing.T) {
	tasks := []model.Task{
		model.NewTask("buy milk", model.Done),
		model.NewTask("call mom", model.OnGoing),
	}
	got := ansi.Strip(RenderTasks(tasks))
	want := "(Task (buy milk, done)) (Task (call mom, on going)) "
	if got != want {
		t.Errorf("RenderTasks: got %q, want %q", got, want)
	}
	if RenderTasks(nil) != "" {
		t.Errorf("RenderTasks(nil): want empty")
	}
}

func TestStatusLabelKeepsLiteral(t *testing.T) {
	for _, name := range []string{"classic", "neon", "mono"} {
		t.Run(name, func(t *testing.T) {
			SetTheme(name)
			defer SetTheme("classic")
			for _, st := range []model.Status{model.Done, model.OnGoing} {
				if got := ansi.Strip(StatusLabel(st)); got != st.String() {
					t.Errorf("StatusLabel(%v): got %q", st, got)
				}
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name               string
		done, total, width int
		want               string
	}{
		{"half", 1, 2, 10, "█████░░░░░  50%"},
		{"empty list", 0, 0, 5, "░░░░░   0%"},
		{"all done", 3, 3, 5, "█████ 100%"},
		{"narrow width clamps", 1, 1, 2, "█████ 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
				t.Errorf("ProgressBar(%d, %d, %d): got %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
			}
		})
	}
}

func TestConsoleLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out bytes.Buffer
	OK(&out, "inserted")
	Fail(&out, "boom")
	Info(&out, "note")
	got := ansi.Strip(out.String())
	for _, want := range []string{"ok inserted", "error: boom", "note"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestPanelContainsLines(t *testing.T) {
	var out bytes.Buffer
	Panel(&out, []string{"Todos", "second line"})
	got := ansi.Strip(out.String())
	if !strings.Contains(got, "Todos") || !strings.Contains(got, "second line") {
		t.Errorf("Panel: got %q", got)
	}
	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("Panel: got %d lines, want 4", n)
	}
}
