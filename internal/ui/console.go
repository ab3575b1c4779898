package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todo/internal/model"
)

// OK prints a success line, e.g. "✔ inserted".
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

// Fail prints an error line. Callers pass the error stream.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}

// Info prints a neutral, muted line.
func Info(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render(msg))
}

// StatusLabel decorates the stored status literal for the terminal.
func StatusLabel(s model.Status) string {
	if s == model.Done {
		return Current().Done.Render(s.String())
	}
	return Current().OnGoing.Render(s.String())
}

// RenderTask is the styled counterpart of model.Task.String.
func RenderTask(t model.Task) string {
	return fmt.Sprintf("Task (%s, %s)", t.Text(), StatusLabel(t.Status()))
}

// RenderTasks renders each task parenthesized, in order.
func RenderTasks(tasks []model.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "(%s) ", RenderTask(t))
	}
	return b.String()
}
