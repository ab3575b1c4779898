package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle flag of a task.
type Status int

const (
	OnGoing Status = iota
	Done
)

// Persisted literals. Case matters on write.
const (
	onGoingLiteral = "on going"
	doneLiteral    = "done"
)

// String returns the literal stored in the database. No terminal styling here.
func (s Status) String() string {
	if s == Done {
		return doneLiteral
	}
	return onGoingLiteral
}

// ParseStatus maps a stored literal back to a Status. Only the exact
// "on going" literal, in any letter case, yields OnGoing; every other value,
// padded ones included, is read as Done.
// known is false when s was neither of the two literals.
func ParseStatus(s string) (st Status, known bool) {
	switch strings.ToLower(s) {
	case onGoingLiteral:
		return OnGoing, true
	case doneLiteral:
		return Done, true
	}
	return Done, false
}

// Task is the domain model for a todo entry. Text is its natural key.
type Task struct {
	text   string
	status Status
}

func NewTask(text string, status Status) Task {
	return Task{text: text, status: status}
}

func (t Task) Text() string        { return t.text }
func (t Task) Status() Status      { return t.status }
func (t *Task) SetText(v string)   { t.text = v }
func (t *Task) SetStatus(v Status) { t.status = v }

// String renders the task without styling, e.g. "Task (buy milk, done)".
func (t Task) String() string {
	return fmt.Sprintf("Task (%s, %s)", t.text, t.status)
}
