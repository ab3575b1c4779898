// Package todos keeps the session's task list and mirrors every change to a Store.
package todos

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// Store is the persistence the collection writes through to.
type Store interface {
	Init(ctx context.Context) error
	AddTask(ctx context.Context, t model.Task) error
	SetDone(ctx context.Context, t model.Task, st model.Status) error
	Load(ctx context.Context) ([]model.Task, error)
	Clear(ctx context.Context) error
}

// Todos is an ordered task list plus the store it owns.
// Store failures after InitStorage are reported on the error stream and never
// returned; the in-memory list is not rolled back.
type Todos struct {
	tasks  []model.Task
	store  Store
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

type Option func(*Todos)

// WithOutput redirects status lines (out) and failure lines (errOut).
func WithOutput(out, errOut io.Writer) Option {
	return func(t *Todos) {
		t.out = out
		t.errOut = errOut
	}
}

func WithLogger(l *log.Logger) Option {
	return func(t *Todos) { t.logger = l }
}

func New(store Store, opts ...Option) *Todos {
	t := &Todos{
		store:  store,
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// InitStorage must run once before anything else. Its error is the only one
// the collection hands back.
func (t *Todos) InitStorage(ctx context.Context) error {
	return t.store.Init(ctx)
}

// Add appends task and persists it. The task stays in memory even if the
// insert fails (e.g. duplicate text).
func (t *Todos) Add(ctx context.Context, task model.Task) {
	t.tasks = append(t.tasks, task)
	if err := t.store.AddTask(ctx, task); err != nil {
		ui.Fail(t.errOut, "insert failed: "+err.Error())
		return
	}
	ui.OK(t.out, "inserted")
}

// SetDone sets the status of the task with the same text and persists it.
// The store update is attempted even when the task is not in memory.
func (t *Todos) SetDone(ctx context.Context, task model.Task, st model.Status) {
	if found := t.FindTask(task); found != nil {
		found.SetStatus(st)
	} else {
		t.logger.Debug("set status on task missing from memory", "text", task.Text())
		ui.Info(t.out, "task not present: "+ui.RenderTask(task))
	}
	if err := t.store.SetDone(ctx, task, st); err != nil {
		ui.Fail(t.errOut, "status update failed: "+err.Error())
		return
	}
	ui.OK(t.out, "set "+st.String())
}

// Remove drops the task with the same text, moving the last task into its
// slot. Memory only.
func (t *Todos) Remove(task model.Task) bool {
	i := t.index(task)
	if i < 0 {
		ui.Info(t.out, "task not present: "+ui.RenderTask(task))
		return false
	}
	last := len(t.tasks) - 1
	t.tasks[i] = t.tasks[last]
	t.tasks = t.tasks[:last]
	return true
}

// FindTask returns the stored task with the same text, or nil.
// The pointer is valid until the next Add, Remove, Clear or Load.
func (t *Todos) FindTask(task model.Task) *model.Task {
	if i := t.index(task); i >= 0 {
		return &t.tasks[i]
	}
	return nil
}

func (t *Todos) index(task model.Task) int {
	for i := range t.tasks {
		if t.tasks[i].Text() == task.Text() {
			return i
		}
	}
	return -1
}

// At returns the task at index, ok=false when out of range.
func (t *Todos) At(index int) (model.Task, bool) {
	if index < 0 || index >= len(t.tasks) {
		return model.Task{}, false
	}
	return t.tasks[index], true
}

func (t *Todos) Len() int { return len(t.tasks) }

// Tasks returns a copy of the list.
func (t *Todos) Tasks() []model.Task {
	out := make([]model.Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// Counts returns how many tasks are done and how many are still going.
func (t *Todos) Counts() (done, onGoing int) {
	for _, task := range t.tasks {
		if task.Status() == model.Done {
			done++
		} else {
			onGoing++
		}
	}
	return
}

// Clear empties the list and deletes every stored row.
func (t *Todos) Clear(ctx context.Context) {
	t.tasks = t.tasks[:0]
	if err := t.store.Clear(ctx); err != nil {
		ui.Fail(t.errOut, "clear failed: "+err.Error())
		return
	}
	ui.OK(t.out, "list cleared")
}

// Load replaces the in-memory list with the stored rows. On failure the
// current list is kept.
func (t *Todos) Load(ctx context.Context) {
	tasks, err := t.store.Load(ctx)
	if err != nil {
		ui.Fail(t.errOut, "load failed: "+err.Error())
		return
	}
	t.tasks = tasks
	t.logger.Debug("list loaded", "count", len(tasks))
	ui.OK(t.out, "list loaded")
}

// String renders every task parenthesized, in list order.
func (t *Todos) String() string {
	return ui.RenderTasks(t.tasks)
}
