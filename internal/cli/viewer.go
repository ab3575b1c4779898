package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todos"
	"github.com/idilsaglam/todo/internal/ui"
)

// Menu entries, in display order. The first one is the default.
const (
	actionAdd   = "add"
	actionDone  = "done"
	actionList  = "list"
	actionClear = "clear"
	actionQuit  = "quit"
)

var menu = []string{actionAdd, actionDone, actionList, actionClear, actionQuit}

const menuTitle = "What do you choose?"

// Options wires the viewer to its streams and logger.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	Logger *log.Logger
}

// Viewer owns the task list and drives it from the interactive menu.
type Viewer struct {
	list   *todos.Todos
	prompt Prompter
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
}

func NewViewer(list *todos.Todos, prompt Prompter, opt Options) *Viewer {
	v := &Viewer{
		list:   list,
		prompt: prompt,
		out:    opt.Out,
		errOut: opt.ErrOut,
		logger: opt.Logger,
	}
	if v.out == nil {
		v.out = os.Stdout
	}
	if v.errOut == nil {
		v.errOut = os.Stderr
	}
	if v.logger == nil {
		v.logger = log.New(io.Discard)
	}
	return v
}

// InitStorage prepares the database and loads the stored tasks. The caller
// must exit non-zero on error; the message is already printed.
func (v *Viewer) InitStorage(ctx context.Context) error {
	if err := v.list.InitStorage(ctx); err != nil {
		ui.Fail(v.errOut, "storage: "+err.Error())
		return err
	}
	ui.OK(v.out, "Ok")
	v.list.Load(ctx)
	return nil
}

// Run shows the menu until quit is chosen or the menu is dismissed.
func (v *Viewer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		i, err := v.prompt.Select(menuTitle, menu, 0)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if i < 0 || i >= len(menu) {
			return fmt.Errorf("menu: choice %d out of range", i)
		}

		v.logger.Debug("menu", "action", menu[i])
		switch menu[i] {
		case actionAdd:
			err = v.Add(ctx)
		case actionDone:
			err = v.Done(ctx)
		case actionList:
			v.List()
		case actionClear:
			v.Clear(ctx)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readTask asks for a description. ok is false when the prompt was
// dismissed or left empty; the caller goes back to the menu.
func (v *Viewer) readTask(prompt string) (text string, ok bool, err error) {
	text, err = v.prompt.Input(prompt)
	if errors.Is(err, ErrAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("input: %w", err)
	}
	if text == "" {
		ui.Fail(v.errOut, "empty task description")
		return "", false, nil
	}
	return text, true, nil
}

// Add asks for a description and adds it as an on going task.
func (v *Viewer) Add(ctx context.Context) error {
	text, ok, err := v.readTask("Task:")
	if !ok {
		return err
	}
	v.list.Add(ctx, model.NewTask(text, model.OnGoing))
	return nil
}

// Done asks for a description and marks the matching task done.
func (v *Viewer) Done(ctx context.Context) error {
	text, ok, err := v.readTask("Task >")
	if !ok {
		return err
	}
	t := v.list.FindTask(model.NewTask(text, model.OnGoing))
	if t == nil {
		ui.Info(v.out, "task not found: "+text)
		return nil
	}
	t.SetStatus(model.Done)
	v.list.SetDone(ctx, *t, model.Done)
	return nil
}

// List prints the header with counts and progress, then every task.
func (v *Viewer) List() {
	t := ui.Current()
	d, p := v.list.Counts()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), v.list.Len(),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if v.list.Len() == 0 {
		lines = append(lines, t.Muted.Render("List: no tasks"))
	} else {
		lines = append(lines, "List: "+v.list.String())
	}
	ui.Panel(v.out, lines)
}

// Clear empties the list and the database.
func (v *Viewer) Clear(ctx context.Context) { v.list.Clear(ctx) }
