package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/ui"
)

// ErrAborted is returned when the user dismisses a prompt (esc, q, ctrl+c).
var ErrAborted = errors.New("prompt aborted")

// Prompter blocks on user input.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(title string, options []string, def int) (int, error)
	// Input returns the trimmed, non-empty text typed by the user.
	Input(prompt string) (string, error)
}

var selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

// TeaPrompter runs one inline Bubble Tea program per prompt.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter reads keys from in and draws on out. Nil values keep
// Bubble Tea's defaults (the terminal).
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}
	return tea.NewProgram(m, opts...).Run()
}

func (p *TeaPrompter) Select(title string, options []string, def int) (int, error) {
	fm, err := p.run(newSelectModel(title, options, def))
	if err != nil {
		return 0, err
	}
	m, ok := fm.(selectModel)
	if !ok || m.aborted {
		return 0, ErrAborted
	}
	return m.choice, nil
}

func (p *TeaPrompter) Input(prompt string) (string, error) {
	fm, err := p.run(newInputModel(prompt))
	if err != nil {
		return "", err
	}
	m, ok := fm.(inputModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

// ---------------------------------------------------
// single-select menu
// ---------------------------------------------------

// menuItem adapts a menu option to bubbles/list.Item
type menuItem string

func (i menuItem) FilterValue() string { return string(i) }

// Custom delegate to control how options render (single line)
type menuDelegate struct {
	highlight string // option drawn with the on going style, e.g. "quit"
}

func (d menuDelegate) Height() int                               { return 1 }
func (d menuDelegate) Spacing() int                              { return 0 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(menuItem)
	text := string(it)
	if text == d.highlight {
		text = ui.Current().OnGoing.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+text)
}

type selectModel struct {
	list    list.Model
	title   string
	choice  int
	done    bool
	aborted bool
}

func newSelectModel(title string, options []string, def int) selectModel {
	items := make([]list.Item, 0, len(options))
	for _, o := range options {
		items = append(items, menuItem(o))
	}
	var highlight string
	if len(options) > 0 {
		highlight = options[len(options)-1]
	}

	l := list.New(items, menuDelegate{highlight: highlight}, 40, len(items)+6)
	l.Title = title
	l.Styles.Title = ui.Current().Title
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)

	chooseBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{chooseBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{chooseBind} }

	if def >= 0 && def < len(items) {
		l.Select(def)
	}
	return selectModel{list: l, title: title}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if len(m.list.Items()) == 0 {
				return m, nil
			}
			m.choice = m.list.Index()
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		it, _ := m.list.SelectedItem().(menuItem)
		return ui.Current().Title.Render(m.title) + " " + ui.Current().Accent.Render(string(it)) + "\n"
	}
	return m.list.View() + "\n"
}

// ---------------------------------------------------
// free-text input
// ---------------------------------------------------

type inputModel struct {
	ti      textinput.Model
	title   string
	err     string
	value   string
	done    bool
	aborted bool
}

func newInputModel(title string) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Task description..."
	ti.CharLimit = 200
	ti.Focus()
	return inputModel{ti: ti, title: title}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			v := strings.TrimSpace(m.ti.Value())
			if v == "" {
				m.err = "Title cannot be empty"
				return m, nil
			}
			m.value = v
			m.done = true
			m.ti.Blur()
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			m.done = true
			m.ti.Blur()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	t := ui.Current()
	if m.done {
		if m.aborted {
			return ""
		}
		return t.Title.Render(m.title) + " " + m.value + "\n"
	}
	title := t.Title.Render(m.title)
	if m.err != "" {
		title += " " + t.Error.Render(m.err)
	}
	return title + "\n" + m.ti.View() + "\n" + t.Muted.Render("enter to confirm, esc to cancel") + "\n"
}
