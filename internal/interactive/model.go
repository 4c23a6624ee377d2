package interactive

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nao1215/numanalyzer/internal/console"
)

// keyMap holds the key bindings of the menu picker.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "exit"),
		),
	}
}

// helpLine renders the short help for the bindings.
func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	parts = append(parts, "[1-7] jump")
	return strings.Join(parts, "    ")
}

// menuModel is the bubbletea model of the menu picker.
type menuModel struct {
	theme    *console.Theme
	keys     keyMap
	cursor   int
	chosen   Choice
	quitting bool
}

func newMenuModel(theme *console.Theme) menuModel {
	return menuModel{theme: theme, keys: defaultKeyMap()}
}

// Init initializes the menu model.
func (m menuModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input.
func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(Menu)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Select):
		m.chosen = Menu[m.cursor].Choice
		return m, tea.Quit

	default:
		if c := ParseChoice(keyMsg.String()); c != ChoiceInvalid {
			m.chosen = c
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m menuModel) View() string {
	if m.chosen != ChoiceInvalid || m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Banner(menuTitle))
	b.WriteString("\n\n")
	for i, item := range Menu {
		line := item.Key() + ". " + item.Title
		if i == m.cursor {
			b.WriteString("  " + m.theme.Selected("> "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Muted(m.keys.helpLine()))
	b.WriteString("\n")

	return b.String()
}
