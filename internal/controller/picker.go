package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pickerModel lists found counterparts and records the one chosen.
type pickerModel struct {
	choices []m.Resolution
	cursor  int
	chosen  int
	keys    pickerKeyMap
}

func newPickerModel(choices []m.Resolution) pickerModel {
	return pickerModel{
		choices: choices,
		chosen:  -1,
		keys:    defaultPickerKeys(),
	}
}

func (pm pickerModel) Init() tea.Cmd {
	return nil
}

func (pm pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm, nil
	}

	switch {
	case key.Matches(keyMsg, pm.keys.Quit):
		return pm, tea.Quit
	case key.Matches(keyMsg, pm.keys.Up):
		if pm.cursor > 0 {
			pm.cursor--
		}
	case key.Matches(keyMsg, pm.keys.Down):
		if pm.cursor < len(pm.choices)-1 {
			pm.cursor++
		}
	case key.Matches(keyMsg, pm.keys.Choose):
		pm.chosen = pm.cursor
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm pickerModel) View() string {
	if pm.chosen >= 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Open related file"))
	b.WriteString("\n\n")

	for i, choice := range pm.choices {
		cursor := "  "
		line := string(choice.Target)

		if i == pm.cursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}

		fmt.Fprintf(&b, "%s%s %s\n", cursor, line, categoryStyle.Render("("+string(choice.Category)+")"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(pm.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func (pm pickerModel) helpLine() string {
	bindings := []key.Binding{pm.keys.Up, pm.keys.Down, pm.keys.Choose, pm.keys.Quit}
	parts := make([]string, 0, len(bindings))

	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return strings.Join(parts, " • ")
}
