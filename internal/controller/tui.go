package controller

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	missingStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals: styled tables and a Bubble Tea
// picker.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayCategories prints a titled registry table.
func (t *TUI) DisplayCategories(ctx context.Context, mappings []m.CategoryMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s\n%s", titleStyle.Render(fmt.Sprintf("%d categories", len(mappings))), renderCategoriesTable(mappings))

	return nil
}

// DisplayRelated prints a titled related-files table with misses dimmed.
func (t *TUI) DisplayRelated(ctx context.Context, results []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s\n%s", titleStyle.Render("Related files"), renderRelatedTable(results, func(s string) string { return missingStyle.Render(s) }))

	return nil
}

// Pick runs the interactive picker. A single candidate is returned without
// prompting.
func (t *TUI) Pick(ctx context.Context, results []m.Resolution) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	found := foundTargets(results)
	switch len(found) {
	case 0:
		return "", ErrNothingToPick
	case 1:
		return found[0].Target, nil
	}

	program := tea.NewProgram(newPickerModel(found),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithInput(t.cmd.InOrStdin()),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	picked, ok := final.(pickerModel)
	if !ok || picked.chosen < 0 {
		return "", ErrNothingToPick
	}

	return picked.choices[picked.chosen].Target, nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}
