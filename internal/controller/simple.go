package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

const notFoundLabel = "-"

// SimpleUI implements UI using plain tables on the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCategories prints the registry in registration order.
func (s *SimpleUI) DisplayCategories(ctx context.Context, mappings []m.CategoryMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCategoriesTable(mappings))

	return nil
}

// DisplayRelated prints one row per resolution.
func (s *SimpleUI) DisplayRelated(ctx context.Context, results []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderRelatedTable(results, func(text string) string { return text }))

	return nil
}

// Pick returns the first found target; there is nothing to interact with.
func (s *SimpleUI) Pick(ctx context.Context, results []m.Resolution) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	found := foundTargets(results)
	if len(found) == 0 {
		return "", ErrNothingToPick
	}

	return found[0].Target, nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderCategoriesTable(mappings []m.CategoryMapping) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Dirs", "Extensions", "Prefix", "Switch"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, mapping := range mappings {
		table.Append([]string{
			string(mapping.Name),
			orDash(strings.Join(mapping.Dirs, ", ")),
			strings.Join(mapping.Extensions, ", "),
			orDash(mapping.Prefix),
			orDash(string(mapping.SwitchTo)),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderRelatedTable(results []m.Resolution, missing func(string) string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Is", "Category", "Counterpart"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	found := 0

	for _, result := range results {
		target := missing(notFoundLabel)
		if result.Found() {
			target = string(result.Target)
			found++
		}

		table.Append([]string{
			string(result.Source),
			orDash(string(result.Current)),
			string(result.Category),
			target,
		})
	}

	table.SetFooter([]string{"", "", "Found", fmt.Sprintf("%d/%d", found, len(results))})
	table.Render()

	return tableBuffer.String()
}

func orDash(value string) string {
	if value == "" {
		return notFoundLabel
	}

	return value
}
