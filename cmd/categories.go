package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// categoriesDocument is the yaml shape of the categories section of neogoto.yaml.
type categoriesDocument struct {
	Categories []categoryConfig `yaml:"categories"`
}

// categoriesCmd represents the categories command.
var categoriesCmd = newCategoriesCmd()

func newCategoriesCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the configured categories",
		Long: `Print the effective categories in registration order. Earlier categories
win when a file matches several equally well.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			if !asYAML {
				return ui.DisplayCategories(cmd.Context(), registry.Mappings())
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)

			if err := encoder.Encode(categoriesDocument{Categories: categoriesToConfig(registry.Mappings())}); err != nil {
				return fmt.Errorf("encode categories: %w", err)
			}

			return encoder.Close()
		},
	}

	cmd.Flags().BoolVar(&asYAML, yamlFlagName, false, "print the categories as neogoto.yaml content")

	return cmd
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
