package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default neogoto.yaml configuration file",
		Long: `Create a neogoto.yaml in the current working directory populated with the
current settings, including the category list, so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			targetPath := filepath.Join(configFolderPath, configFileName)
			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			names := make([]string, 0, registry.Len())
			for _, name := range registry.Names() {
				names = append(names, string(name))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s with %d categories: %s\n",
				targetPath, registry.Len(), strings.Join(names, ", "))

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
