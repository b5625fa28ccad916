package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"neogoto.dev/pkg/neogoto/internal/domain"
)

const relatedLongDescription = `Resolve every configured category for each file and print the results.

Files are resolved concurrently; --parallel bounds the number of files in
flight. With --pick the found counterparts are offered in a picker and the
chosen path is printed.`

// relatedCmd represents the related command.
var relatedCmd = newRelatedCmd()

func newRelatedCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:          "related FILE...",
		Short:        "List the counterparts of files in every category",
		Long:         relatedLongDescription,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			results, err := newNavigator(registry).Related(cmd.Context(), domain.RelatedArgs{
				Paths:    parsePaths(args),
				Parallel: viper.GetInt(relatedParallelKey),
			})
			if err != nil {
				return err
			}

			if !pick {
				return ui.DisplayRelated(cmd.Context(), results)
			}

			target, err := ui.Pick(cmd.Context(), results)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), target)

			return err
		},
	}

	cmd.Flags().IntP(parallelFlagName, "j", defaultRelatedLimit, "number of files resolved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), relatedParallelKey)

	cmd.Flags().BoolVar(&pick, pickFlagName, false, "choose one counterpart and print its path")

	return cmd
}

func init() {
	rootCmd.AddCommand(relatedCmd)
}
