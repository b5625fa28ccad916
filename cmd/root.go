// Package cmd provides the root command and CLI setup for neogoto.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"neogoto.dev/pkg/neogoto/internal/adapter"
	"neogoto.dev/pkg/neogoto/internal/controller"
	"neogoto.dev/pkg/neogoto/internal/domain"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// editorSession is an editor holding a connection that must be released.
type editorSession interface {
	adapter.Editor
	Close() error
}

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI

// newNavigator builds the navigator for a loaded registry. Tests replace it
// with a mock.
var newNavigator = func(registry *domain.Registry) domain.Navigator {
	return domain.NewNavigator(fsAdapter, registry)
}

// dialEditor connects to a running Neovim.
var dialEditor = func(address string) (editorSession, error) {
	editor, err := adapter.DialNvimEditor(address)
	if err != nil {
		return nil, err
	}

	return editor, nil
}

// verboseFlag forces debug logging.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const rootLongDescription = `Neogoto jumps between related files of a C/C++ project: a header, its
source file and its unit test.

Files are grouped into categories (header, source, test by default). Each
category names the directories its files live in, the extensions they use and
an optional filename prefix. Counterparts are searched for next to the current
file first and then in every ancestor directory, replacing one path component
at a time with each of the category's directories.

Categories are configured in neogoto.yaml (see "neogoto init").`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neogoto",
		Short: "Jump between header, source and test files",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			slog.Debug("starting command", "command", cmd.CommandPath())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
