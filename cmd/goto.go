package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"neogoto.dev/pkg/neogoto/internal/adapter"
	"neogoto.dev/pkg/neogoto/internal/controller"
	"neogoto.dev/pkg/neogoto/internal/domain"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

const (
	switchTarget = "switch"
	debugArg     = "debug"
)

// switchAliases are switch targets with a fixed placement.
var switchAliases = map[string]m.Placement{
	"switch-left":  m.FocusLeft,
	"switch-right": m.FocusRight,
	"split-left":   m.SplitLeft,
	"split-right":  m.SplitRight,
}

var errNoEditor = errors.New("no editor: pass --file or run inside neovim (--server, $NVIM)")

const gotoLongDescription = `Open the counterpart of the current file.

TARGET is a category name (header, source, test or any configured category)
or "switch" for the category's configured counterpart. The switch variants
switch-left, switch-right, split-left and split-right pick the window as well.
A trailing "debug" argument behaves like --debug.

Without --file the current file comes from the Neovim instance at --server,
$NVIM or $NVIM_LISTEN_ADDRESS. With --file the counterpart is printed.`

// gotoCmd represents the goto command.
var gotoCmd = newGotoCmd()

func newGotoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:          "goto TARGET [debug]",
		Short:        "Jump to the header, source, test or switch counterpart",
		Long:         gotoLongDescription,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gotoArgs, err := parseGotoArgs(args)
			if err != nil {
				return err
			}

			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			editor, closeEditor, err := openEditor(cmd, file)
			if err != nil {
				return err
			}

			defer func() {
				if err := closeEditor(); err != nil {
					slog.Warn("close editor", "error", err)
				}
			}()

			_, err = newNavigator(registry).Goto(cmd.Context(), editor, gotoArgs)

			return err
		},
	}

	cmd.Flags().StringVarP(&file, fileFlagName, "f", "", "current file; print the counterpart instead of opening it in an editor")

	cmd.Flags().String(serverFlagName, "", "address of the Neovim server")
	bindFlagToConfig(cmd.Flags().Lookup(serverFlagName), editorServerKey)

	cmd.Flags().StringP(placementFlagName, "p", m.ReuseCurrent.String(),
		fmt.Sprintf("window to open the file in (%s)", strings.Join(m.Placements(), ", ")))
	bindFlagToConfig(cmd.Flags().Lookup(placementFlagName), gotoPlacementKey)

	cmd.Flags().BoolP(debugFlagName, "d", false, "report every directory and file probed")
	bindFlagToConfig(cmd.Flags().Lookup(debugFlagName), gotoDebugKey)

	return cmd
}

// parseGotoArgs turns "TARGET [debug]" plus the bound flags into GotoArgs.
func parseGotoArgs(args []string) (domain.GotoArgs, error) {
	placement, err := m.ParsePlacement(viper.GetString(gotoPlacementKey))
	if err != nil {
		return domain.GotoArgs{}, err
	}

	gotoArgs := domain.GotoArgs{
		Placement: placement,
		Debug:     viper.GetBool(gotoDebugKey),
	}

	if len(args) == 2 {
		if args[1] != debugArg {
			return domain.GotoArgs{}, fmt.Errorf("unexpected argument %q (only %q may follow the target)", args[1], debugArg)
		}

		gotoArgs.Debug = true
	}

	target := args[0]

	switch aliasPlacement, isAlias := switchAliases[target]; {
	case target == switchTarget:
		gotoArgs.Switch = true
	case isAlias:
		gotoArgs.Switch = true
		gotoArgs.Placement = aliasPlacement
	default:
		gotoArgs.Category = m.CategoryName(target)
	}

	return gotoArgs, nil
}

// openEditor picks the terminal editor for --file and Neovim otherwise. The
// returned function releases the editor.
func openEditor(cmd *cobra.Command, file string) (adapter.Editor, func() error, error) {
	if file != "" {
		editor := adapter.NewTerminalEditor(m.Path(file), cmd.OutOrStdout(), cmd.ErrOrStderr(), controller.IsTTY(cmd.ErrOrStderr()))
		return editor, func() error { return nil }, nil
	}

	address := nvimAddress()
	if address == "" {
		return nil, nil, errNoEditor
	}

	slog.Debug("connecting to nvim", "address", address)

	editor, err := dialEditor(address)
	if err != nil {
		return nil, nil, err
	}

	return editor, editor.Close, nil
}

func nvimAddress() string {
	if address := viper.GetString(editorServerKey); address != "" {
		return address
	}

	if address := os.Getenv("NVIM"); address != "" {
		return address
	}

	return os.Getenv("NVIM_LISTEN_ADDRESS")
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}
