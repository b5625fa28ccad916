package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neogoto.dev/pkg/neogoto/internal/controller"
	"neogoto.dev/pkg/neogoto/internal/domain"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// executeCommand runs sub under a fresh root command with a plain UI and a
// log file inside the test's temp dir.
func executeCommand(t *testing.T, sub *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	originalUI := ui
	ui = controller.NewSimpleUI(cmd)
	t.Cleanup(func() { ui = originalUI })

	logFile := filepath.Join(t.TempDir(), "neogoto.log")
	cmd.SetArgs(append(args, "--"+logFileFlagName, logFile))

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func useNavigator(t *testing.T, navigator domain.Navigator) {
	t.Helper()

	original := newNavigator
	newNavigator = func(*domain.Registry) domain.Navigator { return navigator }
	t.Cleanup(func() { newNavigator = original })
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{"Source/foo.cpp"}, []m.Path{m.Path("Source/foo.cpp")}},
		{
			"multiple",
			[]string{"Source/foo.cpp", "Include/foo.h", "UnitTest/Testfoo.cpp"},
			[]m.Path{m.Path("Source/foo.cpp"), m.Path("Include/foo.h"), m.Path("UnitTest/Testfoo.cpp")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "neogoto", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(verboseFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(logFileFlagName))
}

func TestRootCmd_HelpOutput(t *testing.T) {
	out, _, err := executeCommand(t, newVersionCmd())

	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "neogoto.yaml")
	assert.Contains(t, out, "version")
}

func TestRootCmd_VerboseWritesDebugLog(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "debug.log")

	cmd := newRootCmd()
	cmd.AddCommand(newVersionCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version", "--verbose", "--log-file", logFile})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "starting command")
	assert.Contains(t, string(contents), "level=DEBUG")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, newNavigator(domain.DefaultRegistry()))

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"goto", "related", "categories", "init", "version"})
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not exit on success.
	Execute()
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute would call os.Exit(1), so only the command error is checked.
	err := rootCmd.Execute()
	require.Error(t, err)
}
