package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensegen/licensegen/pkg/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licensegen",
		Short: "Pick an open-source license and generate LICENSE.txt",
		Long: `licensegen asks two questions, whether others must share their
modifications and whether you need explicit patent protection, then
recommends MIT, Apache 2.0 or GNU GPL v3 and writes the filled-in
license text with your name and copyright year.`,
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: configureDependencies,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("licensegen %s\n", version.GetFullVersion()))

	cmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/licensegen/config.yaml)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: warn)")

	cmd.AddCommand(newGenerateCmd(), newSelectCmd(), newListCmd(), newConfigCmd())
	return cmd
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// reportedError marks an error that a command already showed to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// configureDependencies applies global flags and config to deps.
func configureDependencies(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	return deps.Configure(configureOptions{
		ConfigPath: getStringFlag(cmd, "config"),
		NoColor:    getBoolFlag(cmd, "no-color"),
		LogLevel:   getStringFlag(cmd, "log-level"),
		LogOutput:  cmd.ErrOrStderr(),
	})
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
