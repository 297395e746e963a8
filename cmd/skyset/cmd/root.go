// Package cmd provides the CLI commands for skyset.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dbmrq/skyset/internal/app"
	"github.com/dbmrq/skyset/internal/config"
	"github.com/dbmrq/skyset/internal/field"
	"github.com/dbmrq/skyset/internal/logging"
	"github.com/dbmrq/skyset/internal/output"
	"github.com/dbmrq/skyset/internal/paths"
	"github.com/dbmrq/skyset/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCmd builds the command tree. The root command opens the editor.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skyset [PATH]",
		Short: "Edit the shared skyset theme document",
		Long: `skyset edits the theme document other tools read from
~/.config/skyset/latest.yml: messages, theme mode, palette and gradients.

PATH may be a file, a directory containing latest.yml, or omitted for the
default location. Field flags are applied once at startup; they are not
saved until you save in the editor.

Examples:
  skyset                              # Edit the default document
  skyset ~/themes                     # Edit ~/themes/latest.yml
  skyset --accent '#FF8800' --oneline # Preview an override without the editor
  skyset --json                       # Print the document as JSON`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}

	f := root.Flags()
	f.String("config-file", "", "Path to the skyset document (overrides PATH)")
	f.String("settings", "", "Path to editor settings (default <config home>/skyset/editor.yaml)")
	f.Bool("oneline", false, "Print a one-line summary and exit")
	f.Bool("json", false, "Print the document as JSON and exit")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	root.MarkFlagsMutuallyExclusive("oneline", "json")
	registerFieldFlags(f)

	root.AddCommand(newVersionCmd())
	return root
}

// registerFieldFlags adds one string flag per document field, named by its key.
func registerFieldFlags(f *pflag.FlagSet) {
	for _, id := range field.Order() {
		f.String(id.Key(), "", "Set "+id.Label())
	}
	f.Lookup(field.SourceWillUpdate.Key()).NoOptDefVal = "true"
}

// collectOverrides returns the field flags the operator actually set.
func collectOverrides(f *pflag.FlagSet) field.Overrides {
	overrides := field.Overrides{}
	for _, id := range field.Order() {
		if !f.Changed(id.Key()) {
			continue
		}
		v, err := f.GetString(id.Key())
		if err != nil {
			continue
		}
		overrides[id] = v
	}
	return overrides
}

// resolvePath picks --config-file over PATH, then normalizes.
func resolvePath(configFile string, args []string) string {
	input := configFile
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	return paths.Normalize(input)
}

func runRoot(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config-file")
	settingsPath, _ := cmd.Flags().GetString("settings")
	oneline, _ := cmd.Flags().GetBool("oneline")
	asJSON, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}

	// Logs go to a file only; the editor owns the terminal.
	if err := logging.InitGlobal(settings.LoggingConfig(verbose)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
	}

	path := resolvePath(configFile, args)
	logging.Info("skyset starting", "version", Version, "path", path)

	ctrl := app.New(path)
	ctrl.ApplyOverrides(collectOverrides(cmd.Flags()))

	switch {
	case asJSON:
		out, err := output.JSON(ctrl.Document())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	case oneline:
		fmt.Fprintln(cmd.OutOrStdout(), output.Oneline(path, ctrl.Document()))
		return nil
	}

	return tui.Run(ctrl, settings)
}

var rootCmd = NewRootCmd()

// Execute runs the root command. It is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("skyset {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
