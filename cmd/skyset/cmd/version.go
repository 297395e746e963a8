package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/skyset/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for skyset.

Examples:
  skyset version          # Show detailed version info
  skyset version --json   # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool("json", false, "Output as JSON")
	return c
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON {
		cmd.Println(info.FullString())
		return nil
	}

	out, err := info.JSON()
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}
