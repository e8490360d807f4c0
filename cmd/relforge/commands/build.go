package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildDebiansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-debians [repositories...]",
		Short: "Build debian packages for the configured repositories",
		Long: "Build debian packages for the named repositories, or for every " +
			"repository in the release configuration when none are named. " +
			"Repositories whose build version is already published are skipped.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.BuildDebians(cmd.Context(), c.configPath(), args)
		},
	}
}
