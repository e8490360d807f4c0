package commands

import (
	"fmt"

	"github.com/relforge/relforge/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			if build.Commit != "" {
				fmt.Println(build.Version + " (" + build.Commit + ")")
				return
			}
			fmt.Println(build.Version)
		},
	}
}
