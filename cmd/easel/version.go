// Version command for the easel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/easel/pkg/easel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the easel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "easel v%s\n", easel.Version)
	},
}
