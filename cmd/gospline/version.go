package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gospline/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
