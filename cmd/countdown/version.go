package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of countdown",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("countdown version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
