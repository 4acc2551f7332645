// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package main

import (
	"fmt"

	"github.com/loglens/loglens/pkg/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this command.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(build.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
