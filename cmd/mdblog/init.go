package main

import (
	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <root>",
	Short: "Create a new blog with an example post and config.toml",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.New(args[0]).Init()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
