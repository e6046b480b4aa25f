package main

import (
	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/dfryer1193/mdblog/blog/theme"
	"github.com/spf13/cobra"
)

var themeFrom string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage blog themes",
}

var themeNewCmd = &cobra.Command{
	Use:   "new <name> [root]",
	Short: "Copy a theme into _themes/<name> for customization",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.New(rootArg(args[1:])).InitTheme(themeFrom, args[0])
	},
}

func init() {
	themeNewCmd.Flags().StringVar(&themeFrom, "from", theme.DefaultName, "theme to copy")
	themeCmd.AddCommand(themeNewCmd)
	rootCmd.AddCommand(themeCmd)
}
