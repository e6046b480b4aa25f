package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "mdblog",
	Short: "mdblog - static blog generator for markdown posts",
	Long: `mdblog turns a directory of markdown posts into a static HTML site.

Posts live under posts/, each one a block of "key: value" headers,
a blank line, and a markdown body. Themes live under _themes/ and
fall back to the built-in "simple" theme.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// rootArg is the blog root given on the command line, or the working directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("mdblog failed")
		os.Exit(1)
	}
}
