package main

import (
	"github.com/dfryer1193/mdblog/blog/application"
	"github.com/dfryer1193/mdblog/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	buildTheme  string
	skipInvalid bool
)

var buildCmd = &cobra.Command{
	Use:   "build [root]",
	Short: "Render the blog into _builds/<theme>",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := build(rootArg(args), buildTheme, skipInvalid)
		return err
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildTheme, "theme", "", "theme to build with (defaults to config.toml)")
	buildCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "skip posts that fail to load instead of aborting")
	rootCmd.AddCommand(buildCmd)
}

// build resolves the theme from the flag or config.toml and runs a full build.
func build(root string, themeName string, skip bool) (*application.Mdblog, error) {
	if themeName == "" {
		cfg, err := config.Load(root)
		if err != nil {
			return nil, err
		}
		themeName = cfg.Blog.Theme
	}

	var opts []application.Option
	if skip {
		opts = append(opts, application.WithSkipInvalid())
	}

	blog := application.New(root, opts...)
	if err := blog.Build(themeName); err != nil {
		return nil, err
	}

	log.Info().Str("output", blog.OutputDir(themeName)).Int("posts", len(blog.Posts())).Msg("build finished")
	return blog, nil
}
