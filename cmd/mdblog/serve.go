package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var (
	servePort  int
	serveTheme string
)

var serveCmd = &cobra.Command{
	Use:   "serve [root]",
	Short: "Build the blog and serve it locally",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		blog, err := build(rootArg(args), serveTheme, false)
		if err != nil {
			return err
		}

		srv, err := blog.Server(servePort)
		if err != nil {
			return err
		}

		errs := make(chan error, 1)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
			close(errs)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		select {
		case err := <-errs:
			return err
		case <-quit:
		}

		log.Info().Msg("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 5000, "port to listen on")
	serveCmd.Flags().StringVar(&serveTheme, "theme", "", "theme to build with (defaults to config.toml)")
	rootCmd.AddCommand(serveCmd)
}
