package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/davideasaf/neuralnotes"
	"github.com/davideasaf/neuralnotes/internal/server"
)

var (
	serveAddr   string
	serveStatic string
	serveWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content JSON API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.Default()

		site := neuralnotes.New(contentRoot,
			neuralnotes.WithConfigPath(configPath),
			neuralnotes.WithLogger(logger),
		)

		ctx := context.Background()

		// Warm the caches before accepting requests.
		site.Config.Load(ctx)
		site.Notes(ctx)
		site.Projects(ctx)

		if serveWatch {
			if err := site.Watch(ctx); err != nil {
				fatal("Error starting content watcher", err)
			}
			logger.Info("watching content for changes", "root", contentRoot)
		}

		srv := server.New(server.Config{
			Addr:      serveAddr,
			StaticDir: serveStatic,
			Logger:    logger,
		}, site.Resolver, site.Config)

		if err := srv.Start(); err != nil {
			fatal("Error running server", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveStatic, "static", "", "Static directory for the client app")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload collections when content changes")
}
