package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"blogfeed/cmd/app"
	"blogfeed/internal/config"
	"blogfeed/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "blogfeed",
		Short:        "Minimal blog posting service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		imagesDir string
		staticDir string
		driver    string
	)

	cmd := &cobra.Command{
		Use:   "serve [bind] [db_path]",
		Short: "Serve the blog API",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// setting up config
			cfg := config.LoadConfig()

			if len(args) > 0 {
				cfg.ServerBind = args[0]
			}
			if len(args) > 1 {
				cfg.DB.Path = args[1]
			}
			if cmd.Flags().Changed("images-dir") {
				cfg.Storage.ImagesDir = imagesDir
			}
			if cmd.Flags().Changed("static-dir") {
				cfg.StaticDir = staticDir
			}
			if cmd.Flags().Changed("db-driver") {
				cfg.DB.Driver = driver
			}

			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&imagesDir, "images-dir", "images", "directory for uploaded and fetched images")
	cmd.Flags().StringVar(&staticDir, "static-dir", "static", "directory holding blog.html")
	cmd.Flags().StringVar(&driver, "db-driver", config.DriverSQLite, "database driver (sqlite3 or postgres)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start", zap.Error(err))
		return err
	}
	defer application.Close()

	server := &http.Server{
		Addr:              cfg.ServerBind,
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		// Starting the server
		log.Info("server started",
			zap.String("addr", cfg.ServerBind),
			zap.String("db_driver", cfg.DB.Driver),
			zap.String("storage", cfg.Storage.Backend),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
