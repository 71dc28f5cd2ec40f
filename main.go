package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/muhammaduzair9889/portfolio/internal/config"
	"github.com/muhammaduzair9889/portfolio/internal/content"
	"github.com/muhammaduzair9889/portfolio/internal/tui"
	"github.com/muhammaduzair9889/portfolio/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Muhammad Uzair's portfolio, on the web or in the terminal",
		SilenceUsage: true,
	}
	cmd.AddCommand(newServeCommand(), newTUICommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			site, err := content.Load()
			if err != nil {
				return err
			}
			// the terminal belongs to the UI; only warnings go to stderr
			cfg.LogLevel = max(cfg.LogLevel, slog.LevelWarn)
			return tui.Run(cmd.Context(), site, tui.WithLogger(cfg.NewLogger(os.Stderr)))
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	site, err := content.Load()
	if err != nil {
		return err
	}
	r, err := web.New(site, cfg.AssetsDir, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("portfolio listening", "addr", srv.Addr, "assets", cfg.AssetsDir)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
