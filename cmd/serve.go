package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devclub-portal/config"
	FiberApp "devclub-portal/fiber"
	"devclub-portal/route"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set; /auth/login will fail")
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	source, err := openSource(loadCtx, cfg)
	cancelLoad()
	if err != nil {
		return err
	}
	defer source.close()

	app := FiberApp.SetupFiber(cfg)
	route.SetupRoutes(app, cfg, source.repo, source.credentials)

	listenErr := make(chan error, 1)
	go func() {
		log.Infof("server running on :%s", cfg.Port)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	return nil
}
