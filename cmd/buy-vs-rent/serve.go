package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlavoie/buy-vs-rent/internal/server"
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveConfigPath string
	serveAddress    string
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP projection API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := server.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if serveAddress != "" {
			cfg.Address = serveAddress
		}

		logger, err := initializeLogger(cfg.Logging, serveLogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = logger.Sync()
		}()

		srv := &http.Server{
			Addr:    cfg.Address,
			Handler: server.NewHandler(logger, cfg.RequestSizeBytes(), version),
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server",
				zap.String("op", "main"),
			)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address override")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd)
}
