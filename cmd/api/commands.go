package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ipfiling/internal/adapter/http/routes"
	"ipfiling/internal/adapter/persistence/repository"
	"ipfiling/internal/app"
	"ipfiling/internal/domain/entities"
	"ipfiling/internal/infrastructure/config"
	"ipfiling/internal/infrastructure/database"
	"ipfiling/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ipfiling-api",
		Short:         "Payment confirmation, order and quote service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newTablesCmd(), newQuoteCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
}

func newTablesCmd() *cobra.Command {
	tables := &cobra.Command{
		Use:   "tables",
		Short: "DynamoDB table management",
	}
	tables.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create every table and index the service needs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ddb, err := database.ConnectDynamoDB(cmd.Context(), logger)
			if err != nil {
				return err
			}
			return repository.CreateTables(cmd.Context(), ddb, repository.TablesFromEnv(), logger)
		},
	})
	return tables
}

func newQuoteCmd() *cobra.Command {
	quote := &cobra.Command{
		Use:   "quote",
		Short: "Back-office quote operations",
	}
	quote.AddCommand(&cobra.Command{
		Use:   "finalize <quote-id>",
		Short: "Finalize a draft quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, logger, err := buildContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			defer c.Close()

			n, err := c.Quotes.Finalize(cmd.Context(), entities.SystemActor, args[0])
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("quote %s not finalized: missing or not a draft", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "quote %s finalized\n", args[0])
			return nil
		},
	})
	return quote
}

func buildContainer(ctx context.Context) (*app.Container, *zap.Logger, error) {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	c, err := app.New(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return c, logger, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, logger, err := buildContainer(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer c.Close()

	srv := routes.NewServer(":"+c.Config.Port, c.Router())
	errCh := make(chan error, 1)
	go func() {
		logger.Info("[app] http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[app] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
