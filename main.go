package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/logging"
	"starwars/internal/repositories"
	"starwars/internal/seed"
	"starwars/internal/server"
	"starwars/internal/services"
	"starwars/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starwars-api",
		Short:         "REST API for Star Wars characters, planets and user favorites",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "consume",
		Short: "Log the entity events published to RabbitMQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsume()
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, characters and planets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context())
		},
	})
	return rootCmd
}

// setup loads the configuration, initializes logging and opens the migrated database.
func setup() (config.Config, *gorm.DB, error) {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Open(database.Config{URL: cfg.DatabaseURL, LogLevel: cfg.LogLevel})
	if err != nil {
		return cfg, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return cfg, nil, err
	}
	return cfg, db, nil
}

func runServe() error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	opts := server.Options{CORSOrigins: cfg.CORSOrigins, AccessLog: true}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		opts.Publisher = mqClient
		logging.Info().Str("queue", rabbitmq.DefaultQueue).Msg("publishing entity events")
	}

	app := server.New(db, opts)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Addr()).Msg("starting server")
		errCh <- app.Listen(cfg.Addr())
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logging.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logging.Error().Err(err).Msg("error during shutdown")
	}
	logging.Info().Msg("server gracefully stopped")
	return nil
}

func runConsume() error {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.RabbitMQURL == "" {
		return errors.New("RABBITMQ_URL is required to consume events")
	}

	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
	}
	defer mqClient.Close()

	if err := mqClient.ConsumeEvents(rabbitmq.HandleEventMessage); err != nil {
		return fmt.Errorf("failed to start RabbitMQ consumer: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("stopping event consumer")
	return nil
}

func runSeed(ctx context.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	_, err = seed.Run(ctx, seed.Services{
		Users:      services.NewUserService(repositories.NewGORMUserRepository(db), nil),
		Characters: services.NewCharacterService(repositories.NewGORMCharacterRepository(db), nil),
		Planets:    services.NewPlanetService(repositories.NewGORMPlanetRepository(db), nil),
	}, cfg.SeedPassword)
	return err
}
