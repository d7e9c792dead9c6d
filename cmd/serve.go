package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fixture-server/core/config"
	"fixture-server/core/logger"
	"fixture-server/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	hostFlag string
	portFlag string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fixture server",
	Long:  `Loads .env and the environment, then serves the page and fixtures until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := applyServerFlags(&cfg.Server, hostFlag, portFlag); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app, err := newApp(cfg, logg)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.Bool("debug", cfg.Server.Debug),
				zap.String("driver", cfg.Content.Driver),
			)
			errCh <- app.Listen(cfg.Server.Address())
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// applyServerFlags overrides the configured address with non-empty flag values.
func applyServerFlags(cfg *server.Config, host, port string) error {
	if host != "" {
		cfg.Host = host
	}
	if port != "" {
		cfg.Port = port
	}
	return cfg.Validate()
}

func init() {
	serveCmd.Flags().StringVar(&hostFlag, "host", "", "Host to bind (overrides SERVER_HOST)")
	serveCmd.Flags().StringVar(&portFlag, "port", "", "Port to listen on (overrides SERVER_PORT)")
	RootCmd.AddCommand(serveCmd)
}
