package main

import (
	"context"
	"fmt"

	"github.com/jonathan/prompt-enhancer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing POST /enhance, POST /suggest-task, GET /catalog,
GET /status and GET /health. Without an API key the server still starts and the AI
endpoints answer 503.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(context.Background(), cmd)
	if err != nil {
		return err
	}

	port := a.cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	if a.client == nil {
		a.log.Warn("no API key configured; /enhance and /suggest-task will answer 503")
	}

	srv, err := server.New(server.Config{
		Port:   port,
		Client: a.client,
		Logger: a.log,
	})
	if err != nil {
		a.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	// the server closes the client on shutdown
	return srv.Start()
}
