package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/brd-generator/internal/config"
	"github.com/jonathan/brd-generator/internal/llm"
	"github.com/jonathan/brd-generator/internal/pipeline"
	"github.com/jonathan/brd-generator/internal/server"
	"github.com/jonathan/brd-generator/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running the BRD generation pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Port = servePort
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer func() { _ = client.Close() }()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if closer, ok := st.(interface{ Close() }); ok {
		defer closer.Close()
	}

	pipe := pipeline.New(client, st, cfg)

	srv, err := server.New(cfg, pipe, st)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// openStore picks Postgres when DATABASE_URL is set, file storage otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		log.Println("Using Postgres BRD store")
		return store.NewPostgresStore(ctx, cfg.DatabaseURL)
	}
	log.Printf("Using file BRD store at %s", cfg.StorageDir)
	return store.NewFileStore(cfg.StorageDir)
}
