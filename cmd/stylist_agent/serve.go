package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pixie/outfit-stylist/internal/config"
	"github.com/pixie/outfit-stylist/internal/server"
	"github.com/pixie/outfit-stylist/internal/store"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running the outfit recommendation pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var, then 10000)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if cfg.WeatherAPIKey == "" {
		log.Println("Warning: WEATHER_API_KEY not set, weather context will use seasonal mock data")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, generated images will use a placeholder")
	}

	ctx := context.Background()
	sessions := store.NewMemory()
	orchestrator, closeClient, err := buildOrchestrator(ctx, cfg, sessions, nil)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer closeClient()

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
	}, orchestrator, sessions)

	return srv.Start()
}

// loadMergedConfig layers environment variables over an optional config file.
func loadMergedConfig(path string) (config.Config, error) {
	cfg := config.FromEnv()
	if path == "" {
		return cfg, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.MergeWithDefaults(*fileCfg), nil
}
