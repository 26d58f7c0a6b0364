package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/petalhq/petal/internal/config"
	"github.com/petalhq/petal/internal/engine"
	"github.com/petalhq/petal/internal/llm"
	"github.com/petalhq/petal/internal/server"
	"github.com/petalhq/petal/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

// loadConfig applies environment overrides on top of the defaults.
func loadConfig() config.Config {
	cfg := config.Default()

	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Server.Port = n
		}
	}
	if dir := os.Getenv("PETAL_DATA_DIR"); dir != "" {
		cfg.Storage.Dir = dir
	}
	if os.Getenv("DAILY_CLEANUP") == "false" {
		cfg.Retention.Enabled = false
	}
	if hour := os.Getenv("CLEANUP_HOUR"); hour != "" {
		if n, err := strconv.Atoi(hour); err == nil && n >= 0 && n <= 23 {
			cfg.Retention.Hour = n
		}
	}
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		cfg.LLM.OllamaURL = url
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		cfg.LLM.OllamaModel = model
	}
	return cfg
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open log store: %w", err)
	}

	var llmClient llm.Client
	if c, err := llm.NewClient(cfg.LLM); err != nil {
		fmt.Fprintf(os.Stderr, "warning: summarizer not configured (%v), summaries disabled\n", err)
	} else {
		llmClient = c
		fmt.Fprintf(os.Stderr, "  llm: %s (%s)\n", cfg.LLM.Provider, cfg.LLM.OllamaModel)
	}

	if cfg.Retention.Enabled {
		sweeper := engine.NewSweeper(st, cfg.Retention.Hour)
		sweeper.Start()
		defer sweeper.Stop()
		fmt.Fprintf(os.Stderr, "  retention: daily at %02d:00, keeping 7 days\n", cfg.Retention.Hour)
	} else {
		fmt.Fprintln(os.Stderr, "  retention: disabled")
	}

	srv := server.New(st, llmClient, VersionString())
	addr := cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Fprintf(os.Stderr, "petal serving on %s\n", addr)
		fmt.Fprintf(os.Stderr, "  logs: %s\n", st.Dir())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-done
	fmt.Fprintln(os.Stderr, "\nshutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}

// openStore resolves the data directory and opens the store. A directory
// that cannot be created is fatal.
func openStore(cfg config.Config) (*store.Store, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		var err error
		dir, err = store.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(dir)
}
