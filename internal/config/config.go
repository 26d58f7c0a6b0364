package config

import "fmt"

// Config holds all petal configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Retention RetentionConfig
	LLM       LLMConfig
}

type ServerConfig struct {
	Bind string
	Port int
}

type StorageConfig struct {
	// Dir is the wellness-log directory. Empty means resolve at runtime
	// via store.DefaultDataDir().
	Dir string
}

type RetentionConfig struct {
	Enabled bool
	Hour    int // local hour-of-day for the daily sweep
}

type LLMConfig struct {
	Provider    string // "ollama"
	OllamaURL   string
	OllamaModel string // e.g. "gemma3n:e4b"
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 3001,
		},
		Retention: RetentionConfig{
			Enabled: true,
			Hour:    2,
		},
		LLM: LLMConfig{
			Provider:    "ollama",
			OllamaModel: "gemma3n:e4b",
		},
	}
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
