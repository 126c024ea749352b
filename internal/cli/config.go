package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcoot/tetris-go/internal/factory"
	redisstorage "github.com/mcoot/tetris-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	RedisURL    string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: getEnvOrDefault("TETRIS_STORAGE", factory.StorageTypeRedis),
		RedisURL:    getEnvOrDefault("TETRIS_REDIS_URL", redisstorage.DefaultConfig().URL),
		Output:      "text",
		Verbose:     false,
	}
}

// Logger returns a JSON logger writing to w. Only warnings are shown unless
// verbose output was requested.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig builds the application config for the selected storage
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
