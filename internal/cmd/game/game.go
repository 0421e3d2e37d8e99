// Package game parses game command flags and runs the MCP server over the
// character damage service.
package game

import (
	"context"
	"flag"
	"log"

	platformcmd "github.com/soma-satoro/pyreach/internal/platform/cmd"
	gamemcp "github.com/soma-satoro/pyreach/internal/services/game/api/mcp"
	"github.com/soma-satoro/pyreach/internal/services/game/service"
	"github.com/soma-satoro/pyreach/internal/services/game/storage/sqlite"
)

// Config holds game command configuration.
type Config struct {
	DBPath string `env:"PYREACH_GAME_DB_PATH" envDefault:"game.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the store and serves the game tools over stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceGame, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		server := gamemcp.NewServer(service.New(store))
		return server.Serve(ctx)
	})
}
