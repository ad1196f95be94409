package config

import (
	"log/slog"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

// validate clamps out-of-range values back to documented defaults. The
// daemon keeps running on bad config; it never aborts over a knob.
func validate(cfg Config, logger *slog.Logger) Config {
	if cfg.DisplayOptions.ScrollSpeed <= 0 {
		substituted(logger, keyScrollSpeed, cfg.DisplayOptions.ScrollSpeed, defaultScrollSpeed)
		cfg.DisplayOptions.ScrollSpeed = defaultScrollSpeed
	}
	if cfg.DisplayOptions.ScrollDelay < 0 {
		substituted(logger, keyScrollDelay, cfg.DisplayOptions.ScrollDelay, defaultScrollDelay)
		cfg.DisplayOptions.ScrollDelay = defaultScrollDelay
	}
	if cfg.DisplayOptions.TargetFPS <= 0 || cfg.DisplayOptions.TargetFPS > maxTargetFPS {
		substituted(logger, keyTargetFPS, cfg.DisplayOptions.TargetFPS, defaultTargetFPS)
		cfg.DisplayOptions.TargetFPS = defaultTargetFPS
	}
	if cfg.Data.UpdateInterval <= 0 {
		substituted(logger, keyUpdateInterval, cfg.Data.UpdateInterval, defaultUpdateInterval)
		cfg.Data.UpdateInterval = defaultUpdateInterval
	}
	if cfg.Data.CacheTTL <= 0 {
		substituted(logger, keyCacheTTL, cfg.Data.CacheTTL, defaultCacheTTL)
		cfg.Data.CacheTTL = defaultCacheTTL
	}
	if cfg.Data.MaxGamesPerLeague <= 0 {
		substituted(logger, keyMaxGames, cfg.Data.MaxGamesPerLeague, defaultMaxGames)
		cfg.Data.MaxGamesPerLeague = defaultMaxGames
	}
	if cfg.Display.Width <= 0 {
		substituted(logger, keyDisplayWidth, cfg.Display.Width, defaultDisplayWidth)
		cfg.Display.Width = defaultDisplayWidth
	}
	if cfg.Display.Height <= 0 {
		substituted(logger, keyDisplayHeight, cfg.Display.Height, defaultDisplayHeight)
		cfg.Display.Height = defaultDisplayHeight
	}
	if cfg.Provider != "espn" && cfg.Provider != "fixture" {
		substituted(logger, keyProvider, cfg.Provider, defaultProvider)
		cfg.Provider = defaultProvider
	}
	if cfg.Display.Driver != "simws" && cfg.Display.Driver != "null" {
		substituted(logger, keyDisplayDriver, cfg.Display.Driver, defaultDisplayDriver)
		cfg.Display.Driver = defaultDisplayDriver
	}
	for id, lc := range cfg.Leagues {
		if lc.Priority < 0 {
			substituted(logger, "leagues."+string(id)+".priority", lc.Priority, 99)
			lc.Priority = 99
			cfg.Leagues[id] = lc
		}
	}
	return cfg
}

func substituted(logger *slog.Logger, key string, got, fallback any) {
	logging.Warn(logger, "invalid config value, using default",
		"key", key, "value", got, "default", fallback)
}
