package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/logging"
)

// DisplayOptions control scroll behaviour of the ticker.
type DisplayOptions struct {
	ScrollSpeed float64 // pixels per frame
	ScrollDelay float64 // seconds to pause before each scroll cycle
	TargetFPS   int
}

// DisplayConfig describes the matrix the cards are sized for.
type DisplayConfig struct {
	Width  int
	Height int
	Driver string // simws or null
}

// DataSettings control fetch cadence and caching.
type DataSettings struct {
	UpdateInterval    time.Duration
	CacheTTL          time.Duration
	MaxGamesPerLeague int
}

// HTTPConfig controls the operational HTTP listener.
type HTTPConfig struct {
	Port string
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// SnapshotsConfig controls on-disk scoreboard persistence.
type SnapshotsConfig struct {
	Dir string
}

// Config holds runtime configuration for the ticker daemon.
type Config struct {
	Enabled        bool
	Provider       string
	Display        DisplayConfig
	DisplayOptions DisplayOptions
	Data           DataSettings
	Leagues        map[domain.LeagueID]domain.LeagueConfig
	HTTP           HTTPConfig
	Metrics        MetricsConfig
	Snapshots      SnapshotsConfig
}

// Load reads the persisted JSON config (plus TICKER_* env overrides) with
// sensible defaults. Malformed files or values are logged and replaced by
// defaults; Load never fails.
func Load(path string, logger *slog.Logger) Config {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		logging.Warn(logger, "config file not loaded, using defaults", "error", err)
	}

	cfg := Config{
		Enabled:  v.GetBool(keyEnabled),
		Provider: v.GetString(keyProvider),
		Display: DisplayConfig{
			Width:  v.GetInt(keyDisplayWidth),
			Height: v.GetInt(keyDisplayHeight),
			Driver: v.GetString(keyDisplayDriver),
		},
		DisplayOptions: DisplayOptions{
			ScrollSpeed: v.GetFloat64(keyScrollSpeed),
			ScrollDelay: v.GetFloat64(keyScrollDelay),
			TargetFPS:   v.GetInt(keyTargetFPS),
		},
		Data: DataSettings{
			UpdateInterval:    secondsDuration(v.GetFloat64(keyUpdateInterval)),
			CacheTTL:          secondsDuration(v.GetFloat64(keyCacheTTL)),
			MaxGamesPerLeague: v.GetInt(keyMaxGames),
		},
		Leagues: loadLeagues(v),
		HTTP: HTTPConfig{
			Port: v.GetString(keyHTTPPort),
		},
		Metrics: MetricsConfig{
			Enabled:      v.GetBool(keyMetricsEnabled),
			Port:         v.GetString(keyMetricsPort),
			ServiceName:  v.GetString(keyMetricsService),
			OtlpEndpoint: v.GetString(keyOtlpEndpoint),
			OtlpInsecure: v.GetBool(keyOtlpInsecure),
		},
		Snapshots: SnapshotsConfig{
			Dir: v.GetString(keySnapshotDir),
		},
	}

	return validate(cfg, logger)
}

func loadLeagues(v *viper.Viper) map[domain.LeagueID]domain.LeagueConfig {
	leagues := make(map[domain.LeagueID]domain.LeagueConfig, len(domain.AllLeagues))
	for _, id := range domain.AllLeagues {
		base := "leagues." + string(id)
		leagues[id] = domain.LeagueConfig{
			Enabled:  v.GetBool(base + ".enabled"),
			Priority: v.GetInt(base + ".priority"),
		}
	}
	return leagues
}

func secondsDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
