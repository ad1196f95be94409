package config

import "time"

const (
	envPrefix         = "TICKER"
	defaultConfigName = "config"

	keyEnabled        = "enabled"
	keyProvider       = "provider"
	keyDisplayWidth   = "display.width"
	keyDisplayHeight  = "display.height"
	keyDisplayDriver  = "display.driver"
	keyScrollSpeed    = "display_options.scroll_speed"
	keyScrollDelay    = "display_options.scroll_delay"
	keyTargetFPS      = "display_options.target_fps"
	keyUpdateInterval = "data_settings.update_interval"
	keyCacheTTL       = "data_settings.cache_ttl"
	keyMaxGames       = "data_settings.max_games_per_league"
	keyHTTPPort       = "http.port"
	keyMetricsEnabled = "metrics.enabled"
	keyMetricsPort    = "metrics.port"
	keyMetricsService = "metrics.service_name"
	keyOtlpEndpoint   = "metrics.otlp_endpoint"
	keyOtlpInsecure   = "metrics.otlp_insecure"
	keySnapshotDir    = "snapshots.dir"

	defaultProvider       = "espn"
	defaultDisplayWidth   = 64
	defaultDisplayHeight  = 32
	defaultDisplayDriver  = "simws"
	defaultScrollSpeed    = 1.0
	defaultScrollDelay    = 0.02
	defaultTargetFPS      = 120
	defaultUpdateInterval = 60 * time.Second
	defaultCacheTTL       = 60 * time.Second
	defaultMaxGames       = 50
	defaultHTTPPort       = "8080"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "ledmatrix-live-stats"
	defaultSnapshotDir    = "data/snapshots"

	// Upper bound for target_fps; anything above is clamped to the default.
	maxTargetFPS = 240
)
