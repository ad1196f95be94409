package config

import (
	"github.com/spf13/viper"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyEnabled, true)
	v.SetDefault(keyProvider, defaultProvider)
	v.SetDefault(keyDisplayWidth, defaultDisplayWidth)
	v.SetDefault(keyDisplayHeight, defaultDisplayHeight)
	v.SetDefault(keyDisplayDriver, defaultDisplayDriver)
	v.SetDefault(keyScrollSpeed, defaultScrollSpeed)
	v.SetDefault(keyScrollDelay, defaultScrollDelay)
	v.SetDefault(keyTargetFPS, defaultTargetFPS)
	v.SetDefault(keyUpdateInterval, defaultUpdateInterval.Seconds())
	v.SetDefault(keyCacheTTL, defaultCacheTTL.Seconds())
	v.SetDefault(keyMaxGames, defaultMaxGames)
	v.SetDefault(keyHTTPPort, defaultHTTPPort)
	v.SetDefault(keyMetricsEnabled, true)
	v.SetDefault(keyMetricsPort, defaultMetricsPort)
	v.SetDefault(keyMetricsService, defaultServiceName)
	v.SetDefault(keyOtlpEndpoint, "")
	v.SetDefault(keyOtlpInsecure, true)
	v.SetDefault(keySnapshotDir, defaultSnapshotDir)

	for i, id := range domain.AllLeagues {
		base := "leagues." + string(id)
		v.SetDefault(base+".enabled", true)
		v.SetDefault(base+".priority", i+1)
	}
}
