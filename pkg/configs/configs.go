package configs

type Configs struct {
	ApplicationEnv      string `mapstructure:"app_env"`
	ApplicationLogLevel string `mapstructure:"app_log_level"`
	ApplicationName     string `mapstructure:"app_name"`
	ApplicationPort     int    `mapstructure:"app_port"`
	AppGcPercentage     int    `mapstructure:"app_gc_percentage"`

	//serving-config
	DefaultInvocationsAccept string `mapstructure:"serving_defaultInvocationsAccept"`
	ModelSchema              string `mapstructure:"serving_modelSchema"`
	MaxConcurrentTransforms  int    `mapstructure:"serving_maxConcurrentTransforms"`
	MaxPayloadInMB           int    `mapstructure:"serving_maxPayloadInMb"`

	//prediction-cache-config
	PredictionCacheEnabled   bool   `mapstructure:"predictionCache_enabled"`
	PredictionCacheTTL       int    `mapstructure:"predictionCache_ttlSec"`
	InMemoryCacheSizeInBytes string `mapstructure:"in-memory-cache_size-in-bytes"`

	//telegraf-config
	MetricsSamplingRate string `mapstructure:"metrics_sampling_rate"`
	Telegraf_Host       string `mapstructure:"telegraf_host"`
	Telegraf_Port       string `mapstructure:"telegraf_port"`
}

type DynamicConfigs struct {
}

type AppConfigs struct {
	Configs        Configs
	DynamicConfigs DynamicConfigs
}

func (a *AppConfigs) GetStaticConfig() interface{} {
	return &a.Configs
}

func (a *AppConfigs) GetDynamicConfig() interface{} {
	return &a.Configs
}
