package configs

import (
	"log"

	"github.com/spf13/viper"
)

func InitConfig(appConfigs *AppConfigs) {
	InitEnv()

	staticConfig := appConfigs.GetStaticConfig()
	cfg, ok := staticConfig.(*Configs)
	if !ok {
		log.Fatal("Failed to cast static config to *Configs")
	}

	// Manually bind environment variables to mapstructure keys
	// This ensures proper mapping from env vars to struct fields
	bindEnvVars()

	// Bind environment variables to config keys
	// This maps environment variables to struct fields using mapstructure tags
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("Failed to unmarshal config from environment: %v", err)
	}

	applyDefaults(cfg)

	log.Println("Configuration loaded from environment variables")
}

func bindEnvVars() {
	// Application config
	viper.BindEnv("app_env", "APP_ENV")
	viper.BindEnv("app_log_level", "APP_LOG_LEVEL")
	viper.BindEnv("app_name", "APP_NAME")
	viper.BindEnv("app_port", "APP_PORT")
	viper.BindEnv("app_gc_percentage", "APP_GC_PERCENTAGE")

	// Serving config
	viper.BindEnv("serving_defaultInvocationsAccept", "DEFAULT_INVOCATIONS_ACCEPT")
	viper.BindEnv("serving_modelSchema", "MODEL_SCHEMA")
	viper.BindEnv("serving_maxConcurrentTransforms", "MAX_CONCURRENT_TRANSFORMS")
	viper.BindEnv("serving_maxPayloadInMb", "MAX_PAYLOAD_IN_MB")

	// Prediction cache config
	viper.BindEnv("predictionCache_enabled", "PREDICTION_CACHE_ENABLED")
	viper.BindEnv("predictionCache_ttlSec", "PREDICTION_CACHE_TTL_SEC")
	viper.BindEnv("in-memory-cache_size-in-bytes", "IN_MEMORY_CACHE_SIZE_IN_BYTES")

	// Metrics / Telegraf config
	viper.BindEnv("metrics_sampling_rate", "METRIC_SAMPLING_RATE")
	viper.BindEnv("telegraf_host", "TELEGRAF_HOST")
	viper.BindEnv("telegraf_port", "TELEGRAF_PORT")
}

func applyDefaults(cfg *Configs) {
	if cfg.ApplicationName == "" {
		cfg.ApplicationName = "tabflow"
	}
	if cfg.ApplicationLogLevel == "" {
		cfg.ApplicationLogLevel = "INFO"
	}
	if cfg.ApplicationPort == 0 {
		cfg.ApplicationPort = 8080
	}
	if cfg.MaxConcurrentTransforms == 0 {
		cfg.MaxConcurrentTransforms = 1
	}
	if cfg.MaxPayloadInMB == 0 {
		cfg.MaxPayloadInMB = 5
	}
	if cfg.MetricsSamplingRate == "" {
		cfg.MetricsSamplingRate = "1.0"
	}
}
