package main

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/schema"
	"github.com/Meesho/BharatMLStack/tabflow/handlers/serving"
	"github.com/Meesho/BharatMLStack/tabflow/internal/server"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/executor"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/inmemorycache"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/metrics"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"
)

var AppConfigs configs.AppConfigs

func main() {
	viper.AutomaticEnv()
	viper.SetConfigName("application") // file name without .env
	viper.SetConfigType("env")         // file type
	viper.AddConfigPath(".")           // directory

	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("Error reading config file, relying on environment variables")
	}
	configs.InitConfig(&AppConfigs)
	logger.InitLogger(&AppConfigs)
	metrics.InitMetrics(&AppConfigs)
	if AppConfigs.Configs.PredictionCacheEnabled {
		inmemorycache.InitInMemoryCache()
	}

	// Model runtimes plug in here: swap the passthrough for a Transformer backed
	// by the deployed model.
	transformer := &executor.Passthrough{OutputName: outputFieldName(&AppConfigs)}
	serving.InitServingHandler(&AppConfigs, transformer)
	server.InitServer(&AppConfigs)
}

func outputFieldName(appConfigs *configs.AppConfigs) string {
	if appConfigs.Configs.ModelSchema == "" {
		return "prediction"
	}
	sch, err := schema.Parse(appConfigs.Configs.ModelSchema)
	if err != nil {
		logger.Error("Configured schema is not parseable, passthrough output defaults to prediction", err)
		return "prediction"
	}
	return sch.Output.Name
}
