package server

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered. Split from
// InitServer so tests can drive the full HTTP surface with httptest.
func NewRouter(appConfigs *configs.AppConfigs) *gin.Engine {
	env := appConfigs.Configs.ApplicationEnv
	if env == "prod" || env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Telemetry())

	RegisterRoutes(router, appConfigs)
	return router
}

func InitServer(appConfigs *configs.AppConfigs) {
	router := NewRouter(appConfigs)

	address := fmt.Sprintf(":%d", appConfigs.Configs.ApplicationPort)
	logger.Info(fmt.Sprintf("tabflow started on port %s", address))
	if err := router.Run(address); err != nil {
		logger.Panic("Failed to start tabflow application!", err)
	}
}
