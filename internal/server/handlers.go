package server

import (
	"net/http"
	"time"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/serving"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const batchStrategySingleRecord = "SINGLE_RECORD"

func RegisterRoutes(router *gin.Engine, appConfigs *configs.AppConfigs) {
	router.GET("/ping", handlePing)
	router.GET("/execution-parameters", executionParametersHandler(appConfigs))
	router.POST("/invocations", handleInvocations)
}

// handlePing is the shallow liveness check.
func handlePing(c *gin.Context) {
	c.Status(http.StatusOK)
}

func executionParametersHandler(appConfigs *configs.AppConfigs) gin.HandlerFunc {
	param := BatchExecutionParameter{
		MaxConcurrentTransforms: appConfigs.Configs.MaxConcurrentTransforms,
		BatchStrategy:           batchStrategySingleRecord,
		MaxPayloadInMB:          appConfigs.Configs.MaxPayloadInMB,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, param)
	}
}

// handleInvocations routes the prediction request to the format adapter matching
// its content type. An empty body is 204 for every format; any pipeline error is
// 400 with the error message as body.
func handleInvocations(c *gin.Context) {
	startTime := time.Now()

	body, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if len(body) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	contentType := c.ContentType()
	accept := c.GetHeader("Accept")
	tags := []string{"content-type", contentType}
	metrics.Count("serving.invocations.request.total", 1, tags)

	var unit *serving.ResponseUnit
	switch contentType {
	case serving.MediaTypeJSON:
		unit, err = serving.Instance().ProcessJSON(body, accept)
	case serving.MediaTypeCSV:
		unit, err = serving.Instance().ProcessCSV(body, accept)
	case serving.MediaTypeJSONLines:
		// gin strips media type parameters, so the ;data=text variant lands
		// here as well.
		unit, err = serving.Instance().ProcessJSONLines(body, accept)
	default:
		c.String(http.StatusUnsupportedMediaType, "unsupported content type "+contentType)
		return
	}

	if err != nil {
		logger.Error("Error in processing current request", err)
		metrics.Count("serving.invocations.request.error", 1, tags)
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	metrics.Timing("serving.invocations.request.latency", time.Since(startTime), tags)
	c.Data(http.StatusOK, unit.ContentType, []byte(unit.Body))
}
