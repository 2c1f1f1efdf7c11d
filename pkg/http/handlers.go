package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/models"
)

type ReadingRequest struct {
	OfflineTemperature float64 `json:"offlineTemperature"`
	OnlineTemperature  float64 `json:"onlineTemperature"`
	IsOpen             bool    `json:"isOpen"`
	ConditionCode      int     `json:"conditionCode"`
}

// shape keys are the wire names so validation issues enumerate the exact
// fields the client has to fix
var readingRequestSchema = z.Struct(z.Shape{
	"offlineTemperature": z.Float64().Required(),
	"onlineTemperature":  z.Float64().Required(),
	"isOpen":             z.Bool().Required(),
	"conditionCode":      z.Int().Required(),
})

func (rs *RestfulServer) PostData(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldRequestID, c.GetString(ContextKeyRequestID)),
	)

	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest

	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		fields := make([]string, 0, len(err))
		for field := range err {
			if strings.HasPrefix(field, "$") {
				continue
			}
			fields = append(fields, field)
		}
		sort.Strings(fields)

		logger.Warn("Rejected reading payload", zap.Strings("fields", fields))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "missing fields: " + strings.Join(fields, ", "),
			"fields": fields,
		})
		return
	}

	reading := models.Reading{
		OfflineTemperature: req.OfflineTemperature,
		OnlineTemperature:  req.OnlineTemperature,
		IsOpen:             req.IsOpen,
		ConditionCode:      req.ConditionCode,
	}

	if err := rs.Monitor.Reading.InsertReading(&reading); err != nil {
		logger.Error("Failed to save reading", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(c.ClientIP(), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
