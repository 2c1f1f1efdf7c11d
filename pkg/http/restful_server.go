package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

const ContextKeyRequestID = "request_id"

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	RateLimiterStore *RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientIP string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientIP)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientIP string) bool {
	limiter := rs.GetLimiter(clientIP)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientIP string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientIP, rate.Limit(clientRate), clientBurst)
}

// RequestID stamps every request with an id that rides on the response header
// and in the ingest logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(RequestID())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/data", rs.PostData)
	rs.Server.POST("/limiter", rs.PostLimiter)
}
