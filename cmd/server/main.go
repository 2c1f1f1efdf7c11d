package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/db"
	tempHttp "liyu1981.xyz/temperature-report-service/pkg/http"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	tempDbType := os.Getenv(common.EnvKeyTempDBType)
	switch tempDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown TEMP_DB_TYPE: " + tempDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTempHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyTempDefaultRate), 64); err != nil {
		log.Fatal("Invalid TEMP_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyTempDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid TEMP_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	monitorCore := &monitor.Monitor{
		Db:   *dbInstance,
		Zone: monitor.ZoneFromEnv(),
	}
	monitorCore.WithServices(monitor.ServiceOpts{
		Reading: monitorCore.GetIReading(),
		Report:  monitorCore.GetIReport(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":5000"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &tempHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          monitorCore,
		RateLimiterStore: tempHttp.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
