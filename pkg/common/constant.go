package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyTempDBType string = "TEMP_DB_TYPE"
	EnvKeyTempDbPath string = "TEMP_DB_PATH"

	EnvKeyTempHttpHostPort string = "TEMP_HTTP_HOST_PORT"

	EnvKeyTempDefaultRate  string = "TEMP_DEFAULT_RATE"
	EnvKeyTempDefaultBurst string = "TEMP_DEFAULT_BURST"

	EnvKeyTempTzOffsetHours string = "TEMP_TZ_OFFSET_HOURS"
	EnvKeyTempReportOutDir  string = "TEMP_REPORT_OUT_DIR"

	DefaultDbPath        string = "temperature_data.db"
	DefaultTzOffsetHours int    = 4

	LoggerNameMonitorCore      string = "monitor_core"
	LoggerNameRestfulServer    string = "restful_server"
	LoggerNameReportCli        string = "report_cli"
	LoggerFieldMonitorCategory string = "category"
	LoggerCategoryReading      string = "reading"
	LoggerCategoryReport       string = "report"
	LoggerCategoryRender       string = "render"
	LoggerFieldRequestID       string = "request_id"
)
