package monitor_test

import (
	"testing"

	"go.uber.org/mock/gomock"
	"liyu1981.xyz/temperature-report-service/pkg/db"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
	"liyu1981.xyz/temperature-report-service/pkg/monitor/mocks"
)

// The helper lives in an external test package: mocks must import monitor for
// the report types, so in-package tests cannot import mocks back.
func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockIReading, useMockIReport bool) (
	*gomock.Controller,
	*monitor.Monitor,
	*mocks.MockIReading,
	*mocks.MockIReport,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIReport := mocks.NewMockIReport(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	monitorInstance := &monitor.Monitor{
		Db:   *dbInstance,
		Zone: monitor.FixedZone(4),
	}

	readingService := monitorInstance.GetIReading()
	if useMockIReading {
		readingService = mockIReading
	}

	reportService := monitorInstance.GetIReport()
	if useMockIReport {
		reportService = mockIReport
	}

	monitorInstance.WithServices(monitor.ServiceOpts{
		Reading: readingService,
		Report:  reportService,
	})

	return ctrl, monitorInstance, mockIReading, mockIReport
}
