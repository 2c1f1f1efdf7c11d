package monitor

import (
	"sync"
	"time"

	"liyu1981.xyz/temperature-report-service/pkg/db"
	"liyu1981.xyz/temperature-report-service/pkg/models"
)

//go:generate mockgen -source=monitor.go -destination=mocks/mock_monitor.go -package=mocks

type IReading interface {
	InsertReading(input *models.Reading) error
	ReadingsBetween(startUTC, endUTC int64) ([]models.Reading, error)
}

type IReport interface {
	BuildDailyReport(date string) (*DailyReport, error)
}

type Monitor struct {
	Db db.DB

	// Zone is the fixed local offset all reports are computed in. When nil,
	// the env-configured zone is used.
	Zone *time.Location

	// writeMu serializes reading inserts so concurrent ingest requests never
	// interleave inside a write transaction.
	writeMu sync.Mutex

	Reading IReading
	Report  IReport
}

type ServiceOpts struct {
	Reading IReading
	Report  IReport
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Reading != nil {
		m.Reading = opts.Reading
	}
	if opts.Report != nil {
		m.Report = opts.Report
	}
	return m
}

func (m *Monitor) zone() *time.Location {
	if m.Zone == nil {
		return ZoneFromEnv()
	}
	return m.Zone
}
