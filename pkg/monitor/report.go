package monitor

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/models"
)

var ErrNoDataForPeriod = errors.New("no data for period")

// DailyStats is the aggregate over all readings in one local day. Averages
// and the open percentage are rounded to one decimal for display; min/max
// keep native precision.
type DailyStats struct {
	Date          string
	TotalReadings int

	// OpenMinutes is really a count of open-state readings; the name survives
	// from the sensor's one-sample-per-minute schedule.
	OpenMinutes    int
	OpenPercentage float64

	AvgOffline float64
	MinOffline float64
	MaxOffline float64

	AvgOnline float64
	MinOnline float64
	MaxOnline float64

	ConditionStats      map[int]int
	MostCommonCondition int
}

// SeriesPoint is one reading with its timestamp shifted to local time, in
// ascending order within a DailyReport.
type SeriesPoint struct {
	Time               time.Time
	OfflineTemperature float64
	OnlineTemperature  float64
	IsOpen             int
	ConditionCode      int
}

type DailyReport struct {
	Stats  DailyStats
	Series []SeriesPoint
	Zone   *time.Location
}

func (m *Monitor) buildDailyReport(date string) (*DailyReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldMonitorCategory, common.LoggerCategoryReport),
	)

	zone := m.zone()

	// validate the date before touching the store
	window, err := ResolveDayWindow(date, zone)
	if err != nil {
		return nil, err
	}

	readings, err := m.Reading.ReadingsBetween(window.StartUTC, window.EndUTC)
	if err != nil {
		return nil, err
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDataForPeriod, date)
	}

	series := common.Mapper(readings, func(r models.Reading) SeriesPoint {
		isOpen := 0
		if r.IsOpen {
			isOpen = 1
		}
		return SeriesPoint{
			Time:               time.Unix(r.Timestamp, 0).In(zone),
			OfflineTemperature: r.OfflineTemperature,
			OnlineTemperature:  r.OnlineTemperature,
			IsOpen:             isOpen,
			ConditionCode:      r.ConditionCode,
		}
	})

	stats := computeDailyStats(date, readings)

	logger.Info("Computed daily statistics",
		zap.String("date", date),
		zap.Int("total_readings", stats.TotalReadings))

	return &DailyReport{Stats: stats, Series: series, Zone: zone}, nil
}

// computeDailyStats is order-independent over its input; callers must not
// invoke it with an empty slice.
func computeDailyStats(date string, readings []models.Reading) DailyStats {
	total := len(readings)

	openCount := common.Reducer(readings, func(acc int, r models.Reading) int {
		if r.IsOpen {
			return acc + 1
		}
		return acc
	}, 0)

	sumOffline := common.Reducer(readings, func(acc float64, r models.Reading) float64 {
		return acc + r.OfflineTemperature
	}, 0.0)
	sumOnline := common.Reducer(readings, func(acc float64, r models.Reading) float64 {
		return acc + r.OnlineTemperature
	}, 0.0)

	minOffline, maxOffline := readings[0].OfflineTemperature, readings[0].OfflineTemperature
	minOnline, maxOnline := readings[0].OnlineTemperature, readings[0].OnlineTemperature
	for _, r := range readings[1:] {
		minOffline = min(minOffline, r.OfflineTemperature)
		maxOffline = max(maxOffline, r.OfflineTemperature)
		minOnline = min(minOnline, r.OnlineTemperature)
		maxOnline = max(maxOnline, r.OnlineTemperature)
	}

	conditionStats := make(map[int]int)
	for _, r := range readings {
		conditionStats[r.ConditionCode]++
	}

	return DailyStats{
		Date:                date,
		TotalReadings:       total,
		OpenMinutes:         openCount,
		OpenPercentage:      common.Round1(float64(openCount) / float64(total) * 100),
		AvgOffline:          common.Round1(sumOffline / float64(total)),
		MinOffline:          minOffline,
		MaxOffline:          maxOffline,
		AvgOnline:           common.Round1(sumOnline / float64(total)),
		MinOnline:           minOnline,
		MaxOnline:           maxOnline,
		ConditionStats:      conditionStats,
		MostCommonCondition: mostCommonCondition(conditionStats),
	}
}

// mostCommonCondition breaks ties by picking the smallest code, so the result
// never depends on map iteration order.
func mostCommonCondition(counts map[int]int) int {
	bestCode := 0
	bestCount := -1
	for code, count := range counts {
		if count > bestCount || (count == bestCount && code < bestCode) {
			bestCode = code
			bestCount = count
		}
	}
	return bestCode
}

type IReportImpl struct {
	monitor *Monitor
}

func (ir *IReportImpl) BuildDailyReport(date string) (*DailyReport, error) {
	return ir.monitor.buildDailyReport(date)
}

func (m *Monitor) GetIReport() IReport {
	return &IReportImpl{monitor: m}
}
