package monitor

import (
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/models"
)

func (m *Monitor) insertReading(input *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldMonitorCategory, common.LoggerCategoryReading),
	)

	// id and timestamp are never client-supplied
	reading := models.Reading{
		Timestamp:          time.Now().UTC().Unix(),
		OfflineTemperature: input.OfflineTemperature,
		OnlineTemperature:  input.OnlineTemperature,
		IsOpen:             input.IsOpen,
		ConditionCode:      input.ConditionCode,
	}

	logger.Info("Received reading", zap.Reflect("reading", reading))

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if err := m.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	logger.Info("Saved reading", zap.Reflect("reading", reading))

	input.ID = reading.ID
	input.Timestamp = reading.Timestamp
	return nil
}

func (m *Monitor) readingsBetween(startUTC, endUTC int64) ([]models.Reading, error) {
	var readings []models.Reading
	err := m.Db.Conn.
		Where("timestamp BETWEEN ? AND ?", startUTC, endUTC).
		Order("timestamp asc").
		Find(&readings).Error
	return readings, err
}

type IReadingImpl struct {
	monitor *Monitor
}

func (ir *IReadingImpl) InsertReading(input *models.Reading) error {
	return ir.monitor.insertReading(input)
}

func (ir *IReadingImpl) ReadingsBetween(startUTC, endUTC int64) ([]models.Reading, error) {
	return ir.monitor.readingsBetween(startUTC, endUTC)
}

func (m *Monitor) GetIReading() IReading {
	return &IReadingImpl{monitor: m}
}
