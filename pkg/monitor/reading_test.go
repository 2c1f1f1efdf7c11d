package monitor_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/models"
	_ "liyu1981.xyz/temperature-report-service/pkg/testing"
)

func TestInsertReading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, m, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	before := time.Now().UTC().Unix()
	input := &models.Reading{
		// a client-supplied timestamp must be ignored
		Timestamp:          12345,
		OfflineTemperature: 22.5,
		OnlineTemperature:  17.25,
		IsOpen:             true,
		ConditionCode:      1006,
	}
	err := m.Reading.InsertReading(input)
	require.NoError(t, err)
	after := time.Now().UTC().Unix()

	var saved models.Reading
	err = m.Db.Conn.First(&saved, "id = ?", input.ID).Error
	require.NoError(t, err)

	assert.Equal(t, 22.5, saved.OfflineTemperature)
	assert.Equal(t, 17.25, saved.OnlineTemperature)
	assert.True(t, saved.IsOpen)
	assert.Equal(t, 1006, saved.ConditionCode)

	assert.GreaterOrEqual(t, saved.Timestamp, before)
	assert.LessOrEqual(t, saved.Timestamp, after)
	assert.NotEqual(t, int64(12345), saved.Timestamp)
}

func TestInsertReading_ConcurrentWrites(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, m, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	const writers = 25

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.Reading.InsertReading(&models.Reading{
				OfflineTemperature: float64(i),
				OnlineTemperature:  float64(i),
				ConditionCode:      1000,
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestReadingsBetween_Ordering(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, m, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	// insert out of order inside a window no other test uses
	base := time.Date(2032, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	for _, offset := range []int64{300, 0, 600, 120} {
		require.NoError(t, m.Db.Conn.Create(&models.Reading{
			Timestamp:     base + offset,
			ConditionCode: 1000,
		}).Error)
	}

	readings, err := m.Reading.ReadingsBetween(base, base+600)
	require.NoError(t, err)
	require.Len(t, readings, 4)
	for i := 1; i < len(readings); i++ {
		assert.Greater(t, readings[i].Timestamp, readings[i-1].Timestamp)
	}
}
