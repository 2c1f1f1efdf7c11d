package monitor

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/temperature-report-service/pkg/common"
	_ "liyu1981.xyz/temperature-report-service/pkg/testing"
)

func TestResolveDayWindow(t *testing.T) {
	zone := FixedZone(4)

	window, err := ResolveDayWindow("2024-06-01", zone)
	require.NoError(t, err)

	// local midnight at UTC+4 is 20:00 UTC the previous day
	assert.Equal(t, time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC).Unix(), window.StartUTC)
	assert.Equal(t, time.Date(2024, 6, 1, 19, 59, 59, 0, time.UTC).Unix(), window.EndUTC)
}

func TestResolveDayWindowSpan(t *testing.T) {
	zone := FixedZone(4)

	for _, date := range []string{
		"2024-01-01", "2024-02-29", "2024-06-01", "2024-12-31", "1999-07-15",
	} {
		window, err := ResolveDayWindow(date, zone)
		require.NoError(t, err, "date %s", date)
		assert.Equal(t, int64(86399), window.EndUTC-window.StartUTC, "date %s", date)
	}
}

func TestResolveDayWindow_InvalidFormat(t *testing.T) {
	zone := FixedZone(4)

	for _, date := range []string{
		"", "2024-6-1", "01-06-2024", "2024/06/01", "2024-13-01", "2024-06-01 10:00", "yesterday",
	} {
		_, err := ResolveDayWindow(date, zone)
		require.Error(t, err, "date %q", date)
		assert.True(t, errors.Is(err, ErrInvalidDateFormat), "date %q", date)
	}
}

func TestResolveDayWindow_OffsetIsConfigurable(t *testing.T) {
	utcWindow, err := ResolveDayWindow("2024-06-01", FixedZone(0))
	require.NoError(t, err)
	local4Window, err := ResolveDayWindow("2024-06-01", FixedZone(4))
	require.NoError(t, err)

	assert.Equal(t, int64(4*3600), utcWindow.StartUTC-local4Window.StartUTC)
}

func TestCurrentLocalDate(t *testing.T) {
	zone := FixedZone(4)

	date := CurrentLocalDate(zone)
	parsed, err := time.ParseInLocation(DateLayout, date, zone)
	require.NoError(t, err)

	// the returned date must be "today" in the zone, allowing for a midnight
	// rollover between the two calls
	now := time.Now().In(zone)
	assert.True(t,
		parsed.Format(DateLayout) == now.Format(DateLayout) ||
			parsed.AddDate(0, 0, 1).Format(DateLayout) == now.Format(DateLayout))
}

func TestZoneFromEnv(t *testing.T) {
	t.Setenv("TEMP_TZ_OFFSET_HOURS", "2")

	zone := ZoneFromEnv()
	_, offset := time.Now().In(zone).Zone()
	assert.Equal(t, 2*3600, offset)
}

func TestZoneFromEnv_Default(t *testing.T) {
	t.Setenv("TEMP_TZ_OFFSET_HOURS", "")
	// empty value does not parse, so the default offset applies
	zone := ZoneFromEnv()
	_, offset := time.Now().In(zone).Zone()
	assert.Equal(t, 4*3600, offset)
}

func TestZoneFromEnv_InvalidValueWarns(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.WarnLevel)
	defer common.SetTestLoggerNop()

	t.Setenv("TEMP_TZ_OFFSET_HOURS", "four")

	zone := ZoneFromEnv()
	_, offset := time.Now().In(zone).Zone()
	assert.Equal(t, 4*3600, offset)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "TEMP_TZ_OFFSET_HOURS")
	assert.Contains(t, logOutput, "four")
}
