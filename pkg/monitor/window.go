package monitor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/temperature-report-service/pkg/common"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// DayWindow is the inclusive UTC timestamp range covering one local calendar
// day, i.e. [00:00:00, 23:59:59] at the local offset translated to UTC.
type DayWindow struct {
	StartUTC int64
	EndUTC   int64
}

func FixedZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
}

func ZoneFromEnv() *time.Location {
	offsetHours := common.DefaultTzOffsetHours
	if v, found := os.LookupEnv(common.EnvKeyTempTzOffsetHours); found {
		if parsed, err := strconv.Atoi(v); err == nil {
			offsetHours = parsed
		} else {
			// a silently-ignored offset would shift every report boundary
			common.GetLoggerWith(common.LoggerNameMonitorCore).Warn(
				"Invalid "+common.EnvKeyTempTzOffsetHours+", using default offset",
				zap.String("value", v),
				zap.Int("default_offset_hours", offsetHours))
		}
	}
	return FixedZone(offsetHours)
}

// ResolveDayWindow turns a YYYY-MM-DD local date into its UTC day window.
// The window always spans exactly 86399 seconds.
func ResolveDayWindow(date string, zone *time.Location) (DayWindow, error) {
	startLocal, err := time.ParseInLocation(DateLayout, date, zone)
	if err != nil {
		return DayWindow{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}

	endLocal := startLocal.Add(24*time.Hour - time.Second)

	return DayWindow{
		StartUTC: startLocal.Unix(),
		EndUTC:   endLocal.Unix(),
	}, nil
}

// CurrentLocalDate is the implicit report target when no date is supplied.
func CurrentLocalDate(zone *time.Location) string {
	return time.Now().In(zone).Format(DateLayout)
}
