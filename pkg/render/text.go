package render

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

// formatNative prints a temperature at its stored precision; only averages
// and percentages carry display rounding.
func formatNative(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func TextSummary(report *monitor.DailyReport) string {
	stats := report.Stats

	var b strings.Builder

	fmt.Fprintf(&b, "=== Temperature report for %s (%s) ===\n\n", stats.Date, report.Zone.String())
	fmt.Fprintf(&b, "Total readings: %d\n", stats.TotalReadings)
	fmt.Fprintf(&b, "Open state time: %d minutes (%.1f%%)\n\n", stats.OpenMinutes, stats.OpenPercentage)

	fmt.Fprintf(&b, "Offline temperature:\n")
	fmt.Fprintf(&b, "  Average: %.1f°C\n", stats.AvgOffline)
	fmt.Fprintf(&b, "  Minimum: %s°C\n", formatNative(stats.MinOffline))
	fmt.Fprintf(&b, "  Maximum: %s°C\n\n", formatNative(stats.MaxOffline))

	fmt.Fprintf(&b, "Online temperature:\n")
	fmt.Fprintf(&b, "  Average: %.1f°C\n", stats.AvgOnline)
	fmt.Fprintf(&b, "  Minimum: %s°C\n", formatNative(stats.MinOnline))
	fmt.Fprintf(&b, "  Maximum: %s°C\n\n", formatNative(stats.MaxOnline))

	fmt.Fprintf(&b, "Weather conditions:\n")
	if len(stats.ConditionStats) > 0 {
		mostCommon := stats.MostCommonCondition
		fmt.Fprintf(&b, "  Most common condition: %d (%s)\n", mostCommon, monitor.ConditionName(mostCommon))
		fmt.Fprintf(&b, "  Condition breakdown:\n")

		codes := make([]int, 0, len(stats.ConditionStats))
		for code := range stats.ConditionStats {
			codes = append(codes, code)
		}
		sort.Ints(codes)

		for _, code := range codes {
			fmt.Fprintf(&b, "    %s (%d): %d readings\n",
				monitor.ConditionName(code), code, stats.ConditionStats[code])
		}
	} else {
		fmt.Fprintf(&b, "  No weather condition data.\n")
	}

	fmt.Fprintf(&b, "\n=== End of report ===\n")

	return b.String()
}

func WriteText(report *monitor.DailyReport, path string) error {
	return os.WriteFile(path, []byte(TextSummary(report)), 0o644)
}
