// Package render turns a daily report into its three artifacts: a plotted
// time-series PNG, a plain-text summary, and a PDF that embeds both.
package render

import (
	"path/filepath"

	"go.uber.org/zap"
	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

type Artifacts struct {
	Chart string
	Text  string
	PDF   string
}

// ArtifactPaths keys every artifact by the report's date string. Existing
// files at these paths get overwritten.
func ArtifactPaths(dir, date string) Artifacts {
	base := filepath.Join(dir, "temperature_report_"+date)
	return Artifacts{
		Chart: base + ".png",
		Text:  base + ".txt",
		PDF:   base + ".pdf",
	}
}

func WriteAll(report *monitor.DailyReport, dir string) (Artifacts, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldMonitorCategory, common.LoggerCategoryRender),
	)

	artifacts := ArtifactPaths(dir, report.Stats.Date)

	if err := WriteChart(report, artifacts.Chart); err != nil {
		return artifacts, err
	}
	logger.Info("Wrote chart", zap.String("path", artifacts.Chart))

	if err := WriteText(report, artifacts.Text); err != nil {
		return artifacts, err
	}
	logger.Info("Wrote text report", zap.String("path", artifacts.Text))

	if err := WritePDF(report, artifacts.Chart, artifacts.PDF); err != nil {
		return artifacts, err
	}
	logger.Info("Wrote PDF report", zap.String("path", artifacts.PDF))

	return artifacts, nil
}
