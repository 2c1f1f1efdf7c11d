package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/db"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
	"liyu1981.xyz/temperature-report-service/pkg/render"
)

func main() {
	// unlike the server, the CLI runs fine off the process env alone
	_ = godotenv.Load()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [YYYY-MM-DD]\n", os.Args[0])
	}
	flag.Parse()

	logger := common.GetLoggerWith(common.LoggerNameReportCli)

	zone := monitor.ZoneFromEnv()

	date := flag.Arg(0)
	if date == "" {
		date = monitor.CurrentLocalDate(zone)
	}

	dbInstance := db.GetInstance(db.DialectorFromEnv())

	monitorCore := &monitor.Monitor{
		Db:   *dbInstance,
		Zone: zone,
	}
	monitorCore.WithServices(monitor.ServiceOpts{
		Reading: monitorCore.GetIReading(),
		Report:  monitorCore.GetIReport(),
	})

	fmt.Printf("Generating report for %s (%s)...\n", date, zone)

	report, err := monitorCore.Report.BuildDailyReport(date)
	if err != nil {
		switch {
		case errors.Is(err, monitor.ErrInvalidDateFormat):
			fmt.Fprintln(os.Stderr, "Error: invalid date format, use YYYY-MM-DD.")
			os.Exit(1)
		case errors.Is(err, monitor.ErrNoDataForPeriod):
			// a day without readings is not a failure, just nothing to render
			fmt.Printf("No data found for %s.\n", date)
			os.Exit(0)
		default:
			logger.Error("Report generation failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Print(render.TextSummary(report))

	outDir := os.Getenv(common.EnvKeyTempReportOutDir)
	if outDir == "" {
		outDir = "."
	}

	artifacts, err := render.WriteAll(report, outDir)
	if err != nil {
		logger.Error("Failed to write report artifacts", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nChart saved as: %s\n", artifacts.Chart)
	fmt.Printf("Text report saved as: %s\n", artifacts.Text)
	fmt.Printf("PDF report saved as: %s\n", artifacts.PDF)
}
