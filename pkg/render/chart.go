package render

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"liyu1981.xyz/temperature-report-service/pkg/common"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

var (
	chartBlue  = color.RGBA{B: 255, A: 255}
	chartRed   = color.RGBA{R: 255, A: 255}
	chartGreen = color.RGBA{G: 160, A: 255}
)

func seriesXYs(series []monitor.SeriesPoint, value func(monitor.SeriesPoint) float64) plotter.XYs {
	return common.Mapper(series, func(p monitor.SeriesPoint) plotter.XY {
		return plotter.XY{X: float64(p.Time.Unix()), Y: value(p)}
	})
}

// WriteChart draws the three stacked panels on a shared local-time axis:
// both temperature curves, the open/closed step trace, and the condition
// code scatter.
func WriteChart(report *monitor.DailyReport, path string) error {
	timeTicks := plot.TimeTicks{
		Format: "15:04",
		Time:   plot.UnixTimeIn(report.Zone),
	}

	tempPlot := plot.New()
	tempPlot.Title.Text = fmt.Sprintf("Temperature Monitoring - %s (%s)", report.Stats.Date, report.Zone.String())
	tempPlot.Y.Label.Text = "Temperature (°C)"
	tempPlot.X.Tick.Marker = timeTicks
	tempPlot.Add(plotter.NewGrid())

	offlineLine, err := plotter.NewLine(seriesXYs(report.Series, func(p monitor.SeriesPoint) float64 {
		return p.OfflineTemperature
	}))
	if err != nil {
		return err
	}
	offlineLine.Color = chartBlue

	onlineLine, err := plotter.NewLine(seriesXYs(report.Series, func(p monitor.SeriesPoint) float64 {
		return p.OnlineTemperature
	}))
	if err != nil {
		return err
	}
	onlineLine.Color = chartRed

	tempPlot.Add(offlineLine, onlineLine)
	tempPlot.Legend.Add("Offline Temperature", offlineLine)
	tempPlot.Legend.Add("Online Temperature", onlineLine)
	tempPlot.Legend.Top = true

	statePlot := plot.New()
	statePlot.Title.Text = "Open/Closed State"
	statePlot.Y.Label.Text = "State (0=Closed, 1=Open)"
	statePlot.X.Tick.Marker = timeTicks
	statePlot.Y.Min, statePlot.Y.Max = -0.1, 1.1
	statePlot.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 1, Label: "1"},
	})
	statePlot.Add(plotter.NewGrid())

	stateLine, err := plotter.NewLine(seriesXYs(report.Series, func(p monitor.SeriesPoint) float64 {
		return float64(p.IsOpen)
	}))
	if err != nil {
		return err
	}
	stateLine.Color = chartGreen
	stateLine.StepStyle = plotter.PostStep
	statePlot.Add(stateLine)

	conditionPlot := plot.New()
	conditionPlot.Title.Text = "Weather Conditions"
	conditionPlot.Y.Label.Text = "Condition Code"
	conditionPlot.X.Tick.Marker = timeTicks
	conditionPlot.Add(plotter.NewGrid())

	conditionScatter, err := plotter.NewScatter(seriesXYs(report.Series, func(p monitor.SeriesPoint) float64 {
		return float64(p.ConditionCode)
	}))
	if err != nil {
		return err
	}
	conditionScatter.GlyphStyle.Color = chartBlue
	conditionScatter.GlyphStyle.Radius = vg.Points(2)
	conditionPlot.Add(conditionScatter)

	img := vgimg.New(8*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)

	plots := [][]*plot.Plot{{tempPlot}, {statePlot}, {conditionPlot}}
	canvases := plot.Align(plots, draw.Tiles{Rows: 3, Cols: 1, PadY: vg.Millimeter * 4}, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
