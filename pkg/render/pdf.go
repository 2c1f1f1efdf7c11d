package render

import (
	"os"

	"github.com/go-pdf/fpdf"
	"liyu1981.xyz/temperature-report-service/pkg/monitor"
)

const pdfFontFamily = "report"

// registerPDFFont tries the probed TTF first and degrades to the built-in
// Helvetica when no usable font file is around. The returned translator
// maps UTF-8 text into whatever the chosen font can encode.
func registerPDFFont(pdf *fpdf.Fpdf) (family string, translate func(string) string) {
	if fontPath := FindReportFont(); fontPath != "" {
		pdf.AddUTF8Font(pdfFontFamily, "", fontPath)
		if !pdf.Err() {
			return pdfFontFamily, func(s string) string { return s }
		}
		pdf.ClearError()
	}
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

func WritePDF(report *monitor.DailyReport, chartPath, path string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	family, tr := registerPDFFont(pdf)

	pdf.AddPage()

	pdf.SetFont(family, "", 16)
	pdf.CellFormat(0, 10, tr(TextSummaryTitle(report)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 11)
	pdf.MultiCell(0, 5, tr(TextSummary(report)), "", "L", false)
	pdf.Ln(4)

	// the chart page; skipped when the image was never produced
	if _, err := os.Stat(chartPath); err == nil {
		pdf.ImageOptions(chartPath, 15, pdf.GetY(), 180, 0, true,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func TextSummaryTitle(report *monitor.DailyReport) string {
	return "Temperature report for " + report.Stats.Date + " (" + report.Zone.String() + ")"
}
