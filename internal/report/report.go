// Package report renders a finished session into shareable artifacts:
// a PDF summary mirroring the on-screen dashboard and a raw CSV trace.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/esolano/thermofan/internal/metrics"
)

// DefaultDir is where reports land unless the caller says otherwise.
const DefaultDir = "reports"

// Data is everything the report needs from a finished session; the
// caller assembles it so this package stays decoupled from the driver.
type Data struct {
	GeneratedAt time.Time
	Duration    float64
	PIDEnabled  bool
	Damaged     bool
	FinalTemp   float64

	Setpoint             float64
	Kp, Ki, Kd           float64
	OutputMin, OutputMax float64
	IntMin, IntMax       float64

	Times []float64
	Temps []float64
	Fans  []float64
}

// Generate writes a PDF session report into dir and returns its path.
func Generate(dir string, d Data) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("session_%s.pdf", d.GeneratedAt.Format("20060102_150405")))

	pdf := fpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(66, 135, 245)
	pdf.CellFormat(0, 12, "PID COOLING SIMULATION REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pidState := "OFF"
	if d.PIDEnabled {
		pidState = "ON"
	}
	outcome := "completed"
	if d.Damaged {
		outcome = "plant damaged"
	}
	pdf.CellFormat(0, 6, "Report date: "+d.GeneratedAt.Format("02/01/2006 15:04:05"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Simulated duration: %.2f s", d.Duration), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "PID control: "+pidState, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Outcome: "+outcome, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if len(d.Temps) > 0 {
		stats := seriesStats("temperature", d.Temps)
		sectionTitle(pdf, "TEMPERATURE", 40, 205, 100)
		table(pdf, tr, [][2]string{
			{"Minimum", fmt.Sprintf("%.1f°C", stats.Min())},
			{"Maximum", fmt.Sprintf("%.1f°C", stats.Max())},
			{"Average", fmt.Sprintf("%.1f°C", stats.Mean())},
			{"PID setpoint", fmt.Sprintf("%.1f°C", d.Setpoint)},
			{"Final", fmt.Sprintf("%.1f°C", d.FinalTemp)},
		}, 40, 205, 100)
	}

	if len(d.Fans) > 0 {
		stats := seriesStats("fan", d.Fans)
		sectionTitle(pdf, "FAN SPEED", 168, 85, 247)
		table(pdf, tr, [][2]string{
			{"Minimum", fmt.Sprintf("%.1f%%", stats.Min())},
			{"Maximum", fmt.Sprintf("%.1f%%", stats.Max())},
			{"Average", fmt.Sprintf("%.1f%%", stats.Mean())},
		}, 168, 85, 247)
	}

	sectionTitle(pdf, "CONTROLLER PARAMETERS", 255, 140, 30)
	table(pdf, tr, [][2]string{
		{"Proportional gain (Kp)", fmt.Sprintf("%.2f", d.Kp)},
		{"Integral gain (Ki)", fmt.Sprintf("%.2f", d.Ki)},
		{"Derivative gain (Kd)", fmt.Sprintf("%.2f", d.Kd)},
		{"Output range", fmt.Sprintf("%.0f%% - %.0f%%", d.OutputMin, d.OutputMax)},
		{"Integrator range", fmt.Sprintf("%.0f - %.0f", d.IntMin, d.IntMax)},
	}, 255, 140, 30)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func seriesStats(name string, values []float64) *metrics.SeriesStats {
	s := metrics.NewSeriesStats(name, len(values), metrics.Temperature)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func sectionTitle(pdf *fpdf.Fpdf, title string, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func table(pdf *fpdf.Fpdf, tr func(string) string, rows [][2]string, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 8, "Metric", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 8, "Value", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(90, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(row[1]), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)
}
