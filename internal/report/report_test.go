package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testData() Data {
	return Data{
		GeneratedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
		Duration:    42.5,
		PIDEnabled:  true,
		FinalTemp:   76.2,
		Setpoint:    75,
		Kp:          1.8, Ki: 0.12, Kd: 1.2,
		OutputMin: 30, OutputMax: 100,
		IntMin: -25, IntMax: 25,
		Times: []float64{0, 1, 2, 3},
		Temps: []float64{32, 50, 68, 76.2},
		Fans:  []float64{30, 30, 55, 62},
	}
}

func TestGenerateWritesPDF(t *testing.T) {
	dir := t.TempDir()

	path, err := Generate(dir, testData())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if filepath.Base(path) != "session_20250314_150926.pdf" {
		t.Errorf("unexpected report name %q", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty report file")
	}
}

func TestGenerateEmptySeries(t *testing.T) {
	d := testData()
	d.Times, d.Temps, d.Fans = nil, nil, nil

	// Still a valid report, just without stats tables.
	if _, err := Generate(t.TempDir(), d); err != nil {
		t.Fatalf("generate failed on empty series: %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	d := testData()

	if err := WriteCSV(path, d.Times, d.Temps, d.Fans); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "time_s,temperature_c,fan_pct" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[4][1] != "76.200" {
		t.Errorf("expected final temperature 76.200, got %q", rows[4][1])
	}
}

func TestWriteCSVLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := WriteCSV(path, []float64{0, 1}, []float64{32}, []float64{30, 30}); err == nil {
		t.Error("expected error for mismatched series")
	}
}
