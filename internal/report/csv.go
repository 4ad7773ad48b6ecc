package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV dumps the raw trace as time,temperature,fan rows.
func WriteCSV(path string, times, temps, fans []float64) error {
	if len(times) != len(temps) || len(times) != len(fans) {
		return fmt.Errorf("series lengths disagree: %d times, %d temps, %d fans",
			len(times), len(temps), len(fans))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time_s", "temperature_c", "fan_pct"}); err != nil {
		return err
	}
	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 4, 64),
			strconv.FormatFloat(temps[i], 'f', 3, 64),
			strconv.FormatFloat(fans[i], 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
