package metrics

import "github.com/asecurityteam/rolling"

// Sample selects which scalar of an observation a SeriesStats tracks.
type Sample func(temperature, fan float64) float64

func Temperature(temperature, fan float64) float64 { return temperature }
func Fan(temperature, fan float64) float64         { return fan }

// SeriesStats keeps min/max/mean over the last windowSize samples of a
// series using a point-per-bucket rolling window. The window is seeded
// with the first value so the reducers are well-defined before it
// fills; the seed is fully overwritten after windowSize appends.
type SeriesStats struct {
	name   string
	size   int
	sample Sample
	window *rolling.PointPolicy
	count  int
}

func NewSeriesStats(name string, windowSize int, sample Sample) *SeriesStats {
	return &SeriesStats{
		name:   name,
		size:   windowSize,
		sample: sample,
		window: rolling.NewPointPolicy(rolling.NewWindow(windowSize)),
	}
}

func (s *SeriesStats) Name() string { return s.name }

func (s *SeriesStats) Observe(temperature, fan, t float64) {
	s.Add(s.sample(temperature, fan))
}

// Add feeds one value directly, for callers that already hold a series.
func (s *SeriesStats) Add(v float64) {
	if s.count == 0 {
		for i := 0; i < s.size; i++ {
			s.window.Append(v)
		}
	}
	s.window.Append(v)
	s.count++
}

func (s *SeriesStats) Min() float64 {
	if s.count == 0 {
		return 0
	}
	return s.window.Reduce(rolling.Min)
}

func (s *SeriesStats) Max() float64 {
	if s.count == 0 {
		return 0
	}
	return s.window.Reduce(rolling.Max)
}

func (s *SeriesStats) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.window.Reduce(rolling.Avg)
}

// Value reports the windowed mean, making SeriesStats usable as a run
// metric.
func (s *SeriesStats) Value() float64 { return s.Mean() }

func (s *SeriesStats) Reset() {
	s.window = rolling.NewPointPolicy(rolling.NewWindow(s.size))
	s.count = 0
}
