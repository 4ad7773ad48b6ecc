package metrics

import "math"

// TimeInBand measures the fraction of samples whose temperature stays
// within +/-band of the target.
type TimeInBand struct {
	target  float64
	band    float64
	in      int
	samples int
}

func NewTimeInBand(target, band float64) *TimeInBand {
	return &TimeInBand{target: target, band: band}
}

func (b *TimeInBand) Name() string { return "time_in_band" }

func (b *TimeInBand) Observe(temperature, fan, t float64) {
	b.samples++
	if math.Abs(temperature-b.target) <= b.band {
		b.in++
	}
}

func (b *TimeInBand) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return float64(b.in) / float64(b.samples)
}

func (b *TimeInBand) Reset() {
	b.in = 0
	b.samples = 0
}
