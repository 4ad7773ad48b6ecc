package metrics

// FanDuty tracks the mean commanded fan duty over a run, a proxy for
// acoustic and power cost of the control policy.
type FanDuty struct {
	sum     float64
	samples int
}

func NewFanDuty() *FanDuty {
	return &FanDuty{}
}

func (f *FanDuty) Name() string { return "fan_duty" }

func (f *FanDuty) Observe(temperature, fan, t float64) {
	f.sum += fan
	f.samples++
}

func (f *FanDuty) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *FanDuty) Reset() {
	f.sum = 0
	f.samples = 0
}
