package sim

// Controller is a command source for the cooling loop: the PID when
// closed-loop control is on, a fixed command otherwise.
type Controller interface {
	Calculate(measured, dt float64) float64
	Reset()
}

// Metric aggregates a scalar over a run.
type Metric interface {
	Name() string
	Observe(temperature, fan, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every tick.
type Observer interface {
	OnTick(temperature, fan, t float64)
}

type Config struct {
	Dt       float64
	Duration float64
}

// Result holds the sampled series and aggregated metrics of a headless
// run. The series include the initial sample at t = 0.
type Result struct {
	Times   []float64
	Temps   []float64
	Fans    []float64
	Metrics map[string]float64
	Damaged bool
	Elapsed float64
}
