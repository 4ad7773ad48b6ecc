package sim

import (
	"context"
	"fmt"
)

// Runner executes a session headless at a fixed timestep, feeding
// metrics and observers along the way.
type Runner struct {
	session   *Session
	metrics   []Metric
	observers []Observer
}

func NewRunner(session *Session) *Runner {
	return &Runner{session: session}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run ticks the session for cfg.Duration seconds and collects the
// trace. It stops early when the plant is damaged; by contract there is
// nothing meaningful left to drive.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Temps:   make([]float64, 0, steps+1),
		Fans:    make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	p := r.session.Plant()
	result.Times = append(result.Times, 0)
	result.Temps = append(result.Temps, p.Temperature())
	result.Fans = append(result.Fans, p.FanSpeed())

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.session.Tick(cfg.Dt)
		t += cfg.Dt

		p = r.session.Plant()
		for _, m := range r.metrics {
			m.Observe(p.Temperature(), p.FanSpeed(), t)
		}
		for _, o := range r.observers {
			o.OnTick(p.Temperature(), p.FanSpeed(), t)
		}

		result.Times = append(result.Times, t)
		result.Temps = append(result.Temps, p.Temperature())
		result.Fans = append(result.Fans, p.FanSpeed())

		if p.Damaged() {
			result.Damaged = true
			break
		}
	}

	result.Elapsed = t
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
