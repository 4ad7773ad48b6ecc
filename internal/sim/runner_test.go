package sim

import (
	"context"
	"testing"
)

type countingMetric struct {
	samples int
	sum     float64
}

func (c *countingMetric) Name() string { return "count" }
func (c *countingMetric) Observe(temperature, fan, t float64) {
	c.samples++
	c.sum += temperature
}
func (c *countingMetric) Value() float64 { return float64(c.samples) }
func (c *countingMetric) Reset()         { c.samples = 0; c.sum = 0 }

type tickRecorder struct {
	ticks int
}

func (r *tickRecorder) OnTick(temperature, fan, t float64) { r.ticks++ }

func TestRunnerRun(t *testing.T) {
	s := newTestSession()
	r := NewRunner(s)

	m := &countingMetric{}
	obs := &tickRecorder{}
	r.AddMetric(m)
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Temps) != 11 {
		t.Errorf("expected 11 samples (initial + 10 steps), got %d", len(result.Temps))
	}
	if len(result.Times) != len(result.Temps) || len(result.Fans) != len(result.Temps) {
		t.Error("series lengths disagree")
	}
	if m.samples != 10 || obs.ticks != 10 {
		t.Errorf("expected 10 observations, got metric=%d observer=%d", m.samples, obs.ticks)
	}
	if result.Metrics["count"] != 10 {
		t.Errorf("expected metric value 10, got %v", result.Metrics["count"])
	}
	if result.Damaged {
		t.Error("idle run should not damage the plant")
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := NewRunner(newTestSession())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerStopsOnDamage(t *testing.T) {
	s := newTestSession()
	s.SetLoad(100)
	r := NewRunner(s)

	// 300 simulated seconds is far beyond the time to damage under
	// full load with the idle fan command.
	result, err := r.Run(context.Background(), Config{Dt: dt, Duration: 300})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !result.Damaged {
		t.Fatal("expected damaged result")
	}
	if result.Elapsed >= 300 {
		t.Errorf("expected early stop, ran full %v seconds", result.Elapsed)
	}
	last := result.Temps[len(result.Temps)-1]
	if last > s.Plant().AbsoluteMax {
		t.Errorf("final temperature %v above absolute max", last)
	}
}

func TestRunnerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(newTestSession())
	if _, err := r.Run(ctx, Config{Dt: dt, Duration: 10}); err == nil {
		t.Error("expected context error")
	}
}
