package control

import (
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func newTestPID() *PID {
	return NewPID(1.8, 0.12, 1.2, 75.0,
		Range{Min: 30, Max: 100},
		Range{Min: -25, Max: 25})
}

func TestFixed(t *testing.T) {
	f := NewFixed(30)
	if got := f.Calculate(120, dt); got != 30 {
		t.Errorf("expected constant 30, got %v", got)
	}
	f.Reset()
	if got := f.Calculate(-10, 0); got != 30 {
		t.Errorf("expected constant 30 after reset, got %v", got)
	}
}

func TestOutputAlwaysWithinLimits(t *testing.T) {
	c := newTestPID()

	for _, step := range []float64{0, dt, 0.1, 1.0} {
		for measured := -50.0; measured <= 200.0; measured += 7.3 {
			out := c.Calculate(measured, step)
			if out < c.Output.Min || out > c.Output.Max {
				t.Fatalf("output %v outside [%v, %v] for measured=%v dt=%v",
					out, c.Output.Min, c.Output.Max, measured, step)
			}
		}
	}
}

func TestIntegralStaysClamped(t *testing.T) {
	c := newTestPID()

	for i := 0; i < 5000; i++ {
		c.Calculate(200, 0.1)
		if c.Integral() > c.Integrator.Max || c.Integral() < c.Integrator.Min {
			t.Fatalf("integral %v escaped [%v, %v]", c.Integral(), c.Integrator.Min, c.Integrator.Max)
		}
	}
	if c.Integral() != c.Integrator.Max {
		t.Errorf("expected integral saturated at %v, got %v", c.Integrator.Max, c.Integral())
	}

	c.Reset()
	for i := 0; i < 5000; i++ {
		c.Calculate(-200, 0.1)
	}
	if c.Integral() != c.Integrator.Min {
		t.Errorf("expected integral saturated at %v, got %v", c.Integrator.Min, c.Integral())
	}
}

func TestSlewRateLimiting(t *testing.T) {
	t.Run("large error band", func(t *testing.T) {
		c := newTestPID()
		prev := c.Output.Min
		// error = 45, well above the fast band boundary
		for i := 0; i < 200; i++ {
			out := c.Calculate(120, dt)
			if change := math.Abs(out - prev); change > 25*dt+1e-9 {
				t.Fatalf("change %v exceeded 25*dt=%v at step %d", change, 25*dt, i)
			}
			prev = out
		}
	})

	t.Run("small error band", func(t *testing.T) {
		c := newTestPID()
		// Prime the command upward, then drop the error below the fast
		// band and watch the downward slew.
		for i := 0; i < 400; i++ {
			c.Calculate(120, dt)
		}
		prev := c.Calculate(78, dt)
		for i := 0; i < 200; i++ {
			out := c.Calculate(78, dt)
			if change := math.Abs(out - prev); change > 15*dt+1e-9 {
				t.Fatalf("change %v exceeded 15*dt=%v at step %d", change, 15*dt, i)
			}
			prev = out
		}
	})
}

// A shrinking error inside the deadband holds the previous command and
// freezes the integral; a growing error inside the band does not.
func TestDeadbandSuppression(t *testing.T) {
	c := newTestPID()

	// Approach from above: error 2, then 0.5.
	out1 := c.Calculate(77, dt)
	integral := c.Integral()

	out2 := c.Calculate(75.5, dt)
	if out2 != out1 {
		t.Errorf("expected held output %v inside deadband, got %v", out1, out2)
	}
	if c.Integral() != integral {
		t.Errorf("deadband suppression should freeze the integral: %v -> %v", integral, c.Integral())
	}

	// Error grows within the band (0.5 -> 0.8): no suppression.
	c.Calculate(75.8, dt)
	if c.Integral() == integral {
		t.Error("growing in-band error should still accumulate integral")
	}
}

func TestZeroDtHasNoDerivativeTerm(t *testing.T) {
	c := newTestPID()

	// With dt = 0 the integral freezes, the derivative is forced to 0
	// and the slew budget collapses, so the command cannot move.
	out := c.Calculate(120, 0)
	if out != c.Output.Min {
		t.Errorf("expected held output %v at dt=0, got %v", c.Output.Min, out)
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		t.Errorf("non-finite output %v", out)
	}
	if c.Integral() != 0 {
		t.Errorf("integral accumulated at dt=0: %v", c.Integral())
	}
}

func TestNegativeDtTreatedAsZero(t *testing.T) {
	c := newTestPID()
	out := c.Calculate(120, -1)
	if out != c.Output.Min {
		t.Errorf("expected held output %v for negative dt, got %v", c.Output.Min, out)
	}
}

// After Reset the controller must reproduce the output sequence of a
// freshly constructed one under identical calls.
func TestResetReproducesFreshController(t *testing.T) {
	used := newTestPID()
	for i := 0; i < 300; i++ {
		used.Calculate(60+float64(i%40), dt)
	}
	used.Reset()

	fresh := newTestPID()
	inputs := []float64{75, 82, 91, 104, 88, 76, 74.5, 75.2, 80, 120, 30}
	for pass := 0; pass < 50; pass++ {
		for _, m := range inputs {
			a := used.Calculate(m, dt)
			b := fresh.Calculate(m, dt)
			if a != b {
				t.Fatalf("diverged on measured=%v: reset controller %v, fresh %v", m, a, b)
			}
		}
	}
}

func TestFirstCommandRampsFromFloor(t *testing.T) {
	c := newTestPID()
	out := c.Calculate(110, dt)
	want := c.Output.Min + 25*dt
	if math.Abs(out-want) > 1e-9 {
		t.Errorf("expected first command %v (floor plus one fast slew step), got %v", want, out)
	}
}
