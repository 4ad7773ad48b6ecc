package control

import "math"

const (
	DefaultDeadband = 1.0

	// Slew-rate bands: the command may move faster while the error is
	// large, and settles more gently near the setpoint.
	fastErrorBand = 10.0
	fastSlewRate  = 25.0
	slowSlewRate  = 15.0
)

// Range is a closed [Min, Max] interval used for output and integrator
// clamping.
type Range struct {
	Min float64
	Max float64
}

// PID converts a temperature error into a bounded, rate-limited fan
// command. The emitted command is a correction layered on top of the
// configured output minimum, not the raw P+I+D sum.
type PID struct {
	Kp         float64
	Ki         float64
	Kd         float64
	Setpoint   float64
	Output     Range
	Integrator Range

	// Deadband is the error band around the setpoint inside which
	// corrective action is suppressed while the error is shrinking.
	Deadband float64

	prevErr    float64
	integral   float64
	prevOutput float64
}

// NewPID returns a controller with the given gains and clamp ranges.
// The previous-output memory starts at the output minimum, so the first
// commands ramp up from the floor rather than jumping.
func NewPID(kp, ki, kd, setpoint float64, output, integrator Range) *PID {
	return &PID{
		Kp:         kp,
		Ki:         ki,
		Kd:         kd,
		Setpoint:   setpoint,
		Output:     output,
		Integrator: integrator,
		Deadband:   DefaultDeadband,
		prevOutput: output.Min,
	}
}

// Calculate turns a temperature measurement into a fan command. It
// never fails: dt <= 0 disables the derivative term and freezes the
// integral, and every intermediate value is clamped into range.
func (c *PID) Calculate(measured, dt float64) float64 {
	if dt < 0 {
		dt = 0
	}

	err := measured - c.Setpoint

	// Hysteresis: hold the previous command while the error is inside
	// the deadband and shrinking. This only suppresses hunting on the
	// approach to the setpoint; an oscillation growing within the band
	// still drives the full control law. Accepted quirk.
	if math.Abs(err) < c.Deadband && err < c.prevErr {
		c.prevErr = err
		return c.prevOutput
	}

	p := c.Kp * err

	c.integral += err * dt
	c.integral = clamp(c.integral, c.Integrator.Min, c.Integrator.Max)
	i := c.Ki * c.integral

	var derivative float64
	if dt > 0 {
		derivative = (err - c.prevErr) / dt
	}
	d := c.Kd * derivative
	c.prevErr = err

	out := c.Output.Min + (p + i + d)
	out = clamp(out, c.Output.Min, c.Output.Max)

	maxChange := slowSlewRate * dt
	if err > fastErrorBand {
		maxChange = fastSlewRate * dt
	}
	out = c.prevOutput + clamp(out-c.prevOutput, -maxChange, maxChange)

	c.prevOutput = out
	return out
}

// Reset clears the accumulated state. Called by the driver when the
// loop is re-enabled or the plant is reinitialized.
func (c *PID) Reset() {
	c.prevErr = 0
	c.integral = 0
	c.prevOutput = c.Output.Min
}

// Integral exposes the clamped accumulator, mainly for inspection and
// tests.
func (c *PID) Integral() float64 { return c.integral }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
