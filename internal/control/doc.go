// Package control provides the feedback side of the cooling loop.
//
//   - [PID]: discrete PID with deadband hysteresis, integrator
//     anti-windup, output clamping and slew-rate limiting
//   - [Fixed]: constant command source for open-loop operation
//
// # Usage
//
//	pid := control.NewPID(1.8, 0.12, 1.2, 75.0,
//		control.Range{Min: 30, Max: 100},
//		control.Range{Min: -25, Max: 25})
//	cmd := pid.Calculate(measuredTemp, dt)
//
// Controllers never reject input; out-of-range values and dt <= 0 are
// clamped or branched to safe defaults.
package control
