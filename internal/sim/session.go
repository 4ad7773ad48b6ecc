package sim

import (
	"github.com/esolano/thermofan/internal/control"
	"github.com/esolano/thermofan/internal/plant"
)

// IdleCommand is the fixed fan command driven while the PID is
// disabled.
const IdleCommand = 30.0

// Session is the driver of the control loop: it owns exactly one plant
// and one controller and advances them in lockstep, once per frame. It
// is not safe for concurrent use; a single tick loop owns it.
type Session struct {
	plant    *plant.Plant
	pid      *control.PID
	idle     *control.Fixed
	newPlant func() *plant.Plant

	pidEnabled bool
	elapsed    float64
	history    *History
}

// NewSession wires a controller to a plant factory. The factory is kept
// so Reset can replace the plant wholesale with identical constants.
func NewSession(newPlant func() *plant.Plant, pid *control.PID) *Session {
	return &Session{
		plant:    newPlant(),
		pid:      pid,
		idle:     control.NewFixed(IdleCommand),
		newPlant: newPlant,
		history:  NewHistory(DefaultHistorySize),
	}
}

// Tick runs one measure-command-actuate cycle. dt comes from measured
// frame time, so it is clamped rather than trusted. Once the plant is
// damaged the session stops driving it.
func (s *Session) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if s.plant.Damaged() {
		return
	}

	var command float64
	if s.pidEnabled {
		command = s.pid.Calculate(s.plant.Temperature(), dt)
	} else {
		command = s.idle.Calculate(s.plant.Temperature(), dt)
	}

	s.plant.Step(command, dt)
	s.history.Push(s.plant.Temperature(), s.plant.FanSpeed())
	s.elapsed += dt
}

// SetPIDEnabled toggles closed-loop control. Enabling starts the
// controller from a clean slate; that policy lives here, not in the
// controller.
func (s *Session) SetPIDEnabled(on bool) {
	if on && !s.pidEnabled {
		s.pid.Reset()
	}
	s.pidEnabled = on
}

func (s *Session) PIDEnabled() bool { return s.pidEnabled }

func (s *Session) SetLoad(percent float64) { s.plant.SetLoad(percent) }

// Reset replaces the plant wholesale, clears the controller and drops
// the history. The only way out of the damaged state.
func (s *Session) Reset() {
	s.plant = s.newPlant()
	s.pid.Reset()
	s.history.Clear()
	s.elapsed = 0
}

func (s *Session) Plant() *plant.Plant { return s.plant }
func (s *Session) PID() *control.PID   { return s.pid }
func (s *Session) History() *History   { return s.history }
func (s *Session) Elapsed() float64    { return s.elapsed }
