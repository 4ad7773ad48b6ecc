package control

// Fixed emits a constant command regardless of the measurement. It
// stands in for the PID when closed-loop control is disabled.
type Fixed struct {
	Command float64
}

func NewFixed(command float64) *Fixed {
	return &Fixed{Command: command}
}

func (f *Fixed) Calculate(measured, dt float64) float64 {
	return f.Command
}

func (f *Fixed) Reset() {}
