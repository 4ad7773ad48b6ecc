package plant

import "math"

// Default constants model a desktop-class part: a 180 W package with a
// large heatsink, passive convection and a single variable-speed fan.
const (
	DefaultAmbient         = 24.0
	DefaultInitialTemp     = 32.0
	DefaultInitialFan      = 30.0
	DefaultMaxPower        = 180.0
	DefaultThermalCapacity = 150.0
	DefaultPassiveCoeff    = 0.3
	DefaultFanCoeff        = 6.0
	DefaultFanCurveExp     = 1.2

	DefaultIdleThreshold     = 40.0
	DefaultSafeThreshold     = 70.0
	DefaultCriticalThreshold = 95.0
	DefaultAbsoluteMax       = 110.0

	// OverheatLimit is the sustained time at or above the critical
	// threshold before the part is permanently damaged.
	OverheatLimit = 10.0

	// Below the critical threshold the overheat timer cools off at
	// twice real time.
	overheatDecayRate = 2.0
)

type Status int

const (
	StatusIdle Status = iota
	StatusNormal
	StatusHigh
	StatusCritical
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusNormal:
		return "NORMAL"
	case StatusHigh:
		return "HIGH"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Plant is a first-order thermal model of a heat-generating device
// cooled by a variable-speed fan. Generated power scales with load,
// cooling power scales with the temperature delta above ambient.
type Plant struct {
	Ambient         float64
	MaxPower        float64
	ThermalCapacity float64
	PassiveCoeff    float64
	FanCoeff        float64
	FanCurveExp     float64

	IdleThreshold     float64
	SafeThreshold     float64
	CriticalThreshold float64
	AbsoluteMax       float64

	temperature   float64
	load          float64
	fanSpeed      float64
	damaged       bool
	overheatTimer float64
}

// New returns a plant at idle defaults, slightly above ambient.
func New() *Plant {
	return &Plant{
		Ambient:         DefaultAmbient,
		MaxPower:        DefaultMaxPower,
		ThermalCapacity: DefaultThermalCapacity,
		PassiveCoeff:    DefaultPassiveCoeff,
		FanCoeff:        DefaultFanCoeff,
		FanCurveExp:     DefaultFanCurveExp,

		IdleThreshold:     DefaultIdleThreshold,
		SafeThreshold:     DefaultSafeThreshold,
		CriticalThreshold: DefaultCriticalThreshold,
		AbsoluteMax:       DefaultAbsoluteMax,

		temperature: DefaultInitialTemp,
		fanSpeed:    DefaultInitialFan,
	}
}

// Step advances the thermal balance by dt seconds using an explicit
// Euler step. Once the plant is damaged, Step is a no-op: the model has
// plateaued at its absolute maximum and there is nothing left to drive.
func (p *Plant) Step(fanSpeed, dt float64) {
	if p.damaged {
		return
	}
	if dt < 0 {
		dt = 0
	}

	p.fanSpeed = clamp(fanSpeed, 0, 100)

	generated := (p.load / 100.0) * p.MaxPower

	// Floor keeps the cooling terms from vanishing (or flipping sign)
	// when the part sits at ambient.
	deltaT := math.Max(0.01, p.temperature-p.Ambient)
	passive := p.PassiveCoeff * deltaT
	active := p.FanCoeff * math.Pow(p.fanSpeed/100.0, p.FanCurveExp) * deltaT

	net := generated - (passive + active)
	p.temperature += net / p.ThermalCapacity * dt

	if p.temperature < p.Ambient {
		p.temperature = p.Ambient
	}

	if p.temperature >= p.AbsoluteMax {
		p.temperature = p.AbsoluteMax
		p.damaged = true
	}

	if p.temperature >= p.CriticalThreshold {
		p.overheatTimer += dt
		if p.overheatTimer > OverheatLimit {
			p.damaged = true
		}
	} else {
		p.overheatTimer = math.Max(0, p.overheatTimer-overheatDecayRate*dt)
	}
}

// SetLoad sets the generated-heat fraction, clamped to [0, 100].
func (p *Plant) SetLoad(percent float64) {
	p.load = clamp(percent, 0, 100)
}

func (p *Plant) Temperature() float64  { return p.temperature }
func (p *Plant) Load() float64         { return p.load }
func (p *Plant) FanSpeed() float64     { return p.fanSpeed }
func (p *Plant) Damaged() bool         { return p.damaged }
func (p *Plant) OverheatTime() float64 { return p.overheatTimer }

func (p *Plant) IsOverheating() bool {
	return p.temperature >= p.CriticalThreshold
}

// Status classifies the current temperature into half-open bands; the
// lowest matching band wins.
func (p *Plant) Status() Status {
	switch {
	case p.temperature < p.IdleThreshold:
		return StatusIdle
	case p.temperature < p.SafeThreshold:
		return StatusNormal
	case p.temperature < p.CriticalThreshold:
		return StatusHigh
	default:
		return StatusCritical
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
