package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/esolano/thermofan/internal/control"
	"github.com/esolano/thermofan/internal/plant"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 120.0

	DefaultKp        = 1.8
	DefaultKi        = 0.12
	DefaultKd        = 1.2
	DefaultSetpoint  = 75.0
	DefaultOutputMin = 30.0
	DefaultOutputMax = 100.0
	DefaultIntMin    = -25.0
	DefaultIntMax    = 25.0
)

type Config struct {
	Dt          float64     `yaml:"dt"`
	Duration    float64     `yaml:"duration"`
	PIDEnabled  bool        `yaml:"pid_enabled"`
	InitialLoad float64     `yaml:"initial_load"`
	PID         PIDConfig   `yaml:"pid"`
	Plant       PlantConfig `yaml:"plant"`
}

type PIDConfig struct {
	Kp        float64 `yaml:"kp"`
	Ki        float64 `yaml:"ki"`
	Kd        float64 `yaml:"kd"`
	Setpoint  float64 `yaml:"setpoint"`
	OutputMin float64 `yaml:"output_min"`
	OutputMax float64 `yaml:"output_max"`
	IntMin    float64 `yaml:"integrator_min"`
	IntMax    float64 `yaml:"integrator_max"`
	Deadband  float64 `yaml:"deadband"`
}

type PlantConfig struct {
	Ambient           float64 `yaml:"ambient"`
	MaxPower          float64 `yaml:"max_power"`
	ThermalCapacity   float64 `yaml:"thermal_capacity"`
	PassiveCoeff      float64 `yaml:"passive_coeff"`
	FanCoeff          float64 `yaml:"fan_coeff"`
	FanCurveExp       float64 `yaml:"fan_curve_exp"`
	IdleThreshold     float64 `yaml:"idle_threshold"`
	SafeThreshold     float64 `yaml:"safe_threshold"`
	CriticalThreshold float64 `yaml:"critical_threshold"`
	AbsoluteMax       float64 `yaml:"absolute_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		PIDEnabled: true,
		PID: PIDConfig{
			Kp:        DefaultKp,
			Ki:        DefaultKi,
			Kd:        DefaultKd,
			Setpoint:  DefaultSetpoint,
			OutputMin: DefaultOutputMin,
			OutputMax: DefaultOutputMax,
			IntMin:    DefaultIntMin,
			IntMax:    DefaultIntMax,
			Deadband:  control.DefaultDeadband,
		},
		Plant: PlantConfig{
			Ambient:           plant.DefaultAmbient,
			MaxPower:          plant.DefaultMaxPower,
			ThermalCapacity:   plant.DefaultThermalCapacity,
			PassiveCoeff:      plant.DefaultPassiveCoeff,
			FanCoeff:          plant.DefaultFanCoeff,
			FanCurveExp:       plant.DefaultFanCurveExp,
			IdleThreshold:     plant.DefaultIdleThreshold,
			SafeThreshold:     plant.DefaultSafeThreshold,
			CriticalThreshold: plant.DefaultCriticalThreshold,
			AbsoluteMax:       plant.DefaultAbsoluteMax,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewPlant builds a plant with this configuration's thermal constants.
func (c *Config) NewPlant() *plant.Plant {
	p := plant.New()
	p.Ambient = c.Plant.Ambient
	p.MaxPower = c.Plant.MaxPower
	p.ThermalCapacity = c.Plant.ThermalCapacity
	p.PassiveCoeff = c.Plant.PassiveCoeff
	p.FanCoeff = c.Plant.FanCoeff
	p.FanCurveExp = c.Plant.FanCurveExp
	p.IdleThreshold = c.Plant.IdleThreshold
	p.SafeThreshold = c.Plant.SafeThreshold
	p.CriticalThreshold = c.Plant.CriticalThreshold
	p.AbsoluteMax = c.Plant.AbsoluteMax
	p.SetLoad(c.InitialLoad)
	return p
}

// NewPID builds a controller from this configuration's gains and
// limits.
func (c *Config) NewPID() *control.PID {
	pid := control.NewPID(c.PID.Kp, c.PID.Ki, c.PID.Kd, c.PID.Setpoint,
		control.Range{Min: c.PID.OutputMin, Max: c.PID.OutputMax},
		control.Range{Min: c.PID.IntMin, Max: c.PID.IntMax})
	pid.Deadband = c.PID.Deadband
	return pid
}
