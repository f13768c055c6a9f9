// Package simscenario loads YAML scenario files that seed the simulated
// AS5600 backend: an initial virtual register state plus a motion profile
// for a background state-advancing goroutine.
package simscenario

import (
	"os"

	"gopkg.in/yaml.v3"

	"as5600-go/drivers/as5600"
)

type Scenario struct {
	Initial InitialState `yaml:"initial"`
	Motion  Motion       `yaml:"motion"`
}

// InitialState is the virtual register state applied before the scenario
// starts running.
type InitialState struct {
	RawAngle  uint16 `yaml:"raw_angle"`
	Angle     uint16 `yaml:"angle"`
	Magnitude uint16 `yaml:"magnitude"`
	AGC       uint8  `yaml:"agc"`

	MagnetDetected bool `yaml:"magnet_detected"`
	FieldTooWeak   bool `yaml:"field_too_weak"`
	FieldTooStrong bool `yaml:"field_too_strong"`

	ZeroPosition uint16 `yaml:"zero_position"`
	MaxPosition  uint16 `yaml:"max_position"`
	MaxAngle     uint16 `yaml:"max_angle"`

	// Pre-consumed OTP budgets, to model a previously programmed chip.
	BurnedSettings uint8 `yaml:"burned_settings"`
	BurnedConfig   uint8 `yaml:"burned_config"`
}

// Motion advances the virtual angle once per tick.
type Motion struct {
	StepLSB    int `yaml:"step_lsb"`    // signed increment per tick
	JitterLSB  int `yaml:"jitter_lsb"`  // max random deviation per tick
	IntervalMs int `yaml:"interval_ms"` // tick period
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Apply seeds a simulated sensor with the scenario's initial state. The
// scenario must have been validated.
func (s *Scenario) Apply(sim *as5600.Sim) error {
	init := s.Initial
	if err := sim.ForceRawAngle(init.RawAngle); err != nil {
		return err
	}
	if err := sim.ForceAngle(init.Angle); err != nil {
		return err
	}
	if err := sim.ForceMagnitude(init.Magnitude); err != nil {
		return err
	}
	if err := sim.ForceAGC(init.AGC); err != nil {
		return err
	}
	if err := sim.ForceMagnetStatus(as5600.MagnetStatus{
		Detected:  init.MagnetDetected,
		TooWeak:   init.FieldTooWeak,
		TooStrong: init.FieldTooStrong,
	}); err != nil {
		return err
	}
	if err := sim.SetZeroPosition(init.ZeroPosition); err != nil {
		return err
	}
	if err := sim.SetMaxPosition(init.MaxPosition); err != nil {
		return err
	}
	if err := sim.SetMaxAngle(init.MaxAngle); err != nil {
		return err
	}
	return sim.ForceBurnCounts(init.BurnedSettings, init.BurnedConfig)
}
