package simscenario

import "fmt"

const angleMax = 4095

// Validate checks scenario correctness. It performs declarative validation
// only and does not mutate the scenario.
func Validate(s *Scenario) error {
	init := s.Initial

	for _, f := range []struct {
		name string
		v    uint16
	}{
		{"raw_angle", init.RawAngle},
		{"angle", init.Angle},
		{"magnitude", init.Magnitude},
		{"zero_position", init.ZeroPosition},
		{"max_position", init.MaxPosition},
		{"max_angle", init.MaxAngle},
	} {
		if f.v > angleMax {
			return fmt.Errorf("initial: %s %d exceeds 12-bit range", f.name, f.v)
		}
	}

	if init.FieldTooWeak && init.FieldTooStrong {
		return fmt.Errorf("initial: field cannot be both too weak and too strong")
	}
	if init.BurnedSettings > 3 {
		return fmt.Errorf("initial: burned_settings %d exceeds ceiling 3", init.BurnedSettings)
	}
	if init.BurnedConfig > 1 {
		return fmt.Errorf("initial: burned_config %d exceeds ceiling 1", init.BurnedConfig)
	}

	m := s.Motion
	if m.IntervalMs < 0 {
		return fmt.Errorf("motion: interval_ms must be non-negative")
	}
	if m.JitterLSB < 0 {
		return fmt.Errorf("motion: jitter_lsb must be non-negative")
	}
	if step := m.StepLSB; step > angleMax || step < -angleMax {
		return fmt.Errorf("motion: step_lsb %d exceeds 12-bit range", step)
	}
	return nil
}
