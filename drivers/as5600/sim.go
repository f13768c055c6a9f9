package as5600

import "time"

// Compile-time contract check.
var _ Sensor = (*Sim)(nil)

// Bound on acquiring the register-file lock before a call gives up with
// ErrLockContention.
const defaultLockWait = 50 * time.Millisecond

// Sim is the simulated backend: a Sensor over an in-memory register file,
// with the same observable contract and OTP ceilings as Device.
//
// The register file may be shared by multiple concurrent callers (e.g. a
// background state-advancing goroutine and one or more readers). One lock
// guards the whole file, so no caller ever observes a composite value torn
// across an update.
//
// The Force* mutation surface is deliberately not part of Sensor: code that
// holds only a Sensor value cannot reach it, preserving substitutability
// with the hardware backend.
type Sim struct {
	sem      chan struct{} // capacity 1; whole-file mutual exclusion
	lockWait time.Duration

	regs [regFileSize]byte

	settingsGuard otpGuard
	configGuard   otpGuard

	// OTP shadow state, written only by burns.
	otpZPOSHi, otpZPOSLo byte
	otpMPOSHi, otpMPOSLo byte
	otpCONFHi, otpCONFLo byte
}

// NewSim constructs a simulated sensor in a healthy state: magnet detected
// with a nominal field, AGC mid-range, watchdog enabled, no burns consumed.
func NewSim() *Sim {
	s := &Sim{
		sem:           make(chan struct{}, 1),
		lockWait:      defaultLockWait,
		settingsGuard: otpGuard{ceiling: BurnSettingsLimit},
		configGuard:   otpGuard{ceiling: BurnConfigLimit},
	}
	s.regs[regSTATUS] = statusMagnetDetected
	s.regs[regAGC] = 100
	s.regs[regCONFHi] = 0x20 // WD bit: watchdog on
	return s
}

// acquire takes the register-file lock, waiting at most lockWait. It makes a
// single bounded attempt; retry policy belongs to the caller.
func (s *Sim) acquire() error {
	select {
	case s.sem <- struct{}{}:
		return nil
	default:
	}
	t := time.NewTimer(s.lockWait)
	defer t.Stop()
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-t.C:
		return ErrLockContention
	}
}

func (s *Sim) release() { <-s.sem }

// --- Sensor implementation ---

func (s *Sim) RawAngle() (uint16, error)  { return s.readU12(regRawAngleHi) }
func (s *Sim) Angle() (uint16, error)     { return s.readU12(regAngleHi) }
func (s *Sim) Magnitude() (uint16, error) { return s.readU12(regMagnitudeHi) }

func (s *Sim) MagnetStatus() (MagnetStatus, error) {
	if err := s.acquire(); err != nil {
		return MagnetStatus{}, err
	}
	raw := s.regs[regSTATUS]
	s.release()
	return decodeStatus(raw)
}

func (s *Sim) AGC() (uint8, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.release()
	return s.regs[regAGC], nil
}

func (s *Sim) ReadConfig() (Config, error) {
	if err := s.acquire(); err != nil {
		return Config{}, err
	}
	hi, lo := s.regs[regCONFHi], s.regs[regCONFLo]
	s.release()
	return decodeConfig(hi, lo)
}

func (s *Sim) WriteConfig(c Config) error {
	hi, lo, err := encodeConfig(c)
	if err != nil {
		return err
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	s.regs[regCONFHi], s.regs[regCONFLo] = hi, lo
	return nil
}

func (s *Sim) ZeroPosition() (uint16, error)  { return s.readU12(regZPOSHi) }
func (s *Sim) SetZeroPosition(v uint16) error { return s.writeU12(regZPOSHi, v) }
func (s *Sim) MaxPosition() (uint16, error)   { return s.readU12(regMPOSHi) }
func (s *Sim) SetMaxPosition(v uint16) error  { return s.writeU12(regMPOSHi, v) }
func (s *Sim) MaxAngle() (uint16, error)      { return s.readU12(regMANGHi) }
func (s *Sim) SetMaxAngle(v uint16) error     { return s.writeU12(regMANGHi, v) }

// BurnSettings commits the current volatile ZPOS/MPOS into the OTP shadow,
// consuming one unit of the settings budget. ZMCO mirrors the count, exactly
// as the hardware maintains it.
func (s *Sim) BurnSettings(auth BurnAuthorization) error {
	if !auth.acknowledged {
		return ErrBurnNotAuthorized
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	if err := s.settingsGuard.authorize(); err != nil {
		return err
	}
	s.otpZPOSHi, s.otpZPOSLo = s.regs[regZPOSHi], s.regs[regZPOSLo]
	s.otpMPOSHi, s.otpMPOSLo = s.regs[regMPOSHi], s.regs[regMPOSLo]
	s.settingsGuard.commit()
	s.regs[regZMCO] = s.settingsGuard.count
	return nil
}

// BurnConfig commits the current volatile Config into the OTP shadow,
// consuming the single unit of the config budget.
func (s *Sim) BurnConfig(auth BurnAuthorization) error {
	if !auth.acknowledged {
		return ErrBurnNotAuthorized
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	if err := s.configGuard.authorize(); err != nil {
		return err
	}
	s.otpCONFHi, s.otpCONFLo = s.regs[regCONFHi], s.regs[regCONFLo]
	s.configGuard.commit()
	return nil
}

func (s *Sim) BurnCounts() (BurnCounts, error) {
	if err := s.acquire(); err != nil {
		return BurnCounts{}, err
	}
	defer s.release()
	return BurnCounts{
		Settings: s.settingsGuard.count,
		Config:   s.configGuard.count,
	}, nil
}

// --- Simulation mutation surface (not part of Sensor) ---

// ForceRawAngle sets the raw angle the sim reports.
func (s *Sim) ForceRawAngle(v uint16) error { return s.force12(regRawAngleHi, v) }

// ForceAngle sets the post-filter angle the sim reports.
func (s *Sim) ForceAngle(v uint16) error { return s.force12(regAngleHi, v) }

// ForceMagnitude sets the field-strength reading.
func (s *Sim) ForceMagnitude(v uint16) error { return s.force12(regMagnitudeHi, v) }

// ForceMagnetStatus sets the magnet flags, including magnet loss and
// field-strength extremes. A record claiming the field is both too weak and
// too strong is rejected.
func (s *Sim) ForceMagnetStatus(m MagnetStatus) error {
	if m.TooWeak && m.TooStrong {
		return ErrInvalidRegisterValue
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	s.regs[regSTATUS] = encodeStatus(m)
	return nil
}

// ForceAGC sets the automatic gain control value.
func (s *Sim) ForceAGC(v uint8) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	s.regs[regAGC] = v
	return nil
}

// ForceBurnCounts presets the consumed write budgets, e.g. to model a chip
// whose OTP was partially or fully spent before this process started.
// Budgets can only be consumed, never restored: a preset below a current
// count is rejected, so an exhausted target stays exhausted even through
// this backdoor.
func (s *Sim) ForceBurnCounts(settings, config uint8) error {
	if settings > BurnSettingsLimit || config > BurnConfigLimit {
		return ErrValueOutOfRange
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	if settings < s.settingsGuard.count || config < s.configGuard.count {
		return ErrValueOutOfRange
	}
	s.settingsGuard.count = settings
	s.configGuard.count = config
	s.regs[regZMCO] = settings
	return nil
}

// --- Locked register-file helpers ---

func (s *Sim) readU12(regHi int) (uint16, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	hi, lo := s.regs[regHi], s.regs[regHi+1]
	s.release()
	return decodeU12(hi, lo)
}

func (s *Sim) writeU12(regHi int, v uint16) error {
	if err := checkU12(v); err != nil {
		return err
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	s.regs[regHi], s.regs[regHi+1] = encodeU12(v)
	return nil
}

func (s *Sim) force12(regHi int, v uint16) error { return s.writeU12(regHi, v) }
