package as5600

// CONF and STATUS bitfield codec, plus 12-bit range checks.
//
// CONF low byte:  PM[1:0] HYST[3:2] OUTS[5:4] PWMF[7:6]
// CONF high byte: SF[1:0] FTH[4:2] WD[5], bits 7:6 reserved (read as zero)

const angleMax = 0x0FFF

// checkU12 validates a caller-supplied 12-bit value. Out-of-range values are
// rejected, never masked.
func checkU12(v uint16) error {
	if v > angleMax {
		return ErrValueOutOfRange
	}
	return nil
}

// decodeU12 composes a 12-bit value from its high/low register bytes. A
// nonzero high nibble means the read did not come from a defined register
// state and is rejected rather than masked.
func decodeU12(hi, lo byte) (uint16, error) {
	if hi&0xF0 != 0 {
		return 0, ErrInvalidRegisterValue
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func encodeU12(v uint16) (hi, lo byte) {
	return byte(v >> 8), byte(v)
}

func decodeStatus(raw byte) (MagnetStatus, error) {
	s := MagnetStatus{
		Detected:  raw&statusMagnetDetected != 0,
		TooWeak:   raw&statusMagnetLow != 0,
		TooStrong: raw&statusMagnetHigh != 0,
	}
	// The field cannot be both too weak and too strong.
	if s.TooWeak && s.TooStrong {
		return MagnetStatus{}, ErrInvalidRegisterValue
	}
	return s, nil
}

func encodeStatus(s MagnetStatus) byte {
	var raw byte
	if s.Detected {
		raw |= statusMagnetDetected
	}
	if s.TooWeak {
		raw |= statusMagnetLow
	}
	if s.TooStrong {
		raw |= statusMagnetHigh
	}
	return raw
}

func decodeConfig(hi, lo byte) (Config, error) {
	if hi&0xC0 != 0 {
		return Config{}, ErrInvalidRegisterValue
	}
	outs := OutputStage(lo >> 4 & 0x03)
	if outs > OutputPWM {
		return Config{}, ErrInvalidRegisterValue
	}
	return Config{
		PowerMode:           PowerMode(lo & 0x03),
		Hysteresis:          Hysteresis(lo >> 2 & 0x03),
		OutputStage:         outs,
		PWMFrequency:        PWMFrequency(lo >> 6 & 0x03),
		SlowFilter:          SlowFilter(hi & 0x03),
		FastFilterThreshold: FastFilterThreshold(hi >> 2 & 0x07),
		Watchdog:            hi&0x20 != 0,
	}, nil
}

func encodeConfig(c Config) (hi, lo byte, err error) {
	if c.PowerMode > PowerLPM3 ||
		c.Hysteresis > Hyst3LSB ||
		c.OutputStage > OutputPWM ||
		c.PWMFrequency > PWM920Hz ||
		c.SlowFilter > SlowFilterX2 ||
		c.FastFilterThreshold > FastFilter10LSB {
		return 0, 0, ErrValueOutOfRange
	}
	lo = byte(c.PowerMode) |
		byte(c.Hysteresis)<<2 |
		byte(c.OutputStage)<<4 |
		byte(c.PWMFrequency)<<6
	hi = byte(c.SlowFilter) | byte(c.FastFilterThreshold)<<2
	if c.Watchdog {
		hi |= 0x20
	}
	return hi, lo, nil
}
