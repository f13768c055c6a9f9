package as5600

// Sensor is the capability contract shared by the hardware backend (Device)
// and the simulated backend (Sim). Application code holds a Sensor and is
// indifferent to which backend serves it; both enforce the same OTP write
// ceilings with the same success/failure semantics.
type Sensor interface {
	// RawAngle returns the unfiltered 12-bit angle.
	RawAngle() (uint16, error)
	// Angle returns the 12-bit angle after ZPOS/MPOS/MANG and filtering.
	Angle() (uint16, error)

	// MagnetStatus reports magnet detection and field health. A missing
	// magnet is a valid status, not an error.
	MagnetStatus() (MagnetStatus, error)
	// AGC returns the automatic gain control value; meaningful only while a
	// magnet is detected.
	AGC() (uint8, error)
	// Magnitude returns the raw 12-bit field-strength reading.
	Magnitude() (uint16, error)

	// ReadConfig/WriteConfig access the volatile configuration word. Writes
	// take effect immediately; no OTP budget is consumed.
	ReadConfig() (Config, error)
	WriteConfig(Config) error

	// Volatile window bounds and angular range, freely rewritable. MANG is
	// an alternative to the ZPOS/MPOS pair; keeping their usage mutually
	// exclusive is the caller's responsibility.
	ZeroPosition() (uint16, error)
	SetZeroPosition(uint16) error
	MaxPosition() (uint16, error)
	SetMaxPosition(uint16) error
	MaxAngle() (uint16, error)
	SetMaxAngle(uint16) error

	// BurnSettings permanently commits the current ZPOS/MPOS into OTP.
	// At most BurnSettingsLimit invocations can ever succeed; beyond that it
	// fails with ErrBurnLimitExceeded without touching the device.
	BurnSettings(BurnAuthorization) error
	// BurnConfig permanently commits the current Config into OTP. At most
	// BurnConfigLimit invocations can ever succeed.
	BurnConfig(BurnAuthorization) error
	// BurnCounts reports the consumed write budget per OTP target.
	BurnCounts() (BurnCounts, error)
}

// BurnAuthorization is the explicit acknowledgement a caller must construct
// before invoking an irreversible burn operation. The zero value is invalid,
// so no burn can be reached through an ordinary call path by accident.
type BurnAuthorization struct {
	acknowledged bool
}

// AuthorizeBurn acknowledges that the requested burn is permanent and
// consumes one unit of a hardware-limited write budget.
func AuthorizeBurn() BurnAuthorization {
	return BurnAuthorization{acknowledged: true}
}
