// Device is the hardware backend: every Sensor operation becomes one
// register-addressed transaction against a caller-supplied I2C handle.
//
// Design notes (datasheet references):
// • I2C, fixed 7-bit address 0x36; two-byte registers are high-byte first.
// • Composite reads use a single write + repeated-start read so both bytes
//   come from one bus turnaround. The device latches angle outputs per
//   sample, so this is best-effort consistency, not atomicity.
// • Transport errors are returned to the caller unwrapped and never retried.

package as5600

import "tinygo.org/x/drivers"

// Compile-time contract check.
var _ Sensor = (*Device)(nil)

// Device represents an AS5600 on an I2C bus. Instances are not safe for
// concurrent use; bus sharing between devices is an external concern.
type Device struct {
	bus  drivers.I2C
	addr uint16

	configGuard otpGuard

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [2]byte
}

// New constructs a Device on the supplied bus at the fixed device address.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:         bus,
		addr:        AddressDefault,
		configGuard: otpGuard{ceiling: BurnConfigLimit},
	}
}

// --- Readouts ---

func (d *Device) RawAngle() (uint16, error) { return d.readU12(regRawAngleHi) }
func (d *Device) Angle() (uint16, error)    { return d.readU12(regAngleHi) }
func (d *Device) Magnitude() (uint16, error) {
	return d.readU12(regMagnitudeHi)
}

func (d *Device) MagnetStatus() (MagnetStatus, error) {
	raw, err := d.readByte(regSTATUS)
	if err != nil {
		return MagnetStatus{}, err
	}
	return decodeStatus(raw)
}

func (d *Device) AGC() (uint8, error) { return d.readByte(regAGC) }

// --- Volatile configuration ---

func (d *Device) ReadConfig() (Config, error) {
	hi, lo, err := d.readPair(regCONFHi)
	if err != nil {
		return Config{}, err
	}
	return decodeConfig(hi, lo)
}

func (d *Device) WriteConfig(c Config) error {
	hi, lo, err := encodeConfig(c)
	if err != nil {
		return err
	}
	return d.writePair(regCONFHi, hi, lo)
}

func (d *Device) ZeroPosition() (uint16, error)  { return d.readU12(regZPOSHi) }
func (d *Device) SetZeroPosition(v uint16) error { return d.writeU12(regZPOSHi, v) }
func (d *Device) MaxPosition() (uint16, error)   { return d.readU12(regMPOSHi) }
func (d *Device) SetMaxPosition(v uint16) error  { return d.writeU12(regMPOSHi, v) }
func (d *Device) MaxAngle() (uint16, error)      { return d.readU12(regMANGHi) }
func (d *Device) SetMaxAngle(v uint16) error     { return d.writeU12(regMANGHi, v) }

// --- Low-level register access ---

func (d *Device) readByte(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) writeByte(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.bus.Tx(d.addr, d.w[:2], nil)
}

// readPair reads two consecutive registers in one transaction, high byte
// first, without interleaving other register access.
func (d *Device) readPair(regHi byte) (hi, lo byte, err error) {
	d.w[0] = regHi
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:2]); err != nil {
		return 0, 0, err
	}
	return d.r[0], d.r[1], nil
}

func (d *Device) writePair(regHi, hi, lo byte) error {
	d.w[0] = regHi
	d.w[1] = hi
	d.w[2] = lo
	return d.bus.Tx(d.addr, d.w[:3], nil)
}

func (d *Device) readU12(regHi byte) (uint16, error) {
	hi, lo, err := d.readPair(regHi)
	if err != nil {
		return 0, err
	}
	return decodeU12(hi, lo)
}

func (d *Device) writeU12(regHi byte, v uint16) error {
	if err := checkU12(v); err != nil {
		return err
	}
	hi, lo := encodeU12(v)
	return d.writePair(regHi, hi, lo)
}
