// Package as5600 provides constants for register addresses and bitfields used
// in the operation of the AS5600 contactless magnetic rotary position sensor.
package as5600

const (
	// 7-bit I2C address (011_0110b). Fixed by the manufacturer; the device
	// family has no alternate-address pin.
	AddressDefault = 0x36

	// --- Register sub-addresses (two-byte registers are high-byte first) ---

	// Permanent programming
	regZMCO = 0x00 // R, bits 1:0, count of executed settings burns
	regBurn = 0xFF // W, privileged command register

	// Volatile configuration
	regZPOSHi = 0x01 // R/W, start position (12-bit)
	regZPOSLo = 0x02
	regMPOSHi = 0x03 // R/W, stop position (12-bit)
	regMPOSLo = 0x04
	regMANGHi = 0x05 // R/W, maximum angle (12-bit)
	regMANGLo = 0x06
	regCONFHi = 0x07 // R/W, configuration word (14-bit)
	regCONFLo = 0x08

	// Readouts / status
	regSTATUS      = 0x0B // R, magnet flags (MD, ML, MH)
	regRawAngleHi  = 0x0C // R, unfiltered angle (12-bit)
	regRawAngleLo  = 0x0D
	regAngleHi     = 0x0E // R, angle after ZPOS/MPOS/MANG and filters (12-bit)
	regAngleLo     = 0x0F
	regAGC         = 0x1A // R, automatic gain control
	regMagnitudeHi = 0x1B // R, CORDIC magnitude (12-bit)
	regMagnitudeLo = 0x1C

	// --- BURN command values (0xFF) ---
	burnCmdSettings = 0x80 // commits ZPOS/MPOS into OTP
	burnCmdConfig   = 0x40 // commits CONF into OTP

	// --- STATUS bits (0x0B) ---
	statusMagnetHigh     = 1 << 3 // MH, field too strong
	statusMagnetLow      = 1 << 4 // ML, field too weak
	statusMagnetDetected = 1 << 5 // MD

	// --- Hardware-enforced OTP write ceilings ---
	BurnSettingsLimit = 3 // ZPOS/MPOS target
	BurnConfigLimit   = 1 // CONF target
)

// Highest register sub-address plus one; the simulated register file spans
// the full readable map.
const regFileSize = regMagnitudeLo + 1
