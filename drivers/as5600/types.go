package as5600

// Power consumption mode. Lower modes stretch the sampling interval to save
// current.
type PowerMode uint8

const (
	PowerNominal PowerMode = 0b00 // continuous sampling
	PowerLPM1    PowerMode = 0b01 // 5 ms polling
	PowerLPM2    PowerMode = 0b10 // 20 ms polling
	PowerLPM3    PowerMode = 0b11 // 100 ms polling
)

// Hysteresis suppresses output toggling at rest, in output LSBs.
type Hysteresis uint8

const (
	HystOff  Hysteresis = 0b00
	Hyst1LSB Hysteresis = 0b01
	Hyst2LSB Hysteresis = 0b10
	Hyst3LSB Hysteresis = 0b11
)

// OutputStage selects the OUT pin behaviour. The pattern 0b11 is undefined
// on this device and is rejected by the codec.
type OutputStage uint8

const (
	OutputAnalogFull    OutputStage = 0b00 // ratiometric, 0..100% of VDD
	OutputAnalogReduced OutputStage = 0b01 // ratiometric, 10..90% of VDD
	OutputPWM           OutputStage = 0b10
)

// PWMFrequency applies when OutputStage is OutputPWM.
type PWMFrequency uint8

const (
	PWM115Hz PWMFrequency = 0b00
	PWM230Hz PWMFrequency = 0b01
	PWM460Hz PWMFrequency = 0b10
	PWM920Hz PWMFrequency = 0b11
)

// SlowFilter sets the step-response/noise trade-off of the output filter.
type SlowFilter uint8

const (
	SlowFilterX16 SlowFilter = 0b00
	SlowFilterX8  SlowFilter = 0b01
	SlowFilterX4  SlowFilter = 0b10
	SlowFilterX2  SlowFilter = 0b11
)

// FastFilterThreshold sets the step size (in LSBs) above which the slow
// filter is bypassed for a fast response.
type FastFilterThreshold uint8

const (
	FastFilterOff   FastFilterThreshold = 0b000 // slow filter only
	FastFilter6LSB  FastFilterThreshold = 0b001
	FastFilter7LSB  FastFilterThreshold = 0b010
	FastFilter9LSB  FastFilterThreshold = 0b011
	FastFilter18LSB FastFilterThreshold = 0b100
	FastFilter21LSB FastFilterThreshold = 0b101
	FastFilter24LSB FastFilterThreshold = 0b110
	FastFilter10LSB FastFilterThreshold = 0b111
)

// Config is the decoded CONF register word. Every field draws from a fixed
// enumeration; the codec rejects undefined bit patterns instead of coercing.
type Config struct {
	PowerMode           PowerMode
	Hysteresis          Hysteresis
	OutputStage         OutputStage
	PWMFrequency        PWMFrequency
	SlowFilter          SlowFilter
	FastFilterThreshold FastFilterThreshold
	// Watchdog drops the device to LPM3 after one minute at rest.
	Watchdog bool
}

// DefaultConfig mirrors the device's power-on configuration.
func DefaultConfig() Config {
	return Config{
		PowerMode:           PowerNominal,
		Hysteresis:          HystOff,
		OutputStage:         OutputAnalogFull,
		PWMFrequency:        PWM115Hz,
		SlowFilter:          SlowFilterX16,
		FastFilterThreshold: FastFilterOff,
		Watchdog:            false,
	}
}

// MagnetStatus reports magnet detection and field-strength health.
// Detected=false is a valid status, not an error; callers branch on it.
type MagnetStatus struct {
	Detected  bool
	TooWeak   bool // magnet too far
	TooStrong bool // magnet too close
}

// BurnCounts reports how many permanent writes each OTP target has consumed.
type BurnCounts struct {
	Settings uint8 // ZPOS/MPOS target, ceiling BurnSettingsLimit
	Config   uint8 // CONF target, ceiling BurnConfigLimit
}
