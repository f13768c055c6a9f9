// Package periphbus adapts a periph.io I²C bus to the Tx shape the chip
// drivers in this module consume, so the same driver code runs against a
// Linux host bus or an MCU bus.
package periphbus

import (
	"periph.io/x/conn/v3/i2c"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = Bus{}

// Bus wraps a periph i2c.Bus. The zero value is not usable; construct with
// New.
type Bus struct {
	bus i2c.Bus
}

func New(b i2c.Bus) Bus { return Bus{bus: b} }

// Tx performs a write followed by a repeated-start read when both w and r
// are provided, without releasing the bus between them.
func (b Bus) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}
