// Package dirpin drives the AS5600 DIR input from a Linux GPIO line. The
// pin selects which rotation sense increments the angle output; it is a
// plain logic input sampled continuously by the chip.
package dirpin

import "github.com/warthog618/gpiod"

// Direction of rotation that increments the angle output.
type Direction int

const (
	// Clockwise (DIR tied low): angle increases with clockwise rotation,
	// viewed from the magnet side.
	Clockwise Direction = 0
	// CounterClockwise (DIR tied high).
	CounterClockwise Direction = 1
)

// Pin is a requested GPIO output line wired to DIR.
type Pin struct {
	chip *gpiod.Chip
	line *gpiod.Line
}

// Request claims the GPIO line at offset on the named chip and drives it to
// the initial direction.
func Request(chipName string, offset int, initial Direction) (*Pin, error) {
	c, err := gpiod.NewChip(chipName, gpiod.WithConsumer("as5600-dir"))
	if err != nil {
		return nil, err
	}
	line, err := c.RequestLine(offset, gpiod.AsOutput(int(initial)))
	if err != nil {
		c.Close()
		return nil, err
	}
	return &Pin{chip: c, line: line}, nil
}

// Set drives DIR to the given direction.
func (p *Pin) Set(d Direction) error {
	return p.line.SetValue(int(d))
}

// Close releases the line and the chip handle.
func (p *Pin) Close() error {
	err := p.line.Close()
	if cerr := p.chip.Close(); err == nil {
		err = cerr
	}
	return err
}
