// cmd/as5600-dump/main.go
//
// Dumps the registers and diagnostics of an AS5600 on a Linux host I2C bus.
// Optionally drives the DIR pin before reading.
package main

import (
	"flag"
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"as5600-go/drivers/as5600"
	"as5600-go/hostio/dirpin"
	"as5600-go/hostio/periphbus"
)

func main() {
	busName := flag.String("bus", "", "I2C bus name (empty = first available)")
	dirChip := flag.String("dir-chip", "", "gpiochip wired to DIR (optional)")
	dirPin := flag.Int("dir-pin", -1, "GPIO offset wired to DIR")
	dirCCW := flag.Bool("dir-ccw", false, "drive DIR for counter-clockwise increment")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph init: %v", err)
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("open i2c bus: %v", err)
	}
	defer bus.Close()

	if *dirChip != "" && *dirPin >= 0 {
		direction := dirpin.Clockwise
		if *dirCCW {
			direction = dirpin.CounterClockwise
		}
		pin, err := dirpin.Request(*dirChip, *dirPin, direction)
		if err != nil {
			log.Fatalf("DIR pin: %v", err)
		}
		defer pin.Close()
	}

	dev := as5600.New(periphbus.New(bus))

	cfg, err := dev.ReadConfig()
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	fmt.Printf("config: %+v\n", cfg)

	for _, reg := range []struct {
		name string
		read func() (uint16, error)
	}{
		{"zpos", dev.ZeroPosition},
		{"mpos", dev.MaxPosition},
		{"mang", dev.MaxAngle},
	} {
		v, err := reg.read()
		if err != nil {
			log.Fatalf("read %s: %v", reg.name, err)
		}
		fmt.Printf("%s: %d\n", reg.name, v)
	}

	snap := as5600.ReadSnapshot(dev)
	fmt.Printf("raw angle: %d\nangle: %d\nmagnitude: %d\nagc: %d\n",
		snap.RawAngle, snap.Angle, snap.Magnitude, snap.AGC)
	fmt.Printf("magnet: detected=%v weak=%v strong=%v\n",
		snap.Magnet.Detected, snap.Magnet.TooWeak, snap.Magnet.TooStrong)
	fmt.Printf("burns: settings %d/%d, config %d/%d\n",
		snap.Burns.Settings, as5600.BurnSettingsLimit,
		snap.Burns.Config, as5600.BurnConfigLimit)
}
