// cmd/as5600-sim/main.go
//
// Runs the simulated AS5600 backend with a background goroutine advancing
// the virtual angle, while the foreground reads it through the same Sensor
// contract an application would hold against real hardware.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mazen160/go-random"

	"as5600-go/drivers/as5600"
	"as5600-go/simscenario"
)

// Defaults when no scenario file is given.
var defaultMotion = simscenario.Motion{
	StepLSB:    7,
	JitterLSB:  2,
	IntervalMs: 10,
}

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file")
	duration := flag.Duration("duration", 10*time.Second, "run time (0 = until interrupted)")
	printEvery := flag.Duration("print", 500*time.Millisecond, "snapshot print interval")
	flag.Parse()

	sim := as5600.NewSim()
	motion := defaultMotion
	if *scenarioPath != "" {
		sc, err := simscenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		if err := sc.Apply(sim); err != nil {
			log.Fatalf("apply scenario: %v", err)
		}
		motion = sc.Motion
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		advance(sim, motion, stop)
	}()

	// The reader side holds only the capability contract.
	var sensor as5600.Sensor = sim

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	tick := time.NewTicker(*printEvery)
	defer tick.Stop()

	fmt.Println("raw   angle  magnitude  agc  magnet          burns")
loop:
	for {
		select {
		case <-sig:
			break loop
		case <-deadline:
			break loop
		case <-tick.C:
			snap := as5600.ReadSnapshot(sensor)
			fmt.Printf("%4d  %4d   %4d       %3d  %-14s  %d/%d\n",
				snap.RawAngle, snap.Angle, snap.Magnitude, snap.AGC,
				magnetLabel(snap.Magnet), snap.Burns.Settings, snap.Burns.Config)
		}
	}
	close(stop)
	wg.Wait()
}

// advance moves the virtual angle once per tick, with bounded random jitter
// on top of the configured step.
func advance(sim *as5600.Sim, m simscenario.Motion, stop <-chan struct{}) {
	interval := time.Duration(m.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}

	angle := 0
	if v, err := sim.RawAngle(); err == nil {
		angle = int(v)
	}

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}
		step := m.StepLSB
		if m.JitterLSB > 0 {
			if j, err := random.IntRange(-m.JitterLSB, m.JitterLSB+1); err == nil {
				step += j
			}
		}
		angle = wrap12(angle + step)
		if err := sim.ForceRawAngle(uint16(angle)); err != nil {
			log.Printf("force raw angle: %v", err)
			continue
		}
		if err := sim.ForceAngle(uint16(angle)); err != nil {
			log.Printf("force angle: %v", err)
		}
	}
}

func wrap12(v int) int {
	v %= 4096
	if v < 0 {
		v += 4096
	}
	return v
}

func magnetLabel(m as5600.MagnetStatus) string {
	switch {
	case !m.Detected:
		return "not detected"
	case m.TooWeak:
		return "weak field"
	case m.TooStrong:
		return "strong field"
	default:
		return "ok"
	}
}
