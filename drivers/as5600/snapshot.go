package as5600

// Snapshot collects commonly used readouts and diagnostics from any Sensor.
// Zero values remain where individual reads fail.
type Snapshot struct {
	RawAngle  uint16
	Angle     uint16
	Magnitude uint16
	AGC       uint8
	Magnet    MagnetStatus
	Burns     BurnCounts
}

func ReadSnapshot(s Sensor) Snapshot {
	var out Snapshot
	ReadSnapshotInto(s, &out)
	return out
}

func ReadSnapshotInto(sensor Sensor, out *Snapshot) {
	var s Snapshot
	if v, e := sensor.RawAngle(); e == nil {
		s.RawAngle = v
	}
	if v, e := sensor.Angle(); e == nil {
		s.Angle = v
	}
	if v, e := sensor.Magnitude(); e == nil {
		s.Magnitude = v
	}
	if v, e := sensor.AGC(); e == nil {
		s.AGC = v
	}
	if v, e := sensor.MagnetStatus(); e == nil {
		s.Magnet = v
	}
	if v, e := sensor.BurnCounts(); e == nil {
		s.Burns = v
	}
	*out = s
}
