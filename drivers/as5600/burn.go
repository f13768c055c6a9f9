package as5600

// otpGuard tracks the remaining permanent-write budget of one OTP burn
// target. States: available while count < ceiling, exhausted once
// count == ceiling. Exhaustion is terminal; nothing in this package can
// decrement a counter.
type otpGuard struct {
	count   uint8
	ceiling uint8
}

func (g otpGuard) exhausted() bool { return g.count >= g.ceiling }

// authorize rejects the burn before any write is attempted.
func (g otpGuard) authorize() error {
	if g.exhausted() {
		return ErrBurnLimitExceeded
	}
	return nil
}

// commit records one consumed write. Call only after the underlying write
// succeeded, so a rejected or failed burn leaves the counter unchanged.
func (g *otpGuard) commit() { g.count++ }

// --- Device burn operations ---

// BurnSettings permanently commits the current ZPOS/MPOS into OTP. The
// settings counter is owned by the hardware (ZMCO), so it is re-read before
// every attempt rather than trusted from a local cache.
func (d *Device) BurnSettings(auth BurnAuthorization) error {
	if !auth.acknowledged {
		return ErrBurnNotAuthorized
	}
	count, err := d.readBurnCount()
	if err != nil {
		return err
	}
	g := otpGuard{count: count, ceiling: BurnSettingsLimit}
	if err := g.authorize(); err != nil {
		return err
	}
	return d.writeByte(regBurn, burnCmdSettings)
}

// BurnConfig permanently commits the current Config into OTP. The device
// exposes no readable counter for this target, so the count is tracked
// per-handle, starting at zero for a fresh Device.
func (d *Device) BurnConfig(auth BurnAuthorization) error {
	if !auth.acknowledged {
		return ErrBurnNotAuthorized
	}
	if err := d.configGuard.authorize(); err != nil {
		return err
	}
	if err := d.writeByte(regBurn, burnCmdConfig); err != nil {
		return err
	}
	d.configGuard.commit()
	return nil
}

// BurnCounts reports the consumed write budget per OTP target. The settings
// count comes from the hardware ZMCO register; the config count is the
// per-handle tally (see BurnConfig).
func (d *Device) BurnCounts() (BurnCounts, error) {
	settings, err := d.readBurnCount()
	if err != nil {
		return BurnCounts{}, err
	}
	return BurnCounts{Settings: settings, Config: d.configGuard.count}, nil
}

func (d *Device) readBurnCount() (uint8, error) {
	v, err := d.readByte(regZMCO)
	if err != nil {
		return 0, err
	}
	return v & 0x03, nil
}
