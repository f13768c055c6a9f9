package as5600

import (
	"errors"
	"testing"
)

func TestOTPGuard_StateMachine(t *testing.T) {
	g := otpGuard{ceiling: 3}
	for i := 0; i < 3; i++ {
		if g.exhausted() {
			t.Fatalf("exhausted at count %d", g.count)
		}
		if err := g.authorize(); err != nil {
			t.Fatalf("authorize at count %d: %v", g.count, err)
		}
		g.commit()
	}
	if !g.exhausted() {
		t.Fatal("not exhausted at ceiling")
	}
	if err := g.authorize(); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("authorize at ceiling: %v", err)
	}
	if g.count != 3 {
		t.Fatalf("rejected authorize changed count to %d", g.count)
	}
}

// A fresh backend allows exactly three settings burns; the fourth is
// rejected with the counter unchanged.
func TestSim_BurnSettingsCeiling(t *testing.T) {
	s := NewSim()
	for want := uint8(1); want <= 3; want++ {
		if err := s.BurnSettings(AuthorizeBurn()); err != nil {
			t.Fatalf("burn %d: %v", want, err)
		}
		counts, err := s.BurnCounts()
		if err != nil {
			t.Fatalf("counts after burn %d: %v", want, err)
		}
		if counts.Settings != want {
			t.Fatalf("settings count = %d, want %d", counts.Settings, want)
		}
	}
	if err := s.BurnSettings(AuthorizeBurn()); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("4th burn: %v", err)
	}
	counts, _ := s.BurnCounts()
	if counts.Settings != 3 {
		t.Fatalf("settings count after rejection = %d, want 3", counts.Settings)
	}
}

// The config target allows exactly one burn.
func TestSim_BurnConfigCeiling(t *testing.T) {
	s := NewSim()
	if err := s.BurnConfig(AuthorizeBurn()); err != nil {
		t.Fatalf("first burn: %v", err)
	}
	counts, _ := s.BurnCounts()
	if counts.Config != 1 {
		t.Fatalf("config count = %d, want 1", counts.Config)
	}
	if err := s.BurnConfig(AuthorizeBurn()); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("second burn: %v", err)
	}
	counts, _ = s.BurnCounts()
	if counts.Config != 1 {
		t.Fatalf("config count after rejection = %d, want 1", counts.Config)
	}
}

// A rejected burn must leave every register and counter untouched.
func TestSim_RejectedBurnHasNoSideEffects(t *testing.T) {
	s := NewSim()
	if err := s.ForceBurnCounts(3, 1); err != nil {
		t.Fatalf("preset: %v", err)
	}
	if err := s.SetZeroPosition(1234); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMaxPosition(2345); err != nil {
		t.Fatal(err)
	}
	before := ReadSnapshot(s)
	regsBefore := s.regs

	if err := s.BurnSettings(AuthorizeBurn()); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("settings burn: %v", err)
	}
	if err := s.BurnConfig(AuthorizeBurn()); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("config burn: %v", err)
	}

	if after := ReadSnapshot(s); after != before {
		t.Fatalf("rejected burn changed state: %+v -> %+v", before, after)
	}
	if s.regs != regsBefore {
		t.Fatal("rejected burn touched the register file")
	}
}

func TestSim_BurnCommitsVolatileIntoOTP(t *testing.T) {
	s := NewSim()
	if err := s.SetZeroPosition(0x123); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMaxPosition(0xABC); err != nil {
		t.Fatal(err)
	}
	if err := s.BurnSettings(AuthorizeBurn()); err != nil {
		t.Fatal(err)
	}
	if got, _ := decodeU12(s.otpZPOSHi, s.otpZPOSLo); got != 0x123 {
		t.Fatalf("OTP zpos = %#x", got)
	}
	if got, _ := decodeU12(s.otpMPOSHi, s.otpMPOSLo); got != 0xABC {
		t.Fatalf("OTP mpos = %#x", got)
	}
	// ZMCO mirrors the settings count.
	if s.regs[regZMCO] != 1 {
		t.Fatalf("ZMCO = %d", s.regs[regZMCO])
	}
}

func TestBurn_ZeroAuthorizationRejected(t *testing.T) {
	s := NewSim()
	var zero BurnAuthorization
	if err := s.BurnSettings(zero); !errors.Is(err, ErrBurnNotAuthorized) {
		t.Fatalf("settings with zero token: %v", err)
	}
	if err := s.BurnConfig(zero); !errors.Is(err, ErrBurnNotAuthorized) {
		t.Fatalf("config with zero token: %v", err)
	}
	counts, _ := s.BurnCounts()
	if counts != (BurnCounts{}) {
		t.Fatalf("unauthorized burn changed counts: %+v", counts)
	}
}

func TestSim_ForceBurnCountsValidated(t *testing.T) {
	s := NewSim()
	if err := s.ForceBurnCounts(4, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("settings=4: %v", err)
	}
	if err := s.ForceBurnCounts(0, 2); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("config=2: %v", err)
	}
}

// Exhaustion is terminal: not even the simulation backdoor may restore a
// consumed budget.
func TestSim_ForceBurnCountsNeverDecreases(t *testing.T) {
	s := NewSim()
	if err := s.ForceBurnCounts(3, 1); err != nil {
		t.Fatalf("preset: %v", err)
	}
	if err := s.ForceBurnCounts(2, 1); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("settings decrease: %v", err)
	}
	if err := s.ForceBurnCounts(3, 0); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("config decrease: %v", err)
	}
	counts, err := s.BurnCounts()
	if err != nil {
		t.Fatal(err)
	}
	if counts != (BurnCounts{Settings: 3, Config: 1}) {
		t.Fatalf("counts after rejected preset = %+v", counts)
	}
	if err := s.BurnSettings(AuthorizeBurn()); !errors.Is(err, ErrBurnLimitExceeded) {
		t.Fatalf("burn after rejected preset: %v", err)
	}
}
