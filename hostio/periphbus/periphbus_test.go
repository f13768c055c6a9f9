package periphbus

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Compile-time check.
var _ i2c.Bus = (*fakeBus)(nil)

// Scripted fake recording what reaches the underlying periph bus.
type fakeBus struct {
	txCount int
	addr    uint16
	w       []byte
	readLen int
	err     error
}

func (f *fakeBus) String() string                    { return "fake" }
func (f *fakeBus) SetSpeed(_ physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.txCount++
	f.addr = addr
	f.w = append([]byte(nil), w...)
	f.readLen = len(r)
	if f.err != nil {
		return f.err
	}
	for i := range r {
		r[i] = byte(i + 1)
	}
	return nil
}

func TestBus_TxForwardsWriteAndReadAsOneCall(t *testing.T) {
	f := &fakeBus{}
	b := New(f)

	r := make([]byte, 2)
	if err := b.Tx(0x36, []byte{0x0C}, r); err != nil {
		t.Fatalf("tx: %v", err)
	}
	// Write + repeated-start read must stay one bus transaction.
	if f.txCount != 1 {
		t.Fatalf("tx count = %d, want 1", f.txCount)
	}
	if f.addr != 0x36 {
		t.Fatalf("addr = %#x, want 0x36", f.addr)
	}
	if len(f.w) != 1 || f.w[0] != 0x0C {
		t.Fatalf("write bytes = %v", f.w)
	}
	if f.readLen != 2 || r[0] != 1 || r[1] != 2 {
		t.Fatalf("read buffer = %v (len %d)", r, f.readLen)
	}
}

func TestBus_TxErrorsPassThrough(t *testing.T) {
	busErr := errors.New("i2c: nack")
	f := &fakeBus{err: busErr}
	if err := New(f).Tx(0x36, []byte{0x00}, nil); !errors.Is(err, busErr) {
		t.Fatalf("error = %v, want pass-through", err)
	}
}
