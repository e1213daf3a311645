package gpio

import (
	"errors"
	"testing"

	"github.com/mwegrzyn/bincalc/internal/config"
)

func TestMockBank_EventOrder(t *testing.T) {
	bank := NewMockBank(
		Event{Button: 2, Edge: Falling},
		Event{Button: 0, Edge: Rising},
	)
	bank.Push(Event{Button: 3, Edge: Falling})

	want := []Event{
		{Button: 2, Edge: Falling},
		{Button: 0, Edge: Rising},
		{Button: 3, Edge: Falling},
	}
	for i, w := range want {
		ev, err := bank.WaitEvent()
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if ev != w {
			t.Errorf("event %d = %+v, want %+v", i, ev, w)
		}
	}
}

func TestMockBank_ScriptExhausted(t *testing.T) {
	bank := NewMockBank()
	if _, err := bank.WaitEvent(); !errors.Is(err, ErrScriptEnd) {
		t.Errorf("WaitEvent error = %v, want %v", err, ErrScriptEnd)
	}
}

func TestMockBank_ClosedErrors(t *testing.T) {
	bank := NewMockBank(Event{Button: 1, Edge: Falling})
	if err := bank.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := bank.WaitEvent(); !errors.Is(err, ErrClosed) {
		t.Errorf("WaitEvent error = %v, want %v", err, ErrClosed)
	}
	if err := bank.WriteLED(0, High); !errors.Is(err, ErrClosed) {
		t.Errorf("WriteLED error = %v, want %v", err, ErrClosed)
	}
	// Close is idempotent.
	if err := bank.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMockBank_RecordsWrites(t *testing.T) {
	bank := NewMockBank()

	if err := bank.WriteLED(1, High); err != nil {
		t.Fatalf("WriteLED: %v", err)
	}
	if err := bank.WriteLED(1, Low); err != nil {
		t.Fatalf("WriteLED: %v", err)
	}

	writes := bank.Writes()
	if len(writes) != 2 {
		t.Fatalf("writes = %d, want 2", len(writes))
	}
	if writes[0] != (LedWrite{Index: 1, Level: High}) || writes[1] != (LedWrite{Index: 1, Level: Low}) {
		t.Errorf("writes = %+v", writes)
	}
	if bank.Levels()[1] != Low {
		t.Errorf("led 1 level = %v, want Low", bank.Levels()[1])
	}

	bank.ResetWrites()
	if len(bank.Writes()) != 0 {
		t.Error("ResetWrites left writes behind")
	}
}

func TestMockBank_WriteOutOfRange(t *testing.T) {
	bank := NewMockBank()
	if err := bank.WriteLED(4, High); err == nil {
		t.Error("expected error for led index 4, got nil")
	}
}

func TestNewBank_SelectsMock(t *testing.T) {
	cfg := config.Default()
	cfg.Driver = config.DriverMock

	bank, err := NewBank(cfg)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	if _, ok := bank.(*MockBank); !ok {
		t.Errorf("bank type = %T, want *MockBank", bank)
	}
}

func TestNewBank_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Driver = "bogus"

	if _, err := NewBank(cfg); err == nil {
		t.Error("expected error for unknown driver, got nil")
	}
}

func TestEdgeString(t *testing.T) {
	if Rising.String() != "rising" || Falling.String() != "falling" {
		t.Errorf("edge strings = %q, %q", Rising, Falling)
	}
}
