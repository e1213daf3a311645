package gpio

import (
	"errors"
	"sync"

	"github.com/mwegrzyn/bincalc/internal/debug"
)

// ErrScriptEnd is returned by MockBank.WaitEvent once every scripted
// event has been delivered.
var ErrScriptEnd = errors.New("gpio: mock event script exhausted")

// LedWrite is one recorded WriteLED call.
type LedWrite struct {
	Index int
	Level Level
}

// MockBank is a test implementation. It feeds scripted button events to
// WaitEvent and records every LED write. Used for development on PC or
// testing.
type MockBank struct {
	mu     sync.Mutex
	script []Event
	writes []LedWrite
	levels [4]Level
	closed bool
}

// NewMockBank creates a mock bank preloaded with the given events.
func NewMockBank(events ...Event) *MockBank {
	return &MockBank{script: events}
}

// Push appends events to the script.
func (m *MockBank) Push(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, events...)
}

func (m *MockBank) WriteLED(index int, level Level) error {
	if err := checkLedIndex(index); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	debug.GPIO("WriteLED", index, level)
	m.levels[index] = level
	m.writes = append(m.writes, LedWrite{Index: index, Level: level})
	return nil
}

func (m *MockBank) WaitEvent() (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Event{}, ErrClosed
	}
	if len(m.script) == 0 {
		return Event{}, ErrScriptEnd
	}
	ev := m.script[0]
	m.script = m.script[1:]
	return ev, nil
}

func (m *MockBank) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	debug.Trace("GPIO Close (mock bank)")
	m.closed = true
	return nil
}

// Writes returns a copy of every recorded LED write, in order.
func (m *MockBank) Writes() []LedWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LedWrite, len(m.writes))
	copy(out, m.writes)
	return out
}

// Levels returns the current level of each LED output.
func (m *MockBank) Levels() [4]Level {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.levels
}

// ResetWrites clears the recorded writes, keeping current levels.
func (m *MockBank) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}
