package debug

import (
	"fmt"
	"log"
	"os"
)

// Debug levels
const (
	LevelOff     = 0 // No output
	LevelInfo    = 1 // Important info (phase changes, results)
	LevelLive    = 2 // Live info (button presses, LED window)
	LevelVerbose = 3 // Verbose (bit edits, cursor moves)
	LevelTrace   = 4 // Trace (GPIO, very low level)
)

var (
	level  int
	logger *log.Logger
)

// Init initializes the debug system with a level (0-4).
// 0 = no output
// 1 = important info (phase changes, computed results)
// 2 = live info (button presses, displayed patterns)
// 3 = verbose (bit edits, operand values)
// 4 = trace (GPIO, very low level)
func Init(debugLevel int) {
	level = debugLevel
	if level > LevelOff {
		logger = log.New(os.Stdout, "[bincalc] ", log.LstdFlags|log.Lmicroseconds)
	}
}

// Level returns the current debug level.
func Level() int {
	return level
}

// IsEnabled returns true if debug level is >= the requested level.
func IsEnabled(minLevel int) bool {
	return level >= minLevel
}

// --- Level 1 functions (Info): important info ---

// Info prints a level 1 message (important info).
func Info(format string, args ...interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Phase prints a phase transition (level 1).
func Phase(name string) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Entering %s phase", name)
	}
}

// Result prints the computed result (level 1).
func Result(op string, a, b, result uint64) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] %d %s %d = %d (0b%b)", a, op, b, result, result)
	}
}

// --- Level 2 functions (Live): real-time info ---

// Live prints a level 2 message (live info).
func Live(format string, args ...interface{}) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] "+format, args...)
	}
}

// Press prints a button press (level 2).
func Press(button int) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] Button %d pressed", button)
	}
}

// Window prints the 4-bit LED window currently shown (level 2).
func Window(bits uint64) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] LED window: %04b", bits&0b1111)
	}
}

// --- Level 3 functions (Verbose): everything ---

// Verbose prints a level 3 message (verbose).
func Verbose(format string, args ...interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] "+format, args...)
	}
}

// Operand prints an operand edit (level 3).
func Operand(index int, value uint64, cursor int) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] Operand %d = 0b%b (cursor %d)", index, value, cursor)
	}
}

// --- Level 4 functions (Trace): very low level ---

// Trace prints a level 4 message (trace).
func Trace(format string, args ...interface{}) {
	if level >= LevelTrace && logger != nil {
		logger.Printf("[TRACE] "+format, args...)
	}
}

// GPIO prints a GPIO operation (level 4).
func GPIO(operation string, pin int, value interface{}) {
	if level >= LevelTrace && logger != nil {
		logger.Printf("[GPIO] %s pin=%d value=%v", operation, pin, value)
	}
}

// --- General functions ---

// Error prints a debug error (level 1+).
func Error(err error) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[ERROR] %v", err)
	}
}

// Fmt is a helper function that returns a formatted string
// only if debug is enabled (to avoid unnecessary allocations).
func Fmt(format string, args ...interface{}) string {
	if level > 0 {
		return fmt.Sprintf(format, args...)
	}
	return ""
}
