package operation

import (
	"github.com/mwegrzyn/bincalc/internal/debug"
)

// Operation is one of the four arithmetic operations the calculator
// supports. Its numeric value doubles as the 2-bit LED code.
type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div

	count
)

func (op Operation) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// Advance returns the next operation in the fixed Add, Sub, Mul, Div
// cycle, wrapping back to Add after Div.
func (op Operation) Advance() Operation {
	return (op + 1) % count
}

// Code returns the operation's LED bit pattern.
func (op Operation) Code() uint64 {
	return uint64(op)
}

// Apply combines the operands. Addition, subtraction and multiplication
// wrap on 64-bit overflow, keeping the fixed-width semantics of the
// hardware display. Division by zero is not an error: the result is
// forced to 0 and the session continues.
func (op Operation) Apply(a, b uint64) uint64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		if b == 0 {
			debug.Info("Division by zero, result forced to 0")
			return 0
		}
		return a / b
	}
	return 0
}
