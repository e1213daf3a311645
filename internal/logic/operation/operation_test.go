package operation

import (
	"math"
	"testing"
)

func TestAdvance_Order(t *testing.T) {
	op := Add
	want := []Operation{Sub, Mul, Div, Add}
	for i, w := range want {
		op = op.Advance()
		if op != w {
			t.Fatalf("advance %d: got %v, want %v", i+1, op, w)
		}
	}
}

func TestAdvance_KTimesIsKMod4(t *testing.T) {
	for k := 0; k < 17; k++ {
		op := Add
		for i := 0; i < k; i++ {
			op = op.Advance()
		}
		if want := Operation(k % 4); op != want {
			t.Errorf("%d advances: got %v, want %v", k, op, want)
		}
	}
}

func TestCode(t *testing.T) {
	if Add.Code() != 0 || Sub.Code() != 1 || Mul.Code() != 2 || Div.Code() != 3 {
		t.Errorf("codes = %d %d %d %d, want 0 1 2 3",
			Add.Code(), Sub.Code(), Mul.Code(), Div.Code())
	}
}

func TestApply_Add(t *testing.T) {
	if got := Add.Apply(5, 3); got != 8 {
		t.Errorf("5+3 = %d, want 8", got)
	}
	// Overflow wraps.
	if got := Add.Apply(math.MaxUint64, 1); got != 0 {
		t.Errorf("max+1 = %d, want 0 (wrap)", got)
	}
}

func TestApply_Sub(t *testing.T) {
	if got := Sub.Apply(5, 3); got != 2 {
		t.Errorf("5-3 = %d, want 2", got)
	}
	// Underflow wraps.
	if got := Sub.Apply(0, 1); got != math.MaxUint64 {
		t.Errorf("0-1 = %d, want max (wrap)", got)
	}
}

func TestApply_Mul(t *testing.T) {
	if got := Mul.Apply(6, 7); got != 42 {
		t.Errorf("6*7 = %d, want 42", got)
	}
	if got := Mul.Apply(uint64(1)<<63, 2); got != 0 {
		t.Errorf("2^63*2 = %d, want 0 (wrap)", got)
	}
}

func TestApply_Div(t *testing.T) {
	if got := Div.Apply(42, 6); got != 7 {
		t.Errorf("42/6 = %d, want 7", got)
	}
	if got := Div.Apply(7, 2); got != 3 {
		t.Errorf("7/2 = %d, want 3", got)
	}
}

func TestApply_DivByZeroYieldsZero(t *testing.T) {
	for _, a := range []uint64{0, 1, 42, math.MaxUint64} {
		if got := Div.Apply(a, 0); got != 0 {
			t.Errorf("%d/0 = %d, want 0", a, got)
		}
	}
}

func TestString(t *testing.T) {
	cases := map[Operation]string{Add: "+", Sub: "-", Mul: "*", Div: "/"}
	for op, want := range cases {
		if op.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(op), op.String(), want)
		}
	}
}
