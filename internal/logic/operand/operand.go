package operand

// Width is the number of bits in an operand.
const Width = 64

// WindowSize is the number of entry bits mirrored on the LEDs.
const WindowSize = 4

// Accumulator holds the two operands of a calculation while they are
// entered bit by bit. All edits apply to the active operand at the
// cursor position, the index of the next bit to write. The cursor
// saturates at both ends: appending past bit 64 and deleting below bit
// 0 are silent no-ops.
type Accumulator struct {
	operands [2]uint64
	active   int
	cursor   int
}

// Begin makes operand index the active one and resets it for entry:
// the value is zeroed and the cursor returns to 0.
func (a *Accumulator) Begin(index int) {
	a.active = index
	a.operands[index] = 0
	a.cursor = 0
}

// AppendBit writes bit (0 or 1) at the cursor of the active operand and
// advances the cursor. Ignored once all 64 bits have been entered.
func (a *Accumulator) AppendBit(bit uint64) {
	if a.cursor >= Width {
		return
	}
	if bit != 0 {
		a.operands[a.active] |= uint64(1) << a.cursor
	}
	a.cursor++
}

// DeleteLastBit undoes the most recent append, clearing the bit the
// cursor retreats onto. Ignored when nothing has been entered.
func (a *Accumulator) DeleteLastBit() {
	if a.cursor == 0 {
		return
	}
	a.cursor--
	a.operands[a.active] &^= uint64(1) << a.cursor
}

// Window returns the last up-to-4 entered bits of the active operand,
// the bits in [cursor-4, cursor), shifted down to the low positions.
// While fewer than 4 bits are entered only those show.
func (a *Accumulator) Window() uint64 {
	shift := 0
	if a.cursor > WindowSize {
		shift = a.cursor - WindowSize
	}
	mask := uint64(0b1111) << shift
	return (a.operands[a.active] & mask) >> shift
}

// Operand returns the value of operand index.
func (a *Accumulator) Operand(index int) uint64 {
	return a.operands[index]
}

// Active returns the index of the operand being edited.
func (a *Accumulator) Active() int {
	return a.active
}

// Cursor returns the index of the next bit to write, in [0, 64].
func (a *Accumulator) Cursor() int {
	return a.cursor
}
