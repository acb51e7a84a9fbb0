package hack

import (
	"fmt"
	"strings"
)

// Word is a single 16-bit Hack machine instruction.
type Word uint16

const (
	WORD_BITS    = 16
	COMPUTE_MASK = Word(0b111 << 13) // Marker bits of a compute instruction.
)

// MakeCompute assembles a compute instruction from its fields.
func MakeCompute(a, comp, dest, jump uint16) Word {
	return COMPUTE_MASK | Word((a&1)<<12|(comp&0x3f)<<6|(dest&7)<<3|(jump&7)<<0)
}

// IsCompute returns true for compute instructions, false for address instructions.
func (w Word) IsCompute() bool {
	return w&(1<<15) != 0
}

// Address returns the constant loaded by an address instruction.
func (w Word) Address() uint16 {
	return uint16(w) & ADDRESS_MAX
}

// Decode splits a compute instruction into its a bit, comp, dest and jump fields.
func (w Word) Decode() (a, comp, dest, jump uint16) {
	word := uint16(w)
	a = (word >> 12) & 1
	comp = (word >> 6) & 0x3f
	dest = (word >> 3) & 7
	jump = (word >> 0) & 7
	return
}

// String returns the word as 16 binary digits, most significant first.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

var (
	compName = map[uint16]string{}
	destName = map[uint16]string{}
	jumpName = map[uint16]string{}
)

func init() {
	for name, code := range compMap {
		compName[code] = name
	}
	for name, aform := range memMap {
		compName[1<<6|compMap[aform]] = name
	}
	for name, code := range destMap {
		destName[code] = name
	}
	for name, code := range jumpMap {
		jumpName[code] = name
	}
}

// Mnemonic disassembles the word. Compute words whose comp field has no
// mnemonic are not ok.
func (w Word) Mnemonic() (text string, ok bool) {
	if !w.IsCompute() {
		return fmt.Sprintf("@%d", w.Address()), true
	}

	a, comp, dest, jump := w.Decode()
	name, ok := compName[a<<6|comp]
	if !ok {
		return
	}

	var sb strings.Builder
	if dest != 0 {
		sb.WriteString(destName[dest])
		sb.WriteString("=")
	}
	sb.WriteString(name)
	if jump != 0 {
		sb.WriteString(";")
		sb.WriteString(jumpName[jump])
	}

	text = sb.String()

	return
}
