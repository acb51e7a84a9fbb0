package hack

import (
	"strconv"
	"strings"
)

// NULL names an omitted dest or jump field.
const NULL = "null"

// destMap maps destination register sets to their 3-bit code.
var destMap = map[string]uint16{
	NULL:  0b000,
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

// jumpMap maps jump conditions to their 3-bit code.
var jumpMap = map[string]uint16{
	NULL:  0b000,
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

// compMap maps ALU computations on D and A to their 6-bit code.
var compMap = map[string]uint16{
	"0":   0b101010,
	"1":   0b111111,
	"-1":  0b111010,
	"D":   0b001100,
	"A":   0b110000,
	"!D":  0b001101,
	"!A":  0b110001,
	"-D":  0b001111,
	"-A":  0b110011,
	"D+1": 0b011111,
	"A+1": 0b110111,
	"D-1": 0b001110,
	"A-1": 0b110010,
	"D+A": 0b000010,
	"D-A": 0b010011,
	"A-D": 0b000111,
	"D&A": 0b000000,
	"D|A": 0b010101,
}

// memMap maps computations reading M to the A form sharing their code.
// They are encoded with the a bit set.
var memMap = map[string]string{
	"M":   "A",
	"!M":  "!A",
	"-M":  "-A",
	"M+1": "A+1",
	"M-1": "A-1",
	"D+M": "D+A",
	"D-M": "D-A",
	"M-D": "A-D",
	"D&M": "D&A",
	"D|M": "D|A",
}

// compCode looks up the a bit and 6-bit code for a computation.
func compCode(comp string) (a, code uint16, err error) {
	mnemonic := comp
	if aform, ok := memMap[comp]; ok {
		mnemonic = aform
		a = 1
	}

	code, ok := compMap[mnemonic]
	if !ok {
		err = &ErrMnemonic{Field: "comp", Mnemonic: comp, Err: ErrCompInvalid}
		return
	}

	return
}

// EncodeAddress encodes the operand of a resolved @value instruction.
func EncodeAddress(operand string) (word Word, err error) {
	if !isLiteral(operand) {
		err = ErrParseNumber(operand)
		return
	}

	value, err := strconv.ParseUint(operand, 10, 16)
	if err != nil || value > ADDRESS_MAX {
		err = ErrAddressRange
		return
	}

	word = Word(value)

	return
}

// splitCompute splits dest=comp;jump into its fields, filling omitted
// fields with NULL.
func splitCompute(text string) (dest, comp, jump string, err error) {
	dest, rest, ok := strings.Cut(text, "=")
	if !ok {
		dest = NULL
		rest = text
	} else if len(dest) == 0 {
		err = ErrDestMissing
		return
	}

	comp, jump, ok = strings.Cut(rest, ";")
	if !ok {
		jump = NULL
	} else if len(jump) == 0 {
		err = ErrJumpMissing
		return
	}

	if len(comp) == 0 {
		err = ErrCompMissing
		return
	}

	return
}

// EncodeCompute encodes a dest=comp;jump instruction.
func EncodeCompute(text string) (word Word, err error) {
	dest, comp, jump, err := splitCompute(text)
	if err != nil {
		return
	}

	a, c, err := compCode(comp)
	if err != nil {
		return
	}

	d, ok := destMap[dest]
	if !ok {
		err = &ErrMnemonic{Field: "dest", Mnemonic: dest, Err: ErrDestInvalid}
		return
	}

	j, ok := jumpMap[jump]
	if !ok {
		err = &ErrMnemonic{Field: "jump", Mnemonic: jump, Err: ErrJumpInvalid}
		return
	}

	word = MakeCompute(a, c, d, j)

	return
}

// Encode encodes a single resolved instruction line.
func Encode(text string) (word Word, err error) {
	if operand, ok := strings.CutPrefix(text, "@"); ok {
		return EncodeAddress(operand)
	}

	return EncodeCompute(text)
}
