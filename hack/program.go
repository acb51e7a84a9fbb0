package hack

import (
	"bufio"
	"io"
	"iter"
)

// Instruction is one assembled instruction and its source location.
type Instruction struct {
	LineNo   int    // Source line number.
	Address  int    // ROM address.
	Source   string // Cleaned source text.
	Resolved string // Text after symbol resolution.
	Word     Word   // Encoded instruction.
}

// Program is the output of a single assembly run.
type Program struct {
	Instructions []Instruction
	Symbols      map[string]int // Final symbol table.
}

// Debug finds the instruction at a ROM address.
func (prog *Program) Debug(address int) (inst *Instruction) {
	if address < 0 || address >= len(prog.Instructions) {
		return
	}

	return &prog.Instructions[address]
}

// Words iterates over the encoded instructions by ROM address.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(address int, word Word) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Address, inst.Word) {
				return
			}
		}
	}
}

// Binary returns the program as 16 character binary strings.
func (prog *Program) Binary() (bins []string) {
	bins = make([]string, 0, len(prog.Instructions))
	for _, word := range prog.Words() {
		bins = append(bins, word.String())
	}

	return
}

// WriteTo writes the program in .hack format, one word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for _, word := range prog.Words() {
		var written int
		written, err = bw.WriteString(word.String() + "\n")
		n += int64(written)
		if err != nil {
			return
		}
	}

	err = bw.Flush()

	return
}
