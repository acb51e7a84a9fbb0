// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hack

import (
	"io"

	"github.com/golang/glog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hackasm/preproc"
)

// Assembler is a two pass assembler for the Hack instruction set.
type Assembler struct {
	Symbols *SymbolTable // Symbol table of the most recent run.
}

func (asm *Assembler) symbols() *SymbolTable {
	if asm.Symbols == nil {
		asm.Symbols = NewSymbolTable()
	}
	return asm.Symbols
}

// eval evaluates a predefine expression against the known symbols.
func (asm *Assembler) eval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, address := range asm.symbols().All() {
		pred[name] = starlark.MakeInt(address)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "predefine", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseNumber(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseNumber(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > ADDRESS_MAX {
		err = ErrAddressRange
		return
	}
	value = int(st_int64)
	return
}

// Predefine binds a symbol to the value of an integer expression before
// assembly. The expression may refer to predefined symbols, for example
// "SCREEN + 32".
func (asm *Assembler) Predefine(name string, expr string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrPredefine{Name: name, Expr: expr, Err: err}
		}
	}()

	value, err := asm.eval(expr)
	if err != nil {
		return
	}

	err = asm.symbols().Predefine(name, value)

	return
}

// Parse assembles source text read from input.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := preproc.Scan(input)
	if err != nil {
		err = &ErrSyntax{Stage: STAGE_PREPROCESS, Err: err}
		return
	}

	return asm.Assemble(lines)
}

// Assemble resolves and encodes cleaned source lines. Every label and
// variable is bound before the first instruction is encoded.
func (asm *Assembler) Assemble(lines []preproc.Line) (prog *Program, err error) {
	st := asm.symbols()
	st.Reset()

	res := &Resolver{Symbols: st}

	stripped, err := res.Labels(lines)
	if err != nil {
		return
	}

	resolved, err := res.Variables(stripped)
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: make([]Instruction, 0, len(resolved)),
	}

	for n, line := range resolved {
		source := stripped[n].Text

		var word Word
		word, err = Encode(line.Text)
		if err != nil {
			prog = nil
			err = &ErrSyntax{Stage: STAGE_ENCODE, LineNo: line.LineNo, Line: source, Err: err}
			return
		}

		if glog.V(3) {
			glog.Infof("%d: %04x %v -> %v", line.LineNo, n, source, word)
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo:   line.LineNo,
			Address:  n,
			Source:   source,
			Resolved: line.Text,
			Word:     word,
		})
	}

	prog.Symbols = st.Map()

	return
}

// AssembleString assembles an in-memory source.
func (asm *Assembler) AssembleString(source string) (prog *Program, err error) {
	lines, err := preproc.Lines(source)
	if err != nil {
		err = &ErrSyntax{Stage: STAGE_PREPROCESS, Err: err}
		return
	}

	return asm.Assemble(lines)
}
