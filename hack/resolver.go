package hack

import (
	"strconv"
	"strings"

	"github.com/ezrec/hackasm/preproc"
)

// Resolver replaces symbolic references with decimal addresses.
type Resolver struct {
	Symbols *SymbolTable
}

// IsLabel returns true if the line is a (LABEL) pseudo-instruction.
func IsLabel(text string) bool {
	return strings.HasPrefix(text, "(")
}

// IsAddress returns true if the line is an @value instruction.
func IsAddress(text string) bool {
	return strings.HasPrefix(text, "@")
}

// labelName extracts the name from a (LABEL) definition.
func labelName(text string) (name string, err error) {
	name, ok := strings.CutPrefix(text, "(")
	if ok {
		name, ok = strings.CutSuffix(name, ")")
	}
	if !ok || !IsSymbol(name) {
		err = ErrLabelSyntax
		return
	}

	return
}

// isLiteral returns true if operand is a decimal literal. Range is
// checked by the encoder.
func isLiteral(operand string) bool {
	if len(operand) == 0 {
		return false
	}
	for _, c := range operand {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Labels removes every label definition from lines, binding each label to
// the index of the next real instruction. A label after the last
// instruction binds to the instruction count.
func (res *Resolver) Labels(lines []preproc.Line) (out []preproc.Line, err error) {
	out = make([]preproc.Line, 0, len(lines))

	for _, line := range lines {
		if !IsLabel(line.Text) {
			out = append(out, line)
			continue
		}

		var name string
		name, err = labelName(line.Text)
		if err == nil {
			err = res.Symbols.DefineLabel(name, len(out))
		}
		if err != nil {
			err = &ErrSyntax{Stage: STAGE_LABEL, LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
	}

	return
}

// Variables rewrites every symbolic @name in lines to @<address>. Unknown
// names become variables in order of first use.
func (res *Resolver) Variables(lines []preproc.Line) (out []preproc.Line, err error) {
	out = make([]preproc.Line, 0, len(lines))

	for _, line := range lines {
		if !IsAddress(line.Text) {
			out = append(out, line)
			continue
		}

		operand := line.Text[1:]
		if isLiteral(operand) {
			out = append(out, line)
			continue
		}

		var address int
		if len(operand) == 0 {
			err = ErrAddressMissing
		} else {
			address, err = res.Symbols.Allocate(operand)
		}
		if err != nil {
			err = &ErrSyntax{Stage: STAGE_SYMBOL, LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		out = append(out, preproc.Line{LineNo: line.LineNo, Text: "@" + strconv.Itoa(address)})
	}

	return
}

// Resolve runs both passes. The symbol table is complete before the
// second pass begins.
func (res *Resolver) Resolve(lines []preproc.Line) (out []preproc.Line, err error) {
	stripped, err := res.Labels(lines)
	if err != nil {
		return
	}

	out, err = res.Variables(stripped)

	return
}
