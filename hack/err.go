package hack

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Symbol errors
	ErrLabelSyntax     = errors.New(f("label syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelPredefined = errors.New(f("label redefines a predefined symbol"))
	ErrSymbolInvalid   = errors.New(f("symbol invalid"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))
	ErrAddressMissing  = errors.New(f("address missing"))

	// Encoder errors
	ErrAddressRange = errors.New(f("address out of range"))
	ErrCompMissing  = errors.New(f("comp missing"))
	ErrDestMissing  = errors.New(f("dest missing"))
	ErrJumpMissing  = errors.New(f("jump missing"))
	ErrCompInvalid  = errors.New(f("comp invalid"))
	ErrDestInvalid  = errors.New(f("dest invalid"))
	ErrJumpInvalid  = errors.New(f("jump invalid"))
)

// ErrSyntax locates a failure in the source program.
type ErrSyntax struct {
	Stage  Stage
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("%v: line %d '%v' %v", err.Stage, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseSymbol string

func (err ErrParseSymbol) Error() string {
	return f("'%v' is not a number or symbol", string(err))
}

func (err ErrParseSymbol) Unwrap() error {
	return ErrSymbolInvalid
}

// ErrMnemonic reports a field of a compute instruction missing from its table.
type ErrMnemonic struct {
	Field    string // dest, comp, or jump
	Mnemonic string
	Err      error
}

func (err *ErrMnemonic) Error() string {
	return f("%v '%v' unknown", err.Field, err.Mnemonic)
}

func (err *ErrMnemonic) Unwrap() error {
	return err.Err
}

// ErrPredefine reports a bad -D style predefined symbol.
type ErrPredefine struct {
	Name string
	Expr string
	Err  error
}

func (err *ErrPredefine) Error() string {
	return f("predefine %v=%v: %v", err.Name, err.Expr, err.Err)
}

func (err *ErrPredefine) Unwrap() error {
	return err.Err
}
