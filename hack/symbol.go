package hack

import (
	"fmt"
	"iter"
	"maps"
	"regexp"

	"github.com/golang/glog"

	"github.com/ezrec/hackasm/internal"
)

const (
	VARIABLE_BASE = 16     // First RAM address handed to variables.
	SCREEN_BASE   = 0x4000 // Memory-mapped screen.
	KBD_BASE      = 0x6000 // Memory-mapped keyboard.
	ADDRESS_MAX   = 0x7fff // Largest value an address instruction can load.
)

// Predefined system symbols.
var sysSymbol = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": SCREEN_BASE,
	"KBD":    KBD_BASE,
}

func init() {
	for n := range 16 {
		sysSymbol[fmt.Sprintf("R%d", n)] = n
	}
}

// symbolPattern matches a legal symbol name: no leading digit.
var symbolPattern = regexp.MustCompile(`^[A-Za-z_.$:][A-Za-z0-9_.$:]*$`)

// IsSymbol returns true if name can be bound in a symbol table.
func IsSymbol(name string) bool {
	return symbolPattern.MatchString(name)
}

// Predefined returns the address of a built-in symbol.
func Predefined(name string) (address int, ok bool) {
	address, ok = sysSymbol[name]
	return
}

// SymbolTable maps symbol names to addresses for a single assembly run.
type SymbolTable struct {
	predefine map[string]int // User predefines, in addition to the system symbols.
	Label     map[string]int // Map of labels to instruction addresses.
	Variable  map[string]int // Map of variables to RAM addresses.
	next      int            // Next free variable address.
}

// NewSymbolTable creates a symbol table holding only the predefined symbols.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{}
	st.Reset()
	return
}

// Reset drops all labels and variables, keeping predefines.
func (st *SymbolTable) Reset() {
	if st.Label == nil {
		st.Label = make(map[string]int, 16)
	}
	if st.Variable == nil {
		st.Variable = make(map[string]int, 16)
	}
	clear(st.Label)
	clear(st.Variable)
	st.next = VARIABLE_BASE
}

// Predefine binds a user symbol before assembly starts.
func (st *SymbolTable) Predefine(name string, address int) (err error) {
	if !IsSymbol(name) {
		err = ErrParseSymbol(name)
		return
	}
	if _, ok := sysSymbol[name]; ok {
		err = ErrSymbolDuplicate
		return
	}
	if address < 0 || address > ADDRESS_MAX {
		err = ErrAddressRange
		return
	}

	if st.predefine == nil {
		st.predefine = map[string]int{name: address}
	} else {
		st.predefine[name] = address
	}

	return
}

// Lookup finds a symbol, checking predefined symbols, then labels, then variables.
func (st *SymbolTable) Lookup(name string) (address int, ok bool) {
	if address, ok = sysSymbol[name]; ok {
		return
	}
	if address, ok = st.predefine[name]; ok {
		return
	}
	if address, ok = st.Label[name]; ok {
		return
	}
	address, ok = st.Variable[name]
	return
}

// DefineLabel binds a label to an instruction address.
func (st *SymbolTable) DefineLabel(name string, address int) (err error) {
	if !IsSymbol(name) {
		err = ErrLabelSyntax
		return
	}
	if _, ok := sysSymbol[name]; ok {
		err = ErrLabelPredefined
		return
	}
	if _, ok := st.predefine[name]; ok {
		err = ErrLabelPredefined
		return
	}
	if _, ok := st.Label[name]; ok {
		err = ErrLabelDuplicate
		return
	}

	st.Label[name] = address
	glog.V(2).Infof("label %v = %d", name, address)

	return
}

// Allocate returns the address of a known symbol, or binds name as a new
// variable at the next free RAM address.
func (st *SymbolTable) Allocate(name string) (address int, err error) {
	address, ok := st.Lookup(name)
	if ok {
		return
	}

	if !IsSymbol(name) {
		err = ErrParseSymbol(name)
		return
	}

	address = st.next
	st.next++
	st.Variable[name] = address
	glog.V(2).Infof("variable %v = %d", name, address)

	return
}

// All iterates every bound symbol: system, predefined, labels, then variables.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(
		internal.SortedByValue(sysSymbol),
		internal.SortedByValue(st.predefine),
		internal.SortedByValue(st.Label),
		internal.SortedByValue(st.Variable),
	)
}

// Map returns a copy of all bound symbols.
func (st *SymbolTable) Map() map[string]int {
	return maps.Collect(st.All())
}
