package hack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable_Predefined(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()

	for n := range 16 {
		address, ok := st.Lookup(fmt.Sprintf("R%d", n))
		assert.True(ok)
		assert.Equal(n, address)
	}

	expected := map[string]int{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": 16384,
		"KBD":    24576,
	}
	for name, value := range expected {
		address, ok := st.Lookup(name)
		assert.True(ok, name)
		assert.Equal(value, address, name)

		address, ok = Predefined(name)
		assert.True(ok, name)
		assert.Equal(value, address, name)
	}

	_, ok := st.Lookup("R16")
	assert.False(ok)
	_, ok = st.Lookup("sp")
	assert.False(ok)
}

func TestSymbolTable_Allocate(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()

	address, err := st.Allocate("i")
	assert.NoError(err)
	assert.Equal(16, address)

	address, err = st.Allocate("sum")
	assert.NoError(err)
	assert.Equal(17, address)

	address, err = st.Allocate("i")
	assert.NoError(err)
	assert.Equal(16, address)

	address, err = st.Allocate("SCREEN")
	assert.NoError(err)
	assert.Equal(SCREEN_BASE, address)

	_, err = st.Allocate("1st")
	assert.ErrorIs(err, ErrSymbolInvalid)

	assert.Equal(map[string]int{"i": 16, "sum": 17}, st.Variable)
}

func TestSymbolTable_DefineLabel(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()

	assert.NoError(st.DefineLabel("LOOP", 4))
	assert.ErrorIs(st.DefineLabel("LOOP", 8), ErrLabelDuplicate)
	assert.ErrorIs(st.DefineLabel("R3", 8), ErrLabelPredefined)
	assert.ErrorIs(st.DefineLabel("9LIVES", 8), ErrLabelSyntax)

	address, ok := st.Lookup("LOOP")
	assert.True(ok)
	assert.Equal(4, address)

	// Labels are found before a variable is allocated.
	address, err := st.Allocate("LOOP")
	assert.NoError(err)
	assert.Equal(4, address)
	assert.Empty(st.Variable)
}

func TestSymbolTable_Predefine(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()

	assert.NoError(st.Predefine("BUFFER", 1024))
	assert.ErrorIs(st.Predefine("KBD", 1), ErrSymbolDuplicate)
	assert.ErrorIs(st.Predefine("BIG", ADDRESS_MAX+1), ErrAddressRange)
	assert.ErrorIs(st.Predefine("-x", 1), ErrSymbolInvalid)

	address, ok := st.Lookup("BUFFER")
	assert.True(ok)
	assert.Equal(1024, address)

	assert.ErrorIs(st.DefineLabel("BUFFER", 0), ErrLabelPredefined)

	// Predefines survive a reset, labels and variables do not.
	assert.NoError(st.DefineLabel("END", 3))
	_, err := st.Allocate("x")
	assert.NoError(err)
	st.Reset()

	_, ok = st.Lookup("BUFFER")
	assert.True(ok)
	_, ok = st.Lookup("END")
	assert.False(ok)
	_, ok = st.Lookup("x")
	assert.False(ok)

	address, err = st.Allocate("y")
	assert.NoError(err)
	assert.Equal(VARIABLE_BASE, address)
}

func TestSymbolTable_All(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	assert.NoError(st.DefineLabel("END", 2))
	_, err := st.Allocate("x")
	assert.NoError(err)

	var names []string
	for name := range st.All() {
		names = append(names, name)
	}

	// 16 registers, 5 pointers, SCREEN, KBD, one label, one variable.
	assert.Equal(25, len(names))
	assert.Equal("R0", names[0])
	assert.Equal("END", names[23])
	assert.Equal("x", names[24])

	all := st.Map()
	assert.Equal(2, all["END"])
	assert.Equal(16, all["x"])
	assert.Equal(24576, all["KBD"])
}

func TestIsSymbol(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"LOOP", "i", "_tmp", "a.b", "$ret", "f:1", "R15", "x9"} {
		assert.True(IsSymbol(name), name)
	}
	for _, name := range []string{"", "9x", "-1", "a b", "a+b", "(L)", "@x"} {
		assert.False(IsSymbol(name), name)
	}
}
