package hack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0000000000000000", Word(0).String())
	assert.Equal("1111111111111111", Word(0xffff).String())
	assert.Equal("1110000000000000", COMPUTE_MASK.String())
	assert.Equal(WORD_BITS, len(Word(5).String()))
}

func TestWord_MakeCompute(t *testing.T) {
	assert := assert.New(t)

	word := MakeCompute(1, 0b110000, 0b010, 0b000)
	assert.True(word.IsCompute())
	assert.Equal("1111110000010000", word.String())

	a, comp, dest, jump := word.Decode()
	assert.Equal(uint16(1), a)
	assert.Equal(uint16(0b110000), comp)
	assert.Equal(uint16(0b010), dest)
	assert.Equal(uint16(0), jump)

	// Out of range fields are masked.
	assert.Equal(MakeCompute(1, 0, 0, 0), MakeCompute(3, 0x40, 8, 8))
}

func TestWord_Mnemonic(t *testing.T) {
	assert := assert.New(t)

	tests := []string{
		"@0",
		"@32767",
		"D=A",
		"M=D+1",
		"AMD=D|M;JLE",
		"0;JMP",
		"D;JGT",
		"M=!M",
		"A=-1",
	}

	for _, text := range tests {
		word, err := Encode(text)
		assert.NoError(err, text)

		mnemonic, ok := word.Mnemonic()
		assert.True(ok, text)
		assert.Equal(text, mnemonic)
	}

	_, ok := MakeCompute(0, 0b111110, 0, 0).Mnemonic()
	assert.False(ok)
}
