package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWordAddress(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		address int
		index   int
		err     error
	}){
		{0, 0, nil},
		{3, 1, nil},
		{1500, 500, nil},
		{1501, 0, ErrAlignment},
		{1502, 0, ErrAlignment},
		{-3, 0, ErrRange},
	}

	for _, entry := range table {
		index, err := ToWordAddress(entry.address)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.address)
			var addr ErrAddress
			assert.ErrorAs(err, &addr)
			assert.Equal(ErrAddress(entry.address), addr)
			continue
		}
		assert.NoError(err, entry.address)
		assert.Equal(entry.index, index, entry.address)
	}
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(30)
	assert.Equal(30, mem.Size())
	assert.Equal(10, mem.Words())

	err := mem.SetWord(2, MakeWord(0xABCDEF))
	assert.NoError(err)

	word, err := mem.Word(2)
	assert.NoError(err)
	assert.Equal(Word{0xAB, 0xCD, 0xEF}, word)
	assert.Equal(uint32(0xABCDEF), word.Value())

	raw := make([]byte, 3)
	assert.NoError(mem.Read(6, raw))
	assert.Equal([]byte{0xAB, 0xCD, 0xEF}, raw)
}

func TestMemory_Byte(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(9)
	assert.NoError(mem.SetWord(1, MakeWord(0x123456)))

	value, err := mem.Byte(1)
	assert.NoError(err)
	assert.Equal(byte(0x12), value)

	assert.NoError(mem.SetByte(1, 0x99))
	word, err := mem.Word(1)
	assert.NoError(err)
	assert.Equal(uint32(0x993456), word.Value())
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(10) // 3 whole words, one trailing byte

	_, err := mem.Word(3)
	assert.ErrorIs(err, ErrRange)
	_, err = mem.Word(-1)
	assert.ErrorIs(err, ErrRange)
	assert.ErrorIs(mem.SetWord(3, Word{}), ErrRange)
	_, err = mem.Byte(3)
	assert.ErrorIs(err, ErrRange)
	assert.ErrorIs(mem.SetByte(4, 0), ErrRange)

	assert.NoError(mem.CheckWords(1, 2))
	assert.ErrorIs(mem.CheckWords(2, 2), ErrRange)

	// Byte granular access reaches the trailing byte.
	assert.NoError(mem.Write(9, []byte{0x7f}))
	assert.ErrorIs(mem.Write(9, []byte{1, 2}), ErrRange)
	assert.ErrorIs(mem.Read(-1, make([]byte, 1)), ErrRange)
}

func TestMemory_RangeOverflow(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(30)

	assert.ErrorIs(mem.Write(math.MaxInt-1, []byte{1, 2, 3}), ErrRange)
	assert.ErrorIs(mem.Read(math.MaxInt-1, make([]byte, 3)), ErrRange)
	assert.ErrorIs(mem.CheckWords(math.MaxInt-1, 2), ErrRange)
	assert.ErrorIs(mem.CheckWords(5, math.MaxInt), ErrRange)

	assert.NoError(mem.Write(27, []byte{1, 2, 3}))
	assert.ErrorIs(mem.Write(28, []byte{1, 2, 3}), ErrRange)
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(6)
	assert.NoError(mem.Write(0, []byte{1, 2, 3, 4, 5, 6}))

	mem.Reset()

	raw := make([]byte, 6)
	assert.NoError(mem.Read(0, raw))
	assert.Equal(make([]byte, 6), raw)
}

func TestMemory_Dump(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(18)
	assert.NoError(mem.SetWord(0, MakeWord(0x000001)))
	assert.NoError(mem.SetWord(4, MakeWord(0xFFFFFF)))

	assert.Equal("000000: 000001 000000 000000 000000\n00000C: FFFFFF 000000", mem.Dump(0, 6))
	assert.Equal("00000C: FFFFFF 000000", mem.Dump(4, 10))
}
