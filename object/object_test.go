package object

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sicxe/memory"
)

const progCaret = `H^PROG  ^001000^000007
. +LDA VALUE ; RSUB
T^001000^07^03101009^4F0000
M^001001^05+PROG
E^001000
`

const progFixed = `HPROG  001000000007
T00100007031010094F0000
M00100105+PROG
E001000
`

func readBytes(t *testing.T, mem *memory.Memory, address int, count int) []byte {
	t.Helper()
	data := make([]byte, count)
	assert.NoError(t, mem.Read(address, data))
	return data
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	expect := &Program{
		Name:   "PROG",
		Start:  0x1000,
		Length: 7,
		Entry:  0x1000,
		Text: []Text{
			{Start: 0x1000, Data: []byte{0x03, 0x10, 0x10, 0x09, 0x4F, 0x00, 0x00}},
		},
		Modifications: []Modification{
			{Address: 0x1001, HalfBytes: 5, Symbol: "PROG"},
		},
	}

	for _, text := range []string{progCaret, progFixed} {
		prog, err := Parse(strings.NewReader(text))
		if !assert.NoError(err) {
			continue
		}
		assert.Equal(expect, prog)
		assert.Equal(0x1007, prog.Text[0].End())
	}
}

func TestParseNoEntry(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader("H^P^000300^000003\nT^000300^03^4F0000\nE\n"))
	assert.NoError(err)
	assert.Equal(0x300, prog.Entry)

	prog, err = Parse(strings.NewReader("H^P^000300^000003\n"))
	assert.NoError(err)
	assert.Equal(0x300, prog.Entry)
	assert.Empty(prog.Text)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		err    error
	}){
		{"T^001000^01^00\n", 1, ErrHeaderMissing},
		{"", 0, ErrHeaderMissing},
		{"H^A^000000^000000\nH^B^000000^000000\n", 2, ErrHeaderDuplicate},
		{"H^A^000000^000000\nX^00\n", 2, ErrRecordType},
		{"H^A^000000^000000\nT^000000^02^00\n", 2, ErrRecordSyntax},
		{"H^A^000000^000000\nT^000000^01^0G\n", 2, ErrRecordSyntax},
		{"H^A^00000Z^000000\n", 1, ErrRecordSyntax},
		{"H^A^000000\n", 1, ErrRecordSyntax},
		{"H^A^000000^000000\nM^000000^07\n", 2, ErrRecordSyntax},
		{"H^A^000000^000000\nM^000000^05*A\n", 2, ErrRecordSyntax},
		{"H^A^000000^000000\nE^000000\nT^000000^01^00\n", 3, ErrRecordAfterEnd},
	}

	for _, entry := range table {
		prog, err := Parse(strings.NewReader(entry.text))
		assert.Nil(prog, entry.text)
		assert.ErrorIs(err, entry.err, entry.text)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.text) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.text)
		}
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader(progCaret))
	assert.NoError(err)

	mem := memory.NewMemory(0x3000)

	entry, err := prog.Load(mem, 0)
	assert.NoError(err)
	assert.Equal(0x1000, entry)
	assert.Equal([]byte{0x03, 0x10, 0x10, 0x09, 0x4F, 0x00, 0x00}, readBytes(t, mem, 0x1000, 7))

	entry, err = prog.Load(mem, 0x2000)
	assert.NoError(err)
	assert.Equal(0x2000, entry)
	assert.Equal([]byte{0x03, 0x10, 0x20, 0x09, 0x4F, 0x00, 0x00}, readBytes(t, mem, 0x2000, 7))
}

func TestLoadModification(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Start: 0x100,
		Text: []Text{
			{Start: 0x100, Data: []byte{0xAB, 0x00, 0x10, 0xFF, 0x00, 0x10}},
		},
		Modifications: []Modification{
			{Address: 0x100, HalfBytes: 5},
			{Address: 0x103, HalfBytes: 6, Negative: true},
		},
	}

	mem := memory.NewMemory(0x1000)
	entry, err := prog.Load(mem, 0x300)
	assert.NoError(err)
	assert.Equal(0x300, entry)

	// The high half-byte of a 5 half-byte field is untouched.
	assert.Equal([]byte{0xAB, 0x02, 0x10}, readBytes(t, mem, 0x300, 3))
	assert.Equal([]byte{0xFE, 0xFE, 0x10}, readBytes(t, mem, 0x303, 3))
}

func TestLoadRange(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader(progCaret))
	assert.NoError(err)

	mem := memory.NewMemory(0x1003)
	_, err = prog.Load(mem, 0)
	assert.ErrorIs(err, memory.ErrRange)
}
