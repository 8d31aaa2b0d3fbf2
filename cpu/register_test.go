package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister_Width(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet()

	a := rs.Get(REG_A)
	a.Set(0x1000000 + 5)
	assert.Equal(uint64(5), a.Unsigned())
	assert.Equal(int64(5), a.Value())

	a.Set(-1)
	assert.Equal(uint64(0xFFFFFF), a.Unsigned())
	assert.Equal(int64(-1), a.Value())

	a.Set(0x800000)
	assert.Equal(int64(-0x800000), a.Value())

	fr := rs.Get(REG_F)
	assert.Equal(uint(WIDTH_LONG), fr.Width())
	fr.Set(-2)
	assert.Equal(uint64(0xFFFFFFFFFFFE), fr.Unsigned())
	assert.Equal(int64(-2), fr.Value())

	fr.Set(0x1_000000000007)
	assert.Equal(int64(7), fr.Value())

	assert.Equal("A=800000", a.String())
	assert.Equal("F=000000000007", fr.String())
}

func TestRegister_Lookup(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet()

	for n, name := range []string{"A", "X", "L", "B", "S", "T", "F", "PC", "SW"} {
		reg, err := rs.Lookup(name)
		assert.NoError(err, name)
		assert.Equal(RegisterID(n), reg.ID(), name)
	}

	reg, err := rs.Lookup("pc")
	assert.NoError(err)
	assert.Equal(REG_PC, reg.ID())

	_, err = rs.Lookup("Q")
	assert.ErrorIs(err, ErrRegisterUnknown)
	var name ErrRegisterName
	assert.ErrorAs(err, &name)
	assert.Equal(ErrRegisterName("Q"), name)
}

func TestRegister_Ordinal(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet()

	expect := []RegisterID{REG_A, REG_X, REG_L, REG_B, REG_S, REG_T}
	for n, id := range expect {
		reg, err := rs.Ordinal(n)
		assert.NoError(err)
		assert.Equal(id, reg.ID())
	}

	for _, n := range []int{-1, 6, 7, 8, 9, 100} {
		_, err := rs.Ordinal(n)
		assert.ErrorIs(err, ErrRegisterOrdinal, n)
	}
}

func TestRegister_Cond(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet()
	sw := rs.Get(REG_SW)
	sw.Set(0x40)

	rs.SetCond(CC_GT)
	assert.Equal(CC_GT, rs.Cond())
	assert.Equal(uint64(0x42), sw.Unsigned())

	rs.SetCond(CC_LT)
	assert.Equal(CC_LT, rs.Cond())
	assert.Equal(uint64(0x41), sw.Unsigned())
}

func TestRegister_AllReset(t *testing.T) {
	assert := assert.New(t)

	var rs RegisterSet
	for id := range REG_COUNT {
		rs.Get(RegisterID(id)).Set(int64(id + 1))
	}

	count := 0
	for id, reg := range rs.All() {
		assert.Equal(id, reg.ID())
		assert.Equal(int64(id+1), reg.Value())
		count++
	}
	assert.Equal(REG_COUNT, count)

	rs.Reset()
	for id, reg := range rs.All() {
		assert.Equal(uint64(0), reg.Unsigned(), id.String())
	}
}

func TestRegister_Invalid(t *testing.T) {
	assert := assert.New(t)

	rs := NewRegisterSet()

	assert.True(REG_SW.Valid())
	assert.False(RegisterID(REG_COUNT).Valid())
	assert.False(RegisterID(-1).Valid())
	assert.Equal("R?9", RegisterID(9).String())

	assert.Panics(func() { rs.Get(RegisterID(REG_COUNT)) })

	_, err := rs.Ordinal(REG_COUNT)
	assert.ErrorIs(err, ErrRegisterOrdinal)
	_, err = rs.Lookup("R?9")
	assert.ErrorIs(err, ErrRegisterUnknown)
}
