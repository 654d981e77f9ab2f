package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMissing(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	assert.Equal(NotFound, tab.Lookup("nope"))
}

func TestAddLabel(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	assert.NoError(tab.AddLabel("loop", 0x10))
	assert.Equal(uint32(0x10), tab.Lookup("loop"))

	err := tab.AddLabel("loop", 0x20)
	assert.Error(err)
	assert.Equal(uint32(0x10), tab.Lookup("loop"))
}

func TestAppendDataEntryOpensSegment(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	cursor := uint32(DataAddress)

	tab.AppendDataEntry(&cursor, 1, 4)
	tab.AppendDataEntry(&cursor, 2, 4)
	tab.AppendDataEntry(&cursor, 3, 4)

	assert.Equal(uint32(DataAddress+12), cursor)
	assert.Len(tab.DataSegments, 1)
	assert.Equal(uint32(DataAddress), tab.DataSegments[0].StartAddress)
	assert.Len(tab.DataSegments[0].Contents, 3)
}

func TestOpenSegmentAlwaysStartsFresh(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	cursor := uint32(DataAddress)

	tab.AppendDataEntry(&cursor, 1, 4)
	tab.OpenSegment(cursor)
	tab.AppendDataEntry(&cursor, 2, 2)

	assert.Len(tab.DataSegments, 2)
	assert.Equal(uint32(DataAddress+4), tab.DataSegments[1].StartAddress)
}

func TestAllEntries(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	cursor := uint32(DataAddress)
	tab.AppendDataEntry(&cursor, 0x48, 1)
	tab.AppendDataEntry(&cursor, 0x69, 1)
	tab.OpenSegment(cursor)
	tab.AppendDataEntry(&cursor, 7, 4)

	var addrs []uint32
	var values []int64
	for addr, entry := range tab.AllEntries() {
		addrs = append(addrs, addr)
		values = append(values, entry.Value)
	}

	assert.Equal([]uint32{DataAddress, DataAddress + 1, DataAddress + 2}, addrs)
	assert.Equal([]int64{0x48, 0x69, 7}, values)
}

func TestGlobals(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	tab.AddGlobal("main")
	assert.True(tab.Globals["main"])
	assert.False(tab.Globals["other"])
}
