package rowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTable_RowSlot_LazyPageAllocation(t *testing.T) {
	t.Parallel()

	aTable := NewTable(zap.NewNop())

	for i := 0; i < MaxPages; i++ {
		assert.Nil(t, aTable.pages[i])
	}

	slot := aTable.RowSlot(0)
	assert.Len(t, slot, RowSize)
	assert.NotNil(t, aTable.pages[0])
	for i := 1; i < MaxPages; i++ {
		assert.Nil(t, aTable.pages[i])
	}

	// First row of the second page
	aTable.RowSlot(RowsPerPage)
	assert.NotNil(t, aTable.pages[1])
	assert.Nil(t, aTable.pages[2])
}

func TestTable_RowSlot_Offsets(t *testing.T) {
	t.Parallel()

	aTable := NewTable(zap.NewNop())

	// Rows of one page are packed back to back
	first := aTable.RowSlot(0)
	second := aTable.RowSlot(1)
	first[RowSize-1] = 0xab
	assert.Equal(t, byte(0), second[0])

	aPage := aTable.pages[0]
	assert.Equal(t, byte(0xab), aPage[RowSize-1])

	// Last row of the first page ends within the page
	last := aTable.RowSlot(RowsPerPage - 1)
	last[RowSize-1] = 0xcd
	assert.Equal(t, byte(0xcd), aPage[RowsPerPage*RowSize-1])
}

func TestTable_RowSlot_OutOfBounds(t *testing.T) {
	t.Parallel()

	aTable := NewTable(zap.NewNop())

	assert.Panics(t, func() {
		aTable.RowSlot(MaxRows)
	})
}

func TestTable_Insert_TableFull(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		aTable = NewTable(zap.NewNop())
	)

	aRow, err := NewRow(1, "testuser", "test@example.com")
	require.NoError(t, err)

	aTable.numRows = MaxRows

	err = aTable.Insert(ctx, aRow)
	require.ErrorIs(t, err, ErrTableFull)
	assert.Equal(t, uint32(MaxRows), aTable.NumRows())
}

func TestTable_Constants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 291, RowSize)
	assert.Equal(t, 14, RowsPerPage)
	assert.Equal(t, 1400, MaxRows)
}
