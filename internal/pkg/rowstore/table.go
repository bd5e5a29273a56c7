package rowstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrTableFull  = errors.New("table full")
	ErrNoMoreRows = errors.New("no more rows")
)

// Table is a single fixed-schema table of rows packed densely into
// lazily allocated pages. All state is in memory and lost when the
// table is dropped.
type Table struct {
	logger  *zap.Logger
	pages   [MaxPages]*Page
	numRows uint32
}

func NewTable(logger *zap.Logger) *Table {
	return &Table{logger: logger}
}

func (t *Table) NumRows() uint32 {
	return t.numRows
}

// RowSlot returns the RowSize byte window backing the given row index,
// allocating the owning page on first touch. Row index to page mapping
// is fixed, row i always lives at page i / RowsPerPage.
//
// Panics when the index addresses a page beyond MaxPages. Insert
// pre-checks capacity so reaching the panic means a caller bug.
func (t *Table) RowSlot(index uint32) []byte {
	pageIdx := index / RowsPerPage
	if pageIdx >= MaxPages {
		panic(fmt.Sprintf("page index %d out of bounds (max pages %d)", pageIdx, MaxPages))
	}
	if t.pages[pageIdx] == nil {
		t.pages[pageIdx] = new(Page)
		t.logger.Sugar().With(
			"page_index", int(pageIdx),
		).Debug("allocated new page")
	}
	byteOffset := (index % RowsPerPage) * RowSize
	return t.pages[pageIdx][byteOffset : byteOffset+RowSize]
}

// Insert appends a row at index numRows. Returns ErrTableFull without
// mutating any state once the table holds MaxRows rows.
func (t *Table) Insert(ctx context.Context, aRow Row) error {
	if t.numRows >= MaxRows {
		return ErrTableFull
	}
	aRow.MarshalInto(t.RowSlot(t.numRows))
	t.numRows += 1
	return nil
}

// Select returns a result whose Rows function yields rows 0..numRows in
// insertion order, then ErrNoMoreRows. The row count is captured at call
// time, calling Select again on an unchanged table replays the same rows.
func (t *Table) Select(ctx context.Context) (StatementResult, error) {
	var (
		i   uint32
		end = t.numRows
	)

	t.logger.Sugar().With(
		"num_rows", int(end),
	).Debug("fetching rows")

	aResult := StatementResult{
		Rows: func(ctx context.Context) (Row, error) {
			if ctx.Err() != nil {
				return Row{}, fmt.Errorf("context done: %w", ctx.Err())
			}
			if i >= end {
				return Row{}, ErrNoMoreRows
			}
			var aRow Row
			UnmarshalRow(t.RowSlot(i), &aRow)
			i += 1
			return aRow, nil
		},
	}

	return aResult, nil
}
