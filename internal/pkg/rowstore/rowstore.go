package rowstore

import (
	"context"
	"fmt"
)

var (
	errUnrecognizedStatementType = fmt.Errorf("unrecognised statement type")
)

type StatementKind int

const (
	Insert StatementKind = iota + 1
	Select
)

type Statement struct {
	Kind StatementKind
	// Row is the row to insert, only set for Insert statements
	Row Row
}

type StatementResult struct {
	RowsAffected int
	// Rows returns the next row until ErrNoMoreRows
	Rows func(ctx context.Context) (Row, error)
}

// ExecuteStatement runs a prepared statement against the table
func (t *Table) ExecuteStatement(ctx context.Context, stmt Statement) (StatementResult, error) {
	switch stmt.Kind {
	case Insert:
		if err := t.Insert(ctx, stmt.Row); err != nil {
			return StatementResult{}, err
		}
		return StatementResult{RowsAffected: 1}, nil
	case Select:
		return t.Select(ctx)
	}
	return StatementResult{}, errUnrecognizedStatementType
}
