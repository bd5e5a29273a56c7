package rowstore

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	errInsertSyntax        = fmt.Errorf("at INSERT: expected 'insert <id> <username> <email>'")
	errUnrecognizedKeyword = fmt.Errorf("unrecognised keyword at start of statement")
)

// PrepareStatement parses a single statement line. Insert rows are fully
// constructed and validated here, a syntax or field size error means no
// statement reaches the table.
func PrepareStatement(input string) (Statement, error) {
	args := strings.Fields(input)
	if len(args) == 0 {
		return Statement{}, errUnrecognizedKeyword
	}
	switch strings.ToLower(args[0]) {
	case "insert":
		if len(args) != 4 {
			return Statement{}, errInsertSyntax
		}
		id, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return Statement{}, fmt.Errorf("at INSERT: id must be an unsigned 32 bit integer: %w", err)
		}
		aRow, err := NewRow(uint32(id), args[2], args[3])
		if err != nil {
			return Statement{}, fmt.Errorf("at INSERT: %w", err)
		}
		return Statement{Kind: Insert, Row: aRow}, nil
	case "select":
		return Statement{Kind: Select}, nil
	}
	return Statement{}, errUnrecognizedKeyword
}
