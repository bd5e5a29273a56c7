package rowstore

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

const (
	ColumnUsernameSize = 32
	ColumnEmailSize    = 255

	columnIDSize         = 4
	columnIDOffset       = 0
	columnUsernameOffset = columnIDOffset + columnIDSize
	columnEmailOffset    = columnUsernameOffset + ColumnUsernameSize

	// RowSize is the exact number of bytes a serialized row occupies
	RowSize = columnIDSize + ColumnUsernameSize + ColumnEmailSize
)

var (
	errUsernameTooLong = fmt.Errorf("username cannot be longer than %d bytes", ColumnUsernameSize)
	errEmailTooLong    = fmt.Errorf("email cannot be longer than %d bytes", ColumnEmailSize)
)

// Row is a single fixed-schema record. Username and Email hold the full
// zero-padded column contents, trimming the padding is left to callers
// formatting output.
type Row struct {
	ID       uint32
	Username [ColumnUsernameSize]byte
	Email    [ColumnEmailSize]byte
}

// NewRow creates a row, rejecting username/email values that do not fit
// their fixed columns.
func NewRow(id uint32, username, email string) (Row, error) {
	if len(username) > ColumnUsernameSize {
		return Row{}, errUsernameTooLong
	}
	if len(email) > ColumnEmailSize {
		return Row{}, errEmailTooLong
	}
	aRow := Row{ID: id}
	copy(aRow.Username[:], username)
	copy(aRow.Email[:], email)
	return aRow, nil
}

// MarshalInto serializes the row into buf at fixed column offsets,
// overwriting exactly RowSize bytes. Caller guarantees len(buf) >= RowSize.
func (r *Row) MarshalInto(buf []byte) {
	buf[columnIDOffset+0] = byte(r.ID >> 0)
	buf[columnIDOffset+1] = byte(r.ID >> 8)
	buf[columnIDOffset+2] = byte(r.ID >> 16)
	buf[columnIDOffset+3] = byte(r.ID >> 24)
	copy(buf[columnUsernameOffset:columnUsernameOffset+ColumnUsernameSize], r.Username[:])
	copy(buf[columnEmailOffset:columnEmailOffset+ColumnEmailSize], r.Email[:])
}

// UnmarshalRow reads row fields back from the same fixed offsets.
func UnmarshalRow(buf []byte, aRow *Row) {
	aRow.ID = 0 |
		(uint32(buf[columnIDOffset+0]) << 0) |
		(uint32(buf[columnIDOffset+1]) << 8) |
		(uint32(buf[columnIDOffset+2]) << 16) |
		(uint32(buf[columnIDOffset+3]) << 24)
	copy(aRow.Username[:], buf[columnUsernameOffset:columnUsernameOffset+ColumnUsernameSize])
	copy(aRow.Email[:], buf[columnEmailOffset:columnEmailOffset+ColumnEmailSize])
}

// String formats the row as "<id> <username> <email>" with trailing zero
// padding stripped.
func (r Row) String() string {
	return fmt.Sprintf("%d %s %s", r.ID, columnText(r.Username[:]), columnText(r.Email[:]))
}

func columnText(column []byte) string {
	trimmed := bytes.TrimRight(column, "\x00")
	if !utf8.Valid(trimmed) {
		return "Invalid UTF-8"
	}
	return string(trimmed)
}
