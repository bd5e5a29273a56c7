package rowstore

const (
	PageSize = 4096 // 4 kilobytes
	MaxPages = 100

	// RowsPerPage whole rows fit in a single page, the remaining tail
	// bytes of the page are unused padding
	RowsPerPage = PageSize / RowSize
	MaxRows     = RowsPerPage * MaxPages
)

// Page is a fixed-size buffer holding up to RowsPerPage serialized rows.
// Pages are allocated zero-initialized on first touch, see Table.RowSlot.
type Page [PageSize]byte
