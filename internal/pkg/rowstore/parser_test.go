package rowstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareStatement_Insert(t *testing.T) {
	t.Parallel()

	stmt, err := PrepareStatement("insert 1 testuser test@example.com")
	require.NoError(t, err)

	assert.Equal(t, Insert, stmt.Kind)
	assert.Equal(t, uint32(1), stmt.Row.ID)
	assert.Equal(t, []byte("testuser"), stmt.Row.Username[:8])
	assert.Equal(t, []byte("test@example.com"), stmt.Row.Email[:16])
}

func TestPrepareStatement_Select(t *testing.T) {
	t.Parallel()

	stmt, err := PrepareStatement("select")
	require.NoError(t, err)

	assert.Equal(t, Select, stmt.Kind)
}

func TestPrepareStatement_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"unknown keyword", "update 1 testuser test@example.com"},
		{"insert missing fields", "insert 1 testuser"},
		{"insert extra fields", "insert 1 testuser test@example.com extra"},
		{"insert id not a number", "insert foo testuser test@example.com"},
		{"insert negative id", "insert -1 testuser test@example.com"},
		{"insert id overflows uint32", "insert 4294967296 testuser test@example.com"},
		{"insert username too long", "insert 1 " + strings.Repeat("a", 33) + " test@example.com"},
		{"insert email too long", "insert 1 testuser " + strings.Repeat("a", 256)},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, err := PrepareStatement(testCase.input)
			assert.Error(t, err)
		})
	}
}
