package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIDs(t *testing.T) {
	results, ok := checkIDs([]string{"tz4a98xxat96iws9zmbrgj3a", "a-b", "x"}, 2, 32)

	assert.False(t, ok)
	assert.Equal(t, []ValidateResult{
		{ID: "tz4a98xxat96iws9zmbrgj3a", Valid: true},
		{ID: "a-b", Valid: false},
		{ID: "x", Valid: false},
	}, results)

	results, ok = checkIDs([]string{"abc", "def"}, 3, 3)
	assert.True(t, ok)
	assert.Len(t, results, 2)
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("  abc \n\n\tdef\n   \nghi"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "ghi"}, lines)

	lines, err = readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
