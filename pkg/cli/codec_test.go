package cli

import (
	"testing"

	"github.com/getmockd/cuid2/pkg/base36"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		value string
		from  string
		want  string
	}{
		{"ffffffff", FormatHex, "1z141z3"},
		{"ff", FormatHex, "73"},
		{"", FormatHex, "0"},
		{"hello", FormatText, "5pzcszu7"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"/"+tt.value, func(t *testing.T) {
			got, err := encodeValue(tt.value, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeValue_Errors(t *testing.T) {
	_, err := encodeValue("zz", FormatHex)
	assert.ErrorContains(t, err, "invalid hex input")

	_, err = encodeValue("aa", "base64")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeValue(t *testing.T) {
	got, err := decodeValue("1z141z3", FormatHex)
	require.NoError(t, err)
	assert.Equal(t, "ffffffff", got)

	got, err = decodeValue("5pzcszu7", FormatText)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = decodeValue("0", FormatHex)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeValue_Errors(t *testing.T) {
	_, err := decodeValue("ABC", FormatHex)
	assert.ErrorIs(t, err, base36.ErrInvalidCharacter)

	_, err = decodeValue("abc", "base64")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
