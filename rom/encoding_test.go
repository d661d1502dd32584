package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		expected Encoding
		ok       bool
	}{
		{"big endian magic", []byte{0x80, 0x37, 0x12, 0x40}, BigEndian, true},
		{"byte swapped magic", []byte{0x37, 0x80, 0x40, 0x12}, ByteSwapped, true},
		{"little endian magic", []byte{0x40, 0x12, 0x37, 0x80}, LittleEndian, true},
		{"unknown magic", []byte{0xff, 0xff, 0xff, 0xff}, BigEndian, false},
		{"zero magic", []byte{0x00, 0x00, 0x00, 0x00}, BigEndian, false},
		{"near miss", []byte{0x80, 0x37, 0x12, 0x41}, BigEndian, false},
		{"short buffer", []byte{0x80, 0x37}, BigEndian, false},
		{"empty buffer", nil, BigEndian, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoding, ok := IdentifyHeader(test.header)
			require.Equal(t, test.ok, ok)

			if test.ok {
				assert.Equal(t, test.expected, encoding)
			}
		})
	}
}

func TestIdentifyHeaderIgnoresTrailingBytes(t *testing.T) {
	encoding, ok := IdentifyHeader([]byte{0x37, 0x80, 0x40, 0x12, 0x01, 0x02})
	require.True(t, ok)
	assert.Equal(t, ByteSwapped, encoding)
}

func TestSignatureMatchesIdentify(t *testing.T) {
	for _, encoding := range []Encoding{BigEndian, ByteSwapped, LittleEndian} {
		identified, ok := IdentifyHeader(encoding.Signature())
		require.True(t, ok)
		assert.Equal(t, encoding, identified)
	}
}

func TestSignatureReturnsCopy(t *testing.T) {
	sig := BigEndian.Signature()
	sig[0] = 0xff

	assert.Equal(t, []byte{0x80, 0x37, 0x12, 0x40}, BigEndian.Signature())
}

func TestDetectExt(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		ok       bool
	}{
		{"rom.z64", ".z64", true},
		{"rom", "", false},
		{"a.b.v64", ".v64", true},
		{".z64", ".z64", true},
		{"rom.", ".", true},
		{"", "", false},
		{"dir.name/rom", ".name/rom", true},
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			ext, ok := DetectExt(test.filename)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.ext, ext)
		})
	}
}

func TestGuessType(t *testing.T) {
	tests := []struct {
		ext      string
		expected Encoding
		ok       bool
	}{
		{".z64", BigEndian, true},
		{".v64", ByteSwapped, true},
		{".n64", LittleEndian, true},
		{".Z64", BigEndian, true},
		{".V64", ByteSwapped, true},
		{".N64", LittleEndian, true},
		{".rom", BigEndian, false},
		{"z64", BigEndian, false},
		{"", BigEndian, false},
	}

	for _, test := range tests {
		t.Run(test.ext, func(t *testing.T) {
			encoding, ok := GuessType(test.ext)
			require.Equal(t, test.ok, ok)

			if test.ok {
				assert.Equal(t, test.expected, encoding)
			}
		})
	}
}

func TestGuessTypeMatchesExt(t *testing.T) {
	for _, encoding := range []Encoding{BigEndian, ByteSwapped, LittleEndian} {
		guessed, ok := GuessType(encoding.Ext())
		require.True(t, ok)
		assert.Equal(t, encoding, guessed)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "BigEndian (.z64)", BigEndian.String())
	assert.Equal(t, "ByteSwapped (.v64)", ByteSwapped.String())
	assert.Equal(t, "LittleEndian (.n64)", LittleEndian.String())
}
