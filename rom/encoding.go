package rom

import "strings"

type Encoding int

const (
	BigEndian Encoding = iota
	ByteSwapped
	LittleEndian
)

// N64 header magic bytes
var bigEndianHeader = [4]byte{0x80, 0x37, 0x12, 0x40}
var byteSwappedHeader = [4]byte{0x37, 0x80, 0x40, 0x12}
var littleEndianHeader = [4]byte{0x40, 0x12, 0x37, 0x80}

func (encoding Encoding) Signature() []byte {
	var header [4]byte

	switch encoding {
	case BigEndian:
		header = bigEndianHeader
	case ByteSwapped:
		header = byteSwappedHeader
	case LittleEndian:
		header = littleEndianHeader
	}

	return header[:]
}

func (encoding Encoding) Ext() string {
	switch encoding {
	case BigEndian:
		return ".z64"
	case ByteSwapped:
		return ".v64"
	case LittleEndian:
		return ".n64"
	}

	return ""
}

func (encoding Encoding) String() string {
	switch encoding {
	case BigEndian:
		return "BigEndian (.z64)"
	case ByteSwapped:
		return "ByteSwapped (.v64)"
	case LittleEndian:
		return "LittleEndian (.n64)"
	}

	return "Unknown"
}

// IdentifyHeader matches the first four bytes of header against the three
// known magic values. Anything else, including a short buffer, reports false.
func IdentifyHeader(header []byte) (Encoding, bool) {
	if len(header) < 4 {
		return BigEndian, false
	}

	var word = [4]byte{header[0], header[1], header[2], header[3]}

	switch word {
	case bigEndianHeader:
		return BigEndian, true
	case byteSwappedHeader:
		return ByteSwapped, true
	case littleEndianHeader:
		return LittleEndian, true
	}

	return BigEndian, false
}

// DetectExt returns the substring from the last '.' in filename to the end.
// A name like "a.b.z64" yields ".z64". A bare ".z64" yields the whole name.
func DetectExt(filename string) (string, bool) {
	var idx = strings.LastIndexByte(filename, '.')

	if idx == -1 {
		return "", false
	}

	return filename[idx:], true
}

// GuessType maps a filename extension to an encoding, case-insensitively.
func GuessType(ext string) (Encoding, bool) {
	switch strings.ToLower(ext) {
	case ".z64":
		return BigEndian, true
	case ".v64":
		return ByteSwapped, true
	case ".n64":
		return LittleEndian, true
	}

	return BigEndian, false
}
