package rom

// A SwapFunc reorders a buffer in place, four bytes at a time. Trailing
// bytes that do not form a complete word are left untouched.
type SwapFunc func(p []byte)

func identitySwap(p []byte) {

}

func pairSwap(p []byte) {
	for offset := 0; offset+4 <= len(p); offset += 4 {
		p[offset+0], p[offset+1], p[offset+2], p[offset+3] = p[offset+1], p[offset+0], p[offset+3], p[offset+2]
	}
}

func reverseSwap(p []byte) {
	for offset := 0; offset+4 <= len(p); offset += 4 {
		p[offset+0], p[offset+1], p[offset+2], p[offset+3] = p[offset+3], p[offset+2], p[offset+1], p[offset+0]
	}
}

func halfwordSwap(p []byte) {
	for offset := 0; offset+4 <= len(p); offset += 4 {
		p[offset+0], p[offset+1], p[offset+2], p[offset+3] = p[offset+2], p[offset+3], p[offset+0], p[offset+1]
	}
}

// Swapper returns the permutation converting src words into dst words.
// Each case is two disjoint byte transpositions, so every swapper is its
// own inverse. src == dst yields a no-op rather than an error.
func Swapper(src Encoding, dst Encoding) SwapFunc {
	if src > dst {
		src, dst = dst, src
	}

	if src == BigEndian && dst == ByteSwapped {
		return pairSwap
	} else if src == BigEndian && dst == LittleEndian {
		return reverseSwap
	} else if src == ByteSwapped && dst == LittleEndian {
		return halfwordSwap
	}

	return identitySwap
}

// Swap converts a single 4 byte word in place.
func Swap(word []byte, src Encoding, dst Encoding) {
	Swapper(src, dst)(word)
}
