package simd

import "bytes"

// Memmem returns the index of the first occurrence of needle in haystack, or
// -1 if needle is not present.
//
// Candidate positions are found with Memchr on the needle's rarest byte and
// verified with a direct comparison. The rarity ranking is a coarse static
// heuristic: most haystacks are text, so ASCII letters, digits and space make
// poor pivots while punctuation and high bytes make good ones.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	pivot := rarestByte(needle)
	end := len(haystack) - len(needle)
	at := 0
	for {
		i := Memchr(haystack[at:], needle[pivot])
		if i < 0 {
			return -1
		}
		// Align the candidate so the pivot byte lines up.
		start := at + i - pivot
		if start > end {
			return -1
		}
		if start >= 0 && bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		at += i + 1
	}
}

// rarestByte returns the offset of the needle byte with the lowest expected
// frequency class.
func rarestByte(needle []byte) int {
	best := 0
	bestRank := byteRank(needle[0])
	for i := 1; i < len(needle); i++ {
		if r := byteRank(needle[i]); r < bestRank {
			best, bestRank = i, r
		}
	}
	return best
}

// byteRank buckets bytes into coarse frequency classes: 0 rare, 3 common.
func byteRank(b byte) int {
	switch {
	case b >= 0x80 || b < 0x09:
		return 0
	case b >= 'a' && b <= 'z', b == ' ':
		return 3
	case b >= 'A' && b <= 'Z' || b >= '0' && b <= '9':
		return 2
	default:
		return 1
	}
}
