// Package lzf implements the LZF block format produced by liblzf.
//
// A compressed block is a sequence of chunks. A control byte below 0x20 starts
// a literal run of ctrl+1 bytes. Any other control byte is a back reference:
// the top three bits hold the match length minus two (7 means an extra length
// byte follows), the low five bits and the next byte hold the offset minus one.
//
// Any liblzf decoder reads the blocks written here. The encoder hashes and
// selects matches the way liblzf does, except that it never starts a match in
// the last four bytes of the input.
package lzf

import "errors"

var (
	ErrShortBuffer    = errors.New("lzf: output buffer too small")
	ErrCorrupt        = errors.New("lzf: corrupt input")
	ErrLengthMismatch = errors.New("lzf: decompressed length mismatch")
)

const (
	hashLog  = 16
	hashSize = 1 << hashLog

	maxLit = 1 << 5
	maxOff = 1 << 13
	maxRef = (1 << 8) + (1 << 3)
)

// MaxCompressedLen returns the worst-case compressed size of n input bytes.
func MaxCompressedLen(n int) int {
	return (n*33)>>5 + 1
}

func hashIndex(h uint32) uint32 {
	return ((h >> (3*8 - hashLog)) - h*5) & (hashSize - 1)
}

// Compress returns src compressed into a freshly allocated buffer.
// An empty input compresses to an empty block.
func Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	// liblzf checks for room a few bytes ahead of the write position.
	dst := make([]byte, MaxCompressedLen(len(src))+4)
	n, err := CompressTo(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n:n], nil
}

// CompressTo compresses src into dst and returns the number of bytes written.
// It fails with ErrShortBuffer when dst cannot hold the result.
func CompressTo(dst, src []byte) (int, error) {
	n := len(src)
	if n == 0 {
		return 0, nil
	}
	outEnd := len(dst)
	if outEnd == 0 {
		return 0, ErrShortBuffer
	}

	htab := make([]uint32, hashSize)
	ip, op, lit := 0, 1, 0

	var hval uint32
	if n > 1 {
		hval = uint32(src[0])<<8 | uint32(src[1])
	}
	for ip < n-2 {
		hval = hval<<8 | uint32(src[ip+2])
		slot := hashIndex(hval)
		ref := int(htab[slot])
		htab[slot] = uint32(ip)

		off := ip - ref - 1
		if ref > 0 && off < maxOff && ip+4 < n &&
			src[ref+2] == src[ip+2] && src[ref] == src[ip] && src[ref+1] == src[ip+1] {
			maxlen := n - ip - 2
			if maxlen > maxRef {
				maxlen = maxRef
			}
			if op+3+1 >= outEnd && op-boolInt(lit == 0)+3+1 >= outEnd {
				return 0, ErrShortBuffer
			}

			dst[op-lit-1] = byte(lit - 1)
			op -= boolInt(lit == 0)

			l := matchLen(src, ref, ip, maxlen) - 2
			ip++

			if l < 7 {
				dst[op] = byte(off>>8 + l<<5)
				op++
			} else {
				dst[op] = byte(off>>8 + 7<<5)
				dst[op+1] = byte(l - 7)
				op += 2
			}
			dst[op] = byte(off)
			op++

			lit = 0
			op++

			ip += l + 1
			if ip >= n-2 {
				break
			}

			// Re-seed the table with the two positions before the new ip.
			ip -= 2
			hval = uint32(src[ip])<<8 | uint32(src[ip+1])
			hval = hval<<8 | uint32(src[ip+2])
			htab[hashIndex(hval)] = uint32(ip)
			ip++
			hval = hval<<8 | uint32(src[ip+2])
			htab[hashIndex(hval)] = uint32(ip)
			ip++
			continue
		}

		if op >= outEnd {
			return 0, ErrShortBuffer
		}
		dst[op] = src[ip]
		op++
		ip++
		lit++
		if lit == maxLit {
			dst[op-lit-1] = byte(lit - 1)
			lit = 0
			op++
		}
	}

	if op+3 > outEnd {
		return 0, ErrShortBuffer
	}
	for ip < n {
		dst[op] = src[ip]
		op++
		ip++
		lit++
		if lit == maxLit {
			dst[op-lit-1] = byte(lit - 1)
			lit = 0
			op++
		}
	}
	dst[op-lit-1] = byte(lit - 1)
	op -= boolInt(lit == 0)
	return op, nil
}

// matchLen returns the length of the match between src[ref:] and src[ip:],
// which are known to share at least three bytes.
func matchLen(src []byte, ref, ip, maxlen int) int {
	l := 2
	for {
		l++
		if l >= maxlen || src[ref+l] != src[ip+l] {
			return l
		}
	}
}

// Decompress inflates src into a buffer of exactly expectedLen bytes.
// Output of any other length is rejected with ErrLengthMismatch.
func Decompress(src []byte, expectedLen int) ([]byte, error) {
	if expectedLen < 0 {
		return nil, ErrLengthMismatch
	}
	dst := make([]byte, expectedLen)
	n, err := DecompressTo(dst, src)
	if err != nil {
		return nil, err
	}
	if n != expectedLen {
		return nil, ErrLengthMismatch
	}
	return dst, nil
}

// DecompressTo inflates src into dst and returns the number of bytes written.
func DecompressTo(dst, src []byte) (int, error) {
	ip, op := 0, 0
	inEnd, outEnd := len(src), len(dst)
	for ip < inEnd {
		ctrl := int(src[ip])
		ip++

		if ctrl < 1<<5 {
			ctrl++
			if op+ctrl > outEnd {
				return op, ErrShortBuffer
			}
			if ip+ctrl > inEnd {
				return op, ErrCorrupt
			}
			copy(dst[op:], src[ip:ip+ctrl])
			op += ctrl
			ip += ctrl
			continue
		}

		l := ctrl >> 5
		ref := op - (ctrl&0x1f)<<8 - 1
		if ip >= inEnd {
			return op, ErrCorrupt
		}
		if l == 7 {
			l += int(src[ip])
			ip++
			if ip >= inEnd {
				return op, ErrCorrupt
			}
		}
		ref -= int(src[ip])
		ip++

		l += 2
		if op+l > outEnd {
			return op, ErrShortBuffer
		}
		if ref < 0 {
			return op, ErrCorrupt
		}
		// Source and destination may overlap.
		for i := 0; i < l; i++ {
			dst[op] = dst[ref]
			op++
			ref++
		}
	}
	return op, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
