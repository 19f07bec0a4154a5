package base32

import (
	"slices"
	"unsafe"
)

// MaxEncodeLen is the largest source length in bytes that the encode
// functions accept, 64 MiB. It bounds the memory a single call can
// allocate. MaxDecodeLen is derived from it; if this ceiling is ever
// raised the decode ceiling scales in lockstep so that every encoded
// output stays decodable.
const MaxEncodeLen = 64 << 20

// EncodedLen returns the number of characters, padding included, in
// the encoded form of n source bytes. It returns -1 when n is negative
// or exceeds MaxEncodeLen.
//
// If the input is zero, zero will be returned. Remember that
// UnsafeEncode requires the src argument to have a length greater
// than zero.
func EncodedLen(n int) int {
	if n < 0 || n > MaxEncodeLen {
		return -1
	}

	return encodedLen(n)
}

func encodedLen(n int) int {
	return symbolLen(n) + padLen(n)
}

// symbolLen returns the number of alphabet characters in the encoded
// form of n source bytes, excluding padding.
func symbolLen(n int) int {
	return (n*8 + 4) / 5
}

// padLen returns the number of trailing pad characters appended to the
// encoded form of n source bytes, bringing the total length to a
// multiple of 8.
func padLen(n int) int {
	switch n % 5 {
	case 1:
		return 6
	case 2:
		return 4
	case 3:
		return 3
	case 4:
		return 1
	}

	return 0
}

func encode(dst, src []byte) {
	n := len(src)
	symbols := symbolLen(n)
	di := 0
	si := 0

	for ; si+5 <= n; si += 5 {
		// 40 input bits per block, split into 8 symbols high bits first.
		q := uint64(src[si])<<32 |
			uint64(src[si+1])<<24 |
			uint64(src[si+2])<<16 |
			uint64(src[si+3])<<8 |
			uint64(src[si+4])

		dst[di] = b32Chars[q>>35&0x1F]
		dst[di+1] = b32Chars[q>>30&0x1F]
		dst[di+2] = b32Chars[q>>25&0x1F]
		dst[di+3] = b32Chars[q>>20&0x1F]
		dst[di+4] = b32Chars[q>>15&0x1F]
		dst[di+5] = b32Chars[q>>10&0x1F]
		dst[di+6] = b32Chars[q>>5&0x1F]
		dst[di+7] = b32Chars[q&0x1F]

		di += 8
	}

	// Final partial block: zero-fill the missing low bytes and emit only
	// the symbols backed by real input bits.
	if si < n {
		var q uint64
		for _, b := range src[si:] {
			q = q<<8 | uint64(b)
		}
		q <<= uint(8 * (5 - (n - si)))

		for shift := 35; di < symbols; shift -= 5 {
			dst[di] = b32Chars[q>>uint(shift)&0x1F]
			di++
		}
	}

	for ; di < symbols+padLen(n); di++ {
		dst[di] = b32Pad
	}
}

// UnsafeEncode fills dst with the encoded form of src.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the source is empty or over MaxEncodeLen, or
// if the destination does not have enough space in the slice for the
// encoded form of src.
//
// Knowing the length of the slice now occupied by the encoded form of
// src is the responsibility of the caller. It is EncodedLen(len(src)).
//
// invariants:
//
// - 0 < len(src) <= MaxEncodeLen
//
// - len(dst) >= EncodedLen(len(src))
func UnsafeEncode(dst, src []byte) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	n := EncodedLen(len(src))
	if n <= 0 {
		panic("base32: invalid encode source length")
	}
	if len(dst) < n {
		panic("base32: encode destination too short")
	}

	encode(dst, src)
}

// Encode returns the padded encoded form of src. It returns
// ErrMaxLengthExceeded with no partial output when src is longer than
// MaxEncodeLen. An empty src encodes to nil with no error.
func Encode(src []byte) ([]byte, error) {
	n := len(src)
	if n > MaxEncodeLen {
		return nil, ErrMaxLengthExceeded
	}
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, encodedLen(n))

	encode(dst, src)

	return dst, nil
}

// EncodeToString returns the padded encoded form of src as a string.
// Errors are as in Encode.
func EncodeToString(src []byte) (string, error) {
	dst, err := Encode(src)
	if err != nil || dst == nil {
		return "", err
	}

	return unsafe.String(unsafe.SliceData(dst), len(dst)), nil
}

// AppendEncode returns the encoded form of src appended to dst if src
// is not empty. If src is empty dst is returned as-is. Errors are as
// in Encode.
func AppendEncode(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n > MaxEncodeLen {
		return nil, ErrMaxLengthExceeded
	}
	if n == 0 {
		return dst, nil
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encode(dst[orig:], src)

	return dst, nil
}
