// This base32 decoding implementation tolerates two kinds of noise that
// commonly survive transport of padded encodings: interior space characters
// are skipped, and trailing pad or NUL characters only delimit the payload.
// Anything else outside the alphabet fails decoding. It does not verify that
// leftover tail bits of the final symbol are zero; callers bit packing at a
// higher level and relying on those bits must validate them themselves, for
// example by re-encoding the result and comparing.

package base32

import (
	"slices"
	"unsafe"
)

// MaxDecodeLen is the largest input length in bytes that the decode
// functions accept. It is the padded encoded length of MaxEncodeLen
// source bytes, so any output of the encode functions stays decodable.
const MaxDecodeLen = (MaxEncodeLen + 4) / 5 * 8

// payloadLen returns the length of src without trailing pad characters.
// Trailing NULs are stripped the same way for callers handing over
// C-style terminated buffers. Pads and NULs before the last payload
// character are left in place and fail decoding later.
func payloadLen(src []byte) int {
	n := len(src)
	for n > 0 && (src[n-1] == b32Pad || src[n-1] == 0) {
		n--
	}

	return n
}

// decodedCap estimates the decoded byte count for n payload characters.
// The estimate sizes the output buffer and may run a byte short;
// emission is driven by the bit accumulator, not by this value.
func decodedCap(n int) int {
	if n == 0 {
		return 0
	}

	return (5*n - 4) / 8
}

// decode appends the decoded form of the pre-stripped payload src to
// dst and returns the extended slice. On the first invalid byte it
// discards all partial output and returns ErrInvalidInput.
func decode(dst, src []byte) ([]byte, error) {
	var cur byte
	bitsLeft := uint8(8)

	for _, c := range src {
		if c == ' ' {
			continue
		}
		if !inAlphabet(c) {
			return nil, ErrInvalidInput
		}

		pos := posTab[c]
		if pos == b32Invalid {
			// a pad inside the payload is a member of the encoded
			// character set but carries no symbol value
			return nil, ErrInvalidInput
		}

		if bitsLeft > 5 {
			cur |= pos << (bitsLeft - 5)
			bitsLeft -= 5
			continue
		}

		// Fill the current byte with the symbol's high bits, emit it and
		// carry the low bits into the next byte.
		cur |= pos >> (5 - bitsLeft)
		dst = append(dst, cur)
		cur = pos << (3 + bitsLeft)
		bitsLeft += 3
	}

	return dst, nil
}

// Decode returns the bytes encoded by src. Interior spaces are skipped
// and trailing pads delimit the payload; see the file comment for the
// exact tolerance rules.
//
// It returns ErrMaxLengthExceeded when src is longer than MaxDecodeLen,
// checked before any parsing, and ErrInvalidInput when a byte outside
// the alphabet, the pad and the space is encountered. Failures carry no
// partial output.
//
// Empty input, and input consisting only of spaces and pads, decodes to
// an empty result with no error. Callers must check the error rather
// than infer failure from an empty result.
func Decode(src []byte) ([]byte, error) {
	if len(src) > MaxDecodeLen {
		return nil, ErrMaxLengthExceeded
	}

	n := payloadLen(src)
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, 0, decodedCap(n))

	return decode(dst, src[:n])
}

// DecodeString returns the bytes encoded by src. Errors and tolerance
// rules are as in Decode.
func DecodeString(src string) ([]byte, error) {
	return Decode(unsafe.Slice(unsafe.StringData(src), len(src)))
}

// AppendDecode returns the decoded form of src appended to dst. If the
// payload of src is empty dst is returned as-is. Errors and tolerance
// rules are as in Decode; on error the passed dst is discarded and nil
// is returned.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) > MaxDecodeLen {
		return nil, ErrMaxLengthExceeded
	}

	n := payloadLen(src)
	if n == 0 {
		return dst, nil
	}

	dst = slices.Grow(dst, decodedCap(n))

	return decode(dst, src[:n])
}
