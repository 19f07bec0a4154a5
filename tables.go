// A padded RFC 4648 base32 implementation.

package base32

const (
	b32Invalid = 0xFF
	b32Chars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	b32Pad     = '='

	// Tables cover the 7-bit ASCII range only. Anything above it is
	// rejected before probing so lookups never index out of bounds.
	b32TableLen = 128
)

//
// posTab maps an ASCII byte to its 5-bit symbol value, validTab marks the
// bytes allowed to appear in encoded input: the alphabet plus the pad
//

var posTab, validTab = func() ([b32TableLen]byte, [b32TableLen]bool) {
	var pos [b32TableLen]byte
	var valid [b32TableLen]bool

	for i := range pos {
		pos[i] = b32Invalid
	}

	for i := range b32Chars {
		c := b32Chars[i]

		pos[c] = byte(i)
		valid[c] = true
	}

	valid[b32Pad] = true

	return pos, valid
}()

// inAlphabet reports whether c may appear in encoded input. The pad
// character is a member even though it carries no symbol value.
func inAlphabet(c byte) bool {
	return c < b32TableLen && validTab[c]
}
