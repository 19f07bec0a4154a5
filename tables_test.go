package base32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for i := range b32TableLen {
		c := byte(i)

		idx := strings.IndexByte(b32Chars, c)
		if idx == -1 {
			is.Equal(byte(b32Invalid), posTab[c])
			is.Equal(c == b32Pad, validTab[c])
			is.Equal(c == b32Pad, inAlphabet(c))
			continue
		}

		is.Equal(byte(idx), posTab[c])
		is.True(validTab[c])
		is.True(inAlphabet(c))
		is.Equal(c, b32Chars[posTab[c]])
	}

	// bytes outside the ascii range never reach the tables
	for i := b32TableLen; i < 256; i++ {
		is.False(inAlphabet(byte(i)))
	}

	// the pad is a member of the encoded character set but carries no
	// symbol value
	is.True(inAlphabet(b32Pad))
	is.Equal(byte(b32Invalid), posTab[b32Pad])

	// NUL is handled by payload trimming, not by table membership
	is.False(inAlphabet(0))

	// lowercase never aliases onto the uppercase alphabet
	is.False(inAlphabet('a'))
	is.False(inAlphabet('z'))
}
