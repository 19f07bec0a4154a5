package base32

import (
	"bytes"
	"testing"
)

// FuzzDecode asserts that decoding any input either fails cleanly with
// no partial output, or yields bytes whose re-encoded form decodes back
// to the same bytes. Tail bits are not verified, so the re-encoded text
// may differ from the input; its payload may not.
func FuzzDecode(f *testing.F) {
	for _, seed := range []string{
		"",
		"MY======",
		"MZXQ====",
		"MZXW6===",
		"MZXW6YQ=",
		"MZXW6YTB",
		"MZXW6YTBOI======",
		"MZ XW 6Y TB",
		"AAAAAAA=",
		"====",
		"MY",
		"MY==MY==",
		"\x00",
		"\xff",
		"mzxw6ytb",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		got, err := DecodeString(src)
		if err != nil {
			if got != nil {
				t.Fatalf("error %v carried partial output %q", err, got)
			}
			return
		}

		// A maximal unpadded input can decode to one byte over the
		// encode ceiling; nothing the encoder produced can.
		if len(got) > MaxEncodeLen {
			return
		}

		enc, err := Encode(got)
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}

		back, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode of re-encoded form failed: %v", err)
		}

		if !bytes.Equal(got, back) {
			t.Fatalf("re-encoded form decodes to %q, first decode was %q", back, got)
		}
	})
}

// FuzzRoundTrip asserts that every encodable byte sequence survives an
// encode and decode unchanged.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("f"))
	f.Add([]byte("foobar"))
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0xFF, 0xFE, 0xFD})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, src []byte) {
		if len(src) > MaxEncodeLen {
			t.Skip("over the encode ceiling")
		}

		enc, err := Encode(src)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}

		if len(src) > 0 && len(enc)%8 != 0 {
			t.Fatalf("encoded length %d is not a multiple of 8", len(enc))
		}

		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}

		if !bytes.Equal(src, dec) {
			t.Fatalf("round trip produced %q from %q", dec, src)
		}
	})
}
