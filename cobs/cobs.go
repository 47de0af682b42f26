package cobs

import (
	"errors"
)

// Delimiter is the reserved byte value that COBS removes from encoded
// output.  The codec itself never writes it; a framing layer appends one
// after each encoded packet, and the decoder stops when it reads one.
const Delimiter byte = 0x00

const maxBlockCode = 0xff

var (
	// NilBuffer is the error that is returned when the source or
	// destination slice is nil.
	NilBuffer = errors.New("Nil source or destination buffer")

	// ShortBuffer is the error that is returned when the destination slice
	// is too small to hold the result.
	ShortBuffer = errors.New("Destination buffer too small")

	// TruncatedInput is the error that is returned by DecodeStrict when an
	// encoded block's declared length runs past the end of the input.
	TruncatedInput = errors.New("Truncated encoded input")
)

// MaxEncodedLength returns the number of bytes that encoding a payload of
// rawLength bytes can require in the worst case (all-nonzero input): one
// code byte for the first block, plus one more for every further 254 bytes
// of data.  The actual encoded length is only known after encoding, and is
// never larger than this.  The trailing delimiter, if you frame with one,
// is not included.
func MaxEncodedLength(rawLength int) int {
	return rawLength + rawLength/254 + 1
}

// Encode writes the COBS encoding of data into buf and returns the number
// of bytes written.  The encoded content contains no occurrence of
// Delimiter.  (We do _not_ write a trailing delimiter; it is your
// responsibility to write this in between packets when framing.)
//
// buf must hold at least MaxEncodedLength(len(data)) bytes; a smaller
// destination is rejected with ShortBuffer before anything is written.  A
// nil source or destination is rejected with NilBuffer.  Note that an
// empty (but non-nil) payload is valid and encodes to the single byte
// 0x01.
func Encode(data []byte, buf []byte) (int, error) {
	if data == nil || buf == nil {
		return 0, NilBuffer
	}
	if len(buf) < MaxEncodedLength(len(data)) {
		return 0, ShortBuffer
	}

	// codep is the index of the code byte reserved at the start of the
	// current block, back-filled once the block's boundary is known.
	codep := 0
	enc := 1
	code := byte(1)

	for i, b := range data {
		if b != Delimiter {
			buf[enc] = b
			enc++
			code++
		}
		if b == Delimiter || code == maxBlockCode {
			buf[codep] = code
			code = 1
			codep = enc
			// A zero always opens a fresh block, even at the end of the
			// input.  A full block only does if more input remains.
			if b == Delimiter || i < len(data)-1 {
				enc++
			}
		}
	}
	buf[codep] = code

	return enc, nil
}

// Decode writes the decoding of the COBS-encoded bytes in encoded into buf
// and returns the number of bytes written.  Decoding stops at the first
// Delimiter byte, so encoded may safely include the trailing delimiter (or
// the start of a following packet beyond it); the delimiter is never
// decoded as data.
//
// A destination of len(encoded) bytes is always large enough; if buf fills
// up early, Decode returns the count written so far and ShortBuffer.  A
// nil source or destination is rejected with NilBuffer.  Input that ends
// in the middle of a block is tolerated silently: Decode returns whatever
// was decoded so far.  Use DecodeStrict to have that reported instead.
func Decode(encoded []byte, buf []byte) (int, error) {
	return decode(encoded, buf, false)
}

// DecodeStrict is Decode with truncation detection: if a block's declared
// length runs past the end of encoded, it returns the partial count
// together with TruncatedInput.  For well-formed input it behaves exactly
// like Decode.
func DecodeStrict(encoded []byte, buf []byte) (int, error) {
	return decode(encoded, buf, true)
}

func decode(encoded []byte, buf []byte, strict bool) (int, error) {
	if encoded == nil || buf == nil {
		return 0, NilBuffer
	}

	n := 0
	code := byte(maxBlockCode)
	block := byte(0)

	for i := 0; i < len(encoded); block-- {
		if block != 0 {
			// Literal byte within the current block.
			if n == len(buf) {
				return n, ShortBuffer
			}
			buf[n] = encoded[i]
			n++
			i++
			continue
		}

		next := encoded[i]
		i++
		if next == Delimiter {
			return n, nil
		}
		// Any block shorter than the maximum marks a zero that the encoder
		// removed at the boundary, except at the very start of the stream.
		if code != maxBlockCode {
			if n == len(buf) {
				return n, ShortBuffer
			}
			buf[n] = 0
			n++
		}
		code = next
		block = next
	}

	if strict && block != 0 {
		return n, TruncatedInput
	}
	return n, nil
}
