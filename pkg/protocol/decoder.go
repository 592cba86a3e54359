package protocol

import (
	"errors"
	"math"
)

// MaxValueSize is the maximum length accepted for a property value.
// It guards decode-side allocations against a malicious length prefix.
const MaxValueSize = 1 << 20

// Common decoding errors.
var (
	// ErrTruncated is returned when a payload is shorter than its tag
	// requires. It is always surfaced to the caller of decode, never
	// silently tolerated.
	ErrTruncated = errors.New("protocol: truncated payload")

	// ErrValueTooLarge is returned when a length prefix exceeds MaxValueSize.
	ErrValueTooLarge = errors.New("protocol: value length exceeds limit")
)

// Decoder is a binary decoder that reads little-endian data from a byte
// buffer. Every read is bounds-checked; a read past the end fails with
// ErrTruncated and leaves the position unchanged.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new decoder from the given byte slice.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// EOF returns true if all bytes have been read.
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.buf)
}

// Position returns the current read position.
func (d *Decoder) Position() int {
	return d.pos
}

// ReadBytes reads exactly n bytes and returns a copy (safe to retain).
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, ErrTruncated
	}
	b := make([]byte, n)
	copy(b, d.buf[d.pos:d.pos+n])
	d.pos += n
	return b, nil
}

// ReadUint32 reads a uint32 in little-endian byte order.
func (d *Decoder) ReadUint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, ErrTruncated
	}
	v := uint32(d.buf[d.pos]) | uint32(d.buf[d.pos+1])<<8 |
		uint32(d.buf[d.pos+2])<<16 | uint32(d.buf[d.pos+3])<<24
	d.pos += 4
	return v, nil
}

// ReadInt32 reads an int32 in little-endian byte order.
func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads a float32 in IEEE 754 format (little-endian).
func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadCString reads the remaining bytes as a string, stopping at the first
// NUL. A missing terminator is tolerated: the string then spans the rest
// of the buffer.
func (d *Decoder) ReadCString() (string, error) {
	if d.pos > len(d.buf) {
		return "", ErrTruncated
	}
	rest := d.buf[d.pos:]
	for i, b := range rest {
		if b == 0 {
			d.pos += i + 1
			return string(rest[:i]), nil
		}
	}
	d.pos = len(d.buf)
	return string(rest), nil
}
