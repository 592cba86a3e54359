package protocol

import "math"

// Encoder is a binary encoder that appends little-endian data to an
// internal buffer. Each command is encoded with a fresh Encoder; the
// buffer is never shared between calls, so a shorter payload can never
// leak bytes from a previous one.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new encoder with a default initial capacity.
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0, 64),
	}
}

// NewEncoderWithCap creates a new encoder with the specified initial capacity.
func NewEncoderWithCap(cap int) *Encoder {
	return &Encoder{
		buf: make([]byte, 0, cap),
	}
}

// Reset resets the encoder to empty state, reusing the underlying buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the encoded bytes. The returned slice is valid until
// the next call to Reset or any Write method.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes currently encoded.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// WriteByte appends a single byte.
// Note: This intentionally doesn't return error (unlike io.ByteWriter)
// because the buffer is unbounded and can always append.
func (e *Encoder) WriteByte(b byte) {
	e.buf = append(e.buf, b)
}

// WriteBytes appends raw bytes.
func (e *Encoder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// WriteUint32 appends a uint32 in little-endian byte order.
func (e *Encoder) WriteUint32(v uint32) {
	e.buf = append(e.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteInt32 appends an int32 in little-endian byte order.
func (e *Encoder) WriteInt32(v int32) {
	e.WriteUint32(uint32(v))
}

// WriteFloat32 appends a float32 in IEEE 754 format (little-endian).
func (e *Encoder) WriteFloat32(v float32) {
	e.WriteUint32(math.Float32bits(v))
}

// WriteBool appends a boolean as an int32 flag (0 or 1).
func (e *Encoder) WriteBool(b bool) {
	if b {
		e.WriteInt32(1)
	} else {
		e.WriteInt32(0)
	}
}

// WriteCString appends the string's bytes followed by a NUL terminator.
func (e *Encoder) WriteCString(s string) {
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
}

// EncodeMessage frames a raw payload under a tag: tag || payload. An
// empty payload yields exactly the 4-byte tag. Most callers want
// EncodeCommand or EncodeEvent instead; this exists for payloads built
// outside the closed command and event sets.
func EncodeMessage(tag uint32, payload []byte) []byte {
	e := NewEncoderWithCap(4 + len(payload))
	e.WriteUint32(tag)
	e.WriteBytes(payload)
	return e.Bytes()
}
