// Package protocol implements the binary wire protocol between the editor
// front-end and the engine back-end.
//
// The protocol is a fire-and-forget command stream in one direction and a
// push-only event stream in the other. It assumes a reliable, ordered,
// message-framed byte channel underneath; framing, delivery, and integrity
// belong to the transport, not to this package.
//
// # Wire Format
//
// Every message starts with a 4-byte tag that fully determines the payload
// layout:
//
//	┌──────────────────────┬────────────────────────────────────┐
//	│ Tag                  │ Payload                            │
//	│ (4 bytes, LE)        │ (tag-specific, possibly empty)     │
//	└──────────────────────┴────────────────────────────────────┘
//
// There is no per-message length prefix and no self-describing schema:
// fields are read in the fixed order declared for the tag. All fixed-width
// integers and IEEE 754 floats are little-endian. Path strings travel as
// raw bytes with a trailing NUL.
//
// # Commands
//
// Commands flow editor → engine. A command with no arguments encodes to
// exactly 4 bytes. Property addressing never transmits names on the hot
// path: component and property names are reduced to CRC-32 keys with
// ContentKey.
//
// Example SET_POSITION encoding:
//
//	[Tag: 0x11][Entity: i32][X: f32][Y: f32][Z: f32]
//	Total: 20 bytes
//
// # Events
//
// Events flow engine → editor and decode into a closed variant set:
// EntityPositionEvent, EntitySelectedEvent, PropertyListEvent, LogEvent.
// A tag outside that set decodes to UnhandledEvent — a forward-compatibility
// policy, not an error: old clients skip message kinds they do not know.
//
// A payload shorter than its tag requires is ErrTruncated; the decoder
// never reads past the buffer and never zero-fills missing fields. Trailing
// bytes beyond a tag's fixed fields are ignored so future additive fields
// stay compatible.
//
// # Usage Example
//
//	// Encode a command
//	data := protocol.EncodeSetPosition(7, 1.0, 2.0, 3.0)
//
//	// Decode an event
//	ev, err := protocol.DecodeEvent(data)
//	if err != nil {
//	    // truncated or malformed payload
//	}
//	switch ev := ev.(type) {
//	case protocol.EntityPositionEvent:
//	    // ev.Entity, ev.X, ev.Y, ev.Z
//	case protocol.UnhandledEvent:
//	    // unknown tag, ignore
//	}
//
// # File Structure
//
//   - encoder.go: append-buffer binary encoder
//   - decoder.go: bounds-checked binary decoder
//   - key.go: CRC-32 content keys
//   - command.go: command tags and encoding
//   - event.go: event tags, variants, and decoding
package protocol
