// Package transport provides carriers for editorlink messages.
//
// The protocol core only needs two things from a transport: Transmit for
// outbound messages and a sink invoked once per complete inbound message.
// Reliability, ordering, and framing are the transport's responsibility;
// both implementations here preserve message boundaries.
//
// Loopback connects an editor and an engine living in the same process.
// WS carries messages over a WebSocket connection using binary frames,
// one message per frame.
package transport
