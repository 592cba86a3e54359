package transport

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Transmit after either half of a loopback pair
// is closed.
var ErrClosed = errors.New("transport: closed")

// Pipe is one half of an in-process transport pair. Transmit on one half
// delivers the message synchronously to the peer's bound sink, preserving
// order and message boundaries. The payload is copied before delivery so
// the sender keeps exclusive ownership of its buffer.
type Pipe struct {
	mu     sync.Mutex
	peer   *Pipe
	sink   func([]byte)
	closed bool
}

// Loopback creates a connected transport pair: one half for the editor,
// one for the engine.
func Loopback() (*Pipe, *Pipe) {
	a := &Pipe{}
	b := &Pipe{}
	a.peer = b
	b.peer = a
	return a, b
}

// Bind sets the sink invoked once per complete inbound message. Messages
// transmitted by the peer before Bind are dropped.
func (p *Pipe) Bind(sink func([]byte)) {
	p.mu.Lock()
	p.sink = sink
	p.mu.Unlock()
}

// Transmit delivers one message to the peer. The delivery happens on the
// caller's goroutine; with both halves in one process this makes event
// dispatch run synchronously under the command that triggered it.
func (p *Pipe) Transmit(data []byte) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	peer := p.peer
	p.mu.Unlock()

	peer.mu.Lock()
	if peer.closed {
		peer.mu.Unlock()
		return ErrClosed
	}
	sink := peer.sink
	peer.mu.Unlock()

	if sink == nil {
		return nil
	}

	msg := make([]byte, len(data))
	copy(msg, data)
	sink(msg)
	return nil
}

// Close tears down this half. Subsequent Transmit calls on either half
// fail with ErrClosed.
func (p *Pipe) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}
