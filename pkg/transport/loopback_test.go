package transport

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/forgelab/editorlink/pkg/editor"
	"github.com/forgelab/editorlink/pkg/protocol"
)

func TestLoopbackDelivery(t *testing.T) {
	a, b := Loopback()

	var got [][]byte
	b.Bind(func(msg []byte) { got = append(got, msg) })

	if err := a.Transmit([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	if err := a.Transmit([]byte{4}); err != nil {
		t.Fatalf("Transmit: %v", err)
	}

	want := [][]byte{{1, 2, 3}, {4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivered = %v; want %v", got, want)
	}
}

func TestLoopbackCopiesPayload(t *testing.T) {
	a, b := Loopback()

	var got []byte
	b.Bind(func(msg []byte) { got = msg })

	buf := []byte{0xAA, 0xBB}
	if err := a.Transmit(buf); err != nil {
		t.Fatalf("Transmit: %v", err)
	}
	buf[0] = 0x00

	if !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Error("delivered message aliases the sender's buffer")
	}
}

func TestLoopbackUnboundDrops(t *testing.T) {
	a, _ := Loopback()
	if err := a.Transmit([]byte{1}); err != nil {
		t.Errorf("Transmit to unbound peer = %v; want nil (dropped)", err)
	}
}

func TestLoopbackClosed(t *testing.T) {
	a, b := Loopback()
	b.Close()

	if err := a.Transmit([]byte{1}); !errors.Is(err, ErrClosed) {
		t.Errorf("Transmit after peer close = %v; want ErrClosed", err)
	}
	if err := b.Transmit([]byte{1}); !errors.Is(err, ErrClosed) {
		t.Errorf("Transmit after own close = %v; want ErrClosed", err)
	}
}

// TestLoopbackEndToEnd runs a command/event exchange between a client and
// a minimal in-process engine.
func TestLoopbackEndToEnd(t *testing.T) {
	editorSide, engineSide := Loopback()

	client, err := editor.New(editor.Config{Transport: editorSide})
	if err != nil {
		t.Fatalf("editor.New: %v", err)
	}
	editorSide.Bind(func(msg []byte) { client.OnBytes(msg) })

	// The engine echoes every SET_POSITION back as an ENTITY_POSITION
	// event, the way a real back-end confirms a move.
	engineSide.Bind(func(msg []byte) {
		cmd, err := protocol.DecodeCommand(msg)
		if err != nil {
			t.Errorf("engine decode: %v", err)
			return
		}
		if sp, ok := cmd.(protocol.SetPositionCommand); ok {
			engineSide.Transmit(protocol.EncodeEvent(protocol.EntityPositionEvent{
				Entity: sp.Entity, X: sp.X, Y: sp.Y, Z: sp.Z,
			}))
		}
	})

	var got []protocol.EntityPositionEvent
	client.OnEntityPosition(func(ev protocol.EntityPositionEvent) { got = append(got, ev) })

	if err := client.SetEntityPosition(7, 1.0, 2.0, 3.0); err != nil {
		t.Fatalf("SetEntityPosition: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("dispatched %d events; want 1", len(got))
	}
	want := protocol.EntityPositionEvent{Entity: 7, X: 1.0, Y: 2.0, Z: 3.0}
	if got[0] != want {
		t.Errorf("event = %+v; want %+v", got[0], want)
	}
}
