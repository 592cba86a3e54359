package editor

import (
	"errors"
	"testing"

	"github.com/forgelab/editorlink/pkg/protocol"
)

// captureTransport records every transmitted message.
type captureTransport struct {
	sent [][]byte
	err  error
}

func (t *captureTransport) Transmit(p []byte) error {
	if t.err != nil {
		return t.err
	}
	t.sent = append(t.sent, p)
	return nil
}

func (t *captureTransport) last() []byte {
	if len(t.sent) == 0 {
		return nil
	}
	return t.sent[len(t.sent)-1]
}

func newTestClient(t *testing.T) (*Client, *captureTransport) {
	t.Helper()
	tr := &captureTransport{}
	c, err := New(Config{BasePath: "/projects/demo", Transport: tr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, tr
}

func TestNewRequiresTransport(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNoTransport) {
		t.Errorf("New without transport err = %v; want ErrNoTransport", err)
	}
}

func TestCommandsReachTransport(t *testing.T) {
	c, tr := newTestClient(t)

	tests := []struct {
		name string
		call func() error
		want protocol.Command
	}{
		{"LookAtSelected", c.LookAtSelected, protocol.LookAtSelectedCommand{}},
		{"ToggleGameMode", c.ToggleGameMode, protocol.ToggleGameModeCommand{}},
		{"AddEntity", c.AddEntity, protocol.AddEntityCommand{}},
		{"PlayPauseAnimable", c.PlayPauseAnimable, protocol.PlayPauseAnimableCommand{}},
		{"NewUniverse", c.NewUniverse, protocol.NewUniverseCommand{}},
		{"AddComponent", func() error { return c.AddComponent(protocol.ContentKey("renderable")) },
			protocol.AddComponentCommand{Kind: protocol.ContentKey("renderable")}},
		{"PointerDown", func() error { return c.PointerDown(10, 20, 0) },
			protocol.PointerDownCommand{X: 10, Y: 20, Button: 0}},
		{"PointerUp", func() error { return c.PointerUp(10, 25, 1) },
			protocol.PointerUpCommand{X: 10, Y: 25, Button: 1}},
		{"PointerMove", func() error { return c.PointerMove(1, 2, 3, 4, 5) },
			protocol.PointerMoveCommand{X: 1, Y: 2, DX: 3, DY: 4, Flags: 5}},
		{"SetWireframe", func() error { return c.SetWireframe(true) },
			protocol.SetWireframeCommand{Enabled: true}},
		{"SetAnimableTime", func() error { return c.SetAnimableTime(500) },
			protocol.SetAnimableTimeCommand{Time: 500}},
		{"SetEntityPosition", func() error { return c.SetEntityPosition(7, 1, 2, 3) },
			protocol.SetPositionCommand{Entity: 7, X: 1, Y: 2, Z: 3}},
		{"MoveCamera", func() error { return c.MoveCamera(1, 0, 2.5) },
			protocol.MoveCameraCommand{Forward: 1, Right: 0, Speed: 2.5}},
		{"RequestProperties", func() error { return c.RequestProperties("point_light") },
			protocol.GetPropertiesCommand{Key: protocol.ContentKey("point_light")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("command: %v", err)
			}
			got, err := protocol.DecodeCommand(tr.last())
			if err != nil {
				t.Fatalf("DecodeCommand: %v", err)
			}
			if got != tt.want {
				t.Errorf("transmitted %#v; want %#v", got, tt.want)
			}
		})
	}
}

func TestSetComponentProperty(t *testing.T) {
	c, tr := newTestClient(t)

	value := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if err := c.SetComponentProperty("Transform", "Position", value); err != nil {
		t.Fatalf("SetComponentProperty: %v", err)
	}

	got, err := protocol.DecodeCommand(tr.last())
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	ps, ok := got.(protocol.PropertySetCommand)
	if !ok {
		t.Fatalf("got %T; want PropertySetCommand", got)
	}
	if ps.Component != protocol.ContentKey("Transform") ||
		ps.Property != protocol.ContentKey("Position") ||
		len(ps.Value) != 12 {
		t.Errorf("got %+v", ps)
	}
}

func TestSetComponentPropertyTooLarge(t *testing.T) {
	c, tr := newTestClient(t)

	err := c.SetComponentProperty("Transform", "Position", make([]byte, protocol.MaxValueSize+1))
	if !errors.Is(err, protocol.ErrValueTooLarge) {
		t.Errorf("err = %v; want ErrValueTooLarge", err)
	}
	if len(tr.sent) != 0 {
		t.Error("oversized value must not reach the transport")
	}
}

func TestSessionPaths(t *testing.T) {
	c, _ := newTestClient(t)

	if got := c.BasePath(); got != "/projects/demo" {
		t.Errorf("BasePath() = %q", got)
	}
	if got := c.UniversePath(); got != "" {
		t.Errorf("UniversePath() = %q; want empty", got)
	}

	if err := c.LoadUniverse("scenes/level1.dat"); err != nil {
		t.Fatalf("LoadUniverse: %v", err)
	}
	if got := c.UniversePath(); got != "scenes/level1.dat" {
		t.Errorf("UniversePath() after load = %q; want scenes/level1.dat", got)
	}

	if err := c.SaveUniverse("scenes/level2.dat"); err != nil {
		t.Fatalf("SaveUniverse: %v", err)
	}
	if got := c.UniversePath(); got != "scenes/level2.dat" {
		t.Errorf("UniversePath() after save = %q", got)
	}

	if err := c.NewUniverse(); err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	if got := c.UniversePath(); got != "" {
		t.Errorf("UniversePath() after new = %q; want empty", got)
	}
}

func TestTransmitErrorPropagates(t *testing.T) {
	tr := &captureTransport{err: errors.New("pipe closed")}
	c, err := New(Config{Transport: tr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.AddEntity(); err == nil {
		t.Error("AddEntity over broken transport must fail")
	}
}

func TestOnBytesDispatch(t *testing.T) {
	c, _ := newTestClient(t)

	var positions []protocol.EntityPositionEvent
	var selections []protocol.EntitySelectedEvent
	c.OnEntityPosition(func(ev protocol.EntityPositionEvent) { positions = append(positions, ev) })
	c.OnEntitySelected(func(ev protocol.EntitySelectedEvent) { selections = append(selections, ev) })

	if err := c.OnBytes(protocol.EncodeEvent(protocol.EntityPositionEvent{Entity: 7, X: 1, Y: 2, Z: 3})); err != nil {
		t.Fatalf("OnBytes: %v", err)
	}
	if err := c.OnBytes(protocol.EncodeEvent(protocol.EntitySelectedEvent{Entity: 7})); err != nil {
		t.Fatalf("OnBytes: %v", err)
	}

	if len(positions) != 1 || positions[0].Entity != 7 || positions[0].Z != 3 {
		t.Errorf("positions = %+v", positions)
	}
	if len(selections) != 1 || selections[0].Entity != 7 {
		t.Errorf("selections = %+v", selections)
	}
}

func TestOnBytesDecodeFailureIsIndependent(t *testing.T) {
	c, _ := newTestClient(t)

	var logs []protocol.LogEvent
	c.OnLog(func(ev protocol.LogEvent) { logs = append(logs, ev) })

	// Truncated message fails...
	if err := c.OnBytes([]byte{0x01, 0x00}); err == nil {
		t.Error("truncated message must fail")
	}

	// ...but the next message still dispatches.
	if err := c.OnBytes(protocol.EncodeEvent(protocol.LogEvent{Level: protocol.LogInfo, Message: "ready"})); err != nil {
		t.Fatalf("OnBytes: %v", err)
	}
	if len(logs) != 1 || logs[0].Message != "ready" {
		t.Errorf("logs = %+v", logs)
	}
}

func TestOnBytesUnknownTag(t *testing.T) {
	c, _ := newTestClient(t)

	var dispatched bool
	c.OnLog(func(protocol.LogEvent) { dispatched = true })

	if err := c.OnBytes([]byte{0xEF, 0xBE, 0x00, 0x00, 0x01, 0x02}); err != nil {
		t.Errorf("unknown tag must not fail, got %v", err)
	}
	if dispatched {
		t.Error("unknown tag must not dispatch")
	}
}

func TestOnBytesPropertyList(t *testing.T) {
	c, _ := newTestClient(t)

	var lists []protocol.PropertyListEvent
	c.OnPropertyList(func(ev protocol.PropertyListEvent) { lists = append(lists, ev) })

	ev := protocol.PropertyListEvent{Properties: []protocol.PropertyValue{
		{Key: protocol.ContentKey("Position"), Value: make([]byte, 12)},
		{Key: protocol.ContentKey("fov"), Value: []byte{0, 0, 0x34, 0x42}},
	}}
	if err := c.OnBytes(protocol.EncodeEvent(ev)); err != nil {
		t.Fatalf("OnBytes: %v", err)
	}
	if len(lists) != 1 || len(lists[0].Properties) != 2 {
		t.Fatalf("lists = %+v", lists)
	}
	if lists[0].Properties[1].Key != protocol.ContentKey("fov") {
		t.Errorf("entry order not preserved: %+v", lists[0].Properties)
	}
}
