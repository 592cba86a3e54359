package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/forgelab/editorlink/pkg/protocol"
)

// Transport is the collaborator that carries framed messages to the
// engine. Transmit is fire-and-forget: a nil error means the message was
// accepted for delivery, not that the engine processed it. The transport
// is also responsible for invoking Client.OnBytes once per complete
// inbound message.
type Transport interface {
	Transmit(p []byte) error
}

// Config configures a Client.
type Config struct {
	// BasePath is the editor's install/content root.
	BasePath string

	// Transport carries encoded commands to the engine. Required.
	Transport Transport

	// Logger receives decode failures and diagnostics.
	// Default: slog.Default() with component=editor.
	Logger *slog.Logger

	// Metrics, when set, counts protocol traffic.
	Metrics *Metrics

	// Tracer, when set, opens a span per inbound dispatch.
	Tracer trace.Tracer
}

// ErrNoTransport is returned by New when Config.Transport is nil.
var ErrNoTransport = errors.New("editor: no transport configured")

// Client is the editor-side protocol session. Command methods run on the
// caller's goroutine and perform one encode and one Transmit each; they
// never block waiting for the engine.
type Client struct {
	transport Transport
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer

	// mu guards the session paths.
	mu           sync.Mutex
	basePath     string
	universePath string

	entityPosition listenerList[protocol.EntityPositionEvent]
	entitySelected listenerList[protocol.EntitySelectedEvent]
	propertyList   listenerList[protocol.PropertyListEvent]
	logMessages    listenerList[protocol.LogEvent]
}

// New creates a client session over the given transport.
func New(cfg Config) (*Client, error) {
	if cfg.Transport == nil {
		return nil, ErrNoTransport
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "editor")
	}

	return &Client{
		transport: cfg.Transport,
		logger:    logger,
		metrics:   cfg.Metrics,
		tracer:    cfg.Tracer,
		basePath:  cfg.BasePath,
	}, nil
}

// BasePath returns the editor's install/content root.
func (c *Client) BasePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.basePath
}

// UniversePath returns the path of the currently loaded universe, or ""
// when none is loaded.
func (c *Client) UniversePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.universePath
}

// send encodes one command and hands it to the transport. The encoded
// buffer is freshly allocated per call and owned by the transport after
// Transmit returns.
func (c *Client) send(cmd protocol.Command) error {
	data := protocol.EncodeCommand(cmd)
	if err := c.transport.Transmit(data); err != nil {
		c.logger.Error("transmit failed", "command", cmd.Type(), "error", err)
		return err
	}
	c.metrics.commandSent(cmd.Type().String(), len(data))
	return nil
}

// Commands. One method per wire tag; each validates shape by construction,
// builds the payload in declared field order, and transmits.

// LookAtSelected points the camera at the current selection.
func (c *Client) LookAtSelected() error {
	return c.send(protocol.LookAtSelectedCommand{})
}

// AddComponent adds a component of the given type to the selected entity.
// The type is addressed by the ContentKey of its name.
func (c *Client) AddComponent(kind uint32) error {
	return c.send(protocol.AddComponentCommand{Kind: kind})
}

// ToggleGameMode switches between edit and game mode.
func (c *Client) ToggleGameMode() error {
	return c.send(protocol.ToggleGameModeCommand{})
}

// AddEntity creates a new entity.
func (c *Client) AddEntity() error {
	return c.send(protocol.AddEntityCommand{})
}

// PointerDown reports a pointer press in viewport coordinates.
func (c *Client) PointerDown(x, y, button int32) error {
	return c.send(protocol.PointerDownCommand{X: x, Y: y, Button: button})
}

// PointerUp reports a pointer release in viewport coordinates.
func (c *Client) PointerUp(x, y, button int32) error {
	return c.send(protocol.PointerUpCommand{X: x, Y: y, Button: button})
}

// PointerMove reports pointer motion with relative deltas and modifier
// flags.
func (c *Client) PointerMove(x, y, dx, dy, flags int32) error {
	return c.send(protocol.PointerMoveCommand{X: x, Y: y, DX: dx, DY: dy, Flags: flags})
}

// LoadUniverse asks the engine to load a universe and records the path as
// the session's current universe.
func (c *Client) LoadUniverse(path string) error {
	c.setUniversePath(path)
	return c.send(protocol.LoadCommand{Path: path})
}

// SaveUniverse asks the engine to save the universe and records the path
// as the session's current universe.
func (c *Client) SaveUniverse(path string) error {
	c.setUniversePath(path)
	return c.send(protocol.SaveCommand{Path: path})
}

// NewUniverse asks the engine to replace the universe with an empty one
// and clears the session's universe path.
func (c *Client) NewUniverse() error {
	c.setUniversePath("")
	return c.send(protocol.NewUniverseCommand{})
}

// SetWireframe toggles wireframe rendering.
func (c *Client) SetWireframe(enabled bool) error {
	return c.send(protocol.SetWireframeCommand{Enabled: enabled})
}

// SetAnimableTime seeks the previewed animation.
func (c *Client) SetAnimableTime(time int32) error {
	return c.send(protocol.SetAnimableTimeCommand{Time: time})
}

// PlayPauseAnimable toggles animation preview playback.
func (c *Client) PlayPauseAnimable() error {
	return c.send(protocol.PlayPauseAnimableCommand{})
}

// SetEntityPosition moves an entity to an absolute position.
func (c *Client) SetEntityPosition(entity int32, x, y, z float32) error {
	return c.send(protocol.SetPositionCommand{Entity: entity, X: x, Y: y, Z: z})
}

// MoveCamera moves the editor camera along its forward and right axes.
func (c *Client) MoveCamera(forward, right, speed float32) error {
	return c.send(protocol.MoveCameraCommand{Forward: forward, Right: right, Speed: speed})
}

// SetComponentProperty sets one property of one component on the selected
// entity. Component and property are named; their ContentKeys travel on
// the wire. Value is the raw property bytes in the property's own layout.
func (c *Client) SetComponentProperty(component, property string, value []byte) error {
	if len(value) > protocol.MaxValueSize {
		return protocol.ErrValueTooLarge
	}
	return c.send(protocol.PropertySetCommand{
		Component: protocol.ContentKey(component),
		Property:  protocol.ContentKey(property),
		Value:     value,
	})
}

// RequestProperties asks the engine to publish the property list for the
// named component type. The reply arrives as a PropertyListEvent.
func (c *Client) RequestProperties(typeName string) error {
	return c.RequestPropertiesByKey(protocol.ContentKey(typeName))
}

// RequestPropertiesByKey is RequestProperties for callers that already
// hold the type's ContentKey.
func (c *Client) RequestPropertiesByKey(key uint32) error {
	return c.send(protocol.GetPropertiesCommand{Key: key})
}

func (c *Client) setUniversePath(path string) {
	c.mu.Lock()
	c.universePath = path
	c.mu.Unlock()
}

// Subscriptions.

// OnEntityPosition registers a listener for entity movement events.
func (c *Client) OnEntityPosition(fn func(protocol.EntityPositionEvent)) *Subscription {
	return c.entityPosition.subscribe(fn)
}

// OnEntitySelected registers a listener for selection events.
func (c *Client) OnEntitySelected(fn func(protocol.EntitySelectedEvent)) *Subscription {
	return c.entitySelected.subscribe(fn)
}

// OnPropertyList registers a listener for property list events.
func (c *Client) OnPropertyList(fn func(protocol.PropertyListEvent)) *Subscription {
	return c.propertyList.subscribe(fn)
}

// OnLog registers a listener for engine log events.
func (c *Client) OnLog(fn func(protocol.LogEvent)) *Subscription {
	return c.logMessages.subscribe(fn)
}

// OnBytes is the inbound entry point, invoked by the transport once per
// complete message. It decodes the message and fans the event out to the
// subscribed listeners on the calling goroutine. A decode failure is
// returned but leaves the client fully operational for later messages.
func (c *Client) OnBytes(data []byte) error {
	c.metrics.received(len(data))

	ev, err := protocol.DecodeEvent(data)
	if err != nil {
		c.metrics.decodeError()
		c.logger.Error("event decode failed", "error", err, "bytes", len(data))
		return err
	}

	if c.tracer != nil {
		_, span := c.tracer.Start(context.Background(), "editor.dispatch",
			trace.WithAttributes(attribute.String("event.kind", ev.Kind().String())))
		defer span.End()
	}

	switch ev := ev.(type) {
	case protocol.EntityPositionEvent:
		c.entityPosition.dispatch(ev)
	case protocol.EntitySelectedEvent:
		c.entitySelected.dispatch(ev)
	case protocol.PropertyListEvent:
		c.propertyList.dispatch(ev)
	case protocol.LogEvent:
		c.logMessages.dispatch(ev)
	case protocol.UnhandledEvent:
		c.metrics.unknownTag()
		c.logger.Debug("unhandled message tag", "tag", ev.Tag)
		return nil
	}

	c.metrics.eventDispatched(ev.Kind().String())
	return nil
}
