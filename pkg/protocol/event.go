package protocol

// EventKind identifies an engine → editor event and fixes its payload
// layout.
type EventKind uint32

// Event tag constants. Values are part of the wire format.
const (
	EventEntityPosition EventKind = 0x01
	EventEntitySelected EventKind = 0x02
	EventPropertyList   EventKind = 0x03
	EventLogMessage     EventKind = 0x04
)

// String returns the string representation of the event kind.
func (ek EventKind) String() string {
	switch ek {
	case EventEntityPosition:
		return "EntityPosition"
	case EventEntitySelected:
		return "EntitySelected"
	case EventPropertyList:
		return "PropertyList"
	case EventLogMessage:
		return "LogMessage"
	default:
		return "Unknown"
	}
}

// LogLevel categorizes a LogEvent.
type LogLevel int32

const (
	LogInfo    LogLevel = 0
	LogWarning LogLevel = 1
	LogError   LogLevel = 2
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogInfo:
		return "Info"
	case LogWarning:
		return "Warning"
	case LogError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is a decoded engine → editor message. The variant set is closed;
// a tag outside it decodes to UnhandledEvent.
type Event interface {
	// Kind returns the event's wire tag.
	Kind() EventKind
}

// EntityPositionEvent reports that an entity moved.
type EntityPositionEvent struct {
	Entity  int32
	X, Y, Z float32
}

// EntitySelectedEvent reports that an entity became the selection.
type EntitySelectedEvent struct {
	Entity int32
}

// PropertyValue is one entry of a PropertyListEvent. Key is the
// ContentKey of the property's name; Value is the raw property bytes.
type PropertyValue struct {
	Key   uint32
	Value []byte
}

// PropertyListEvent carries the property values for a previously
// requested component type, in wire order.
type PropertyListEvent struct {
	Properties []PropertyValue
}

// LogEvent carries one engine log line.
type LogEvent struct {
	Level   LogLevel
	Message string
}

// UnhandledEvent is the decode result for a tag outside the known set.
// It exists so unknown future message kinds are skippable by old clients
// without being mistaken for errors.
type UnhandledEvent struct {
	Tag uint32
}

func (EntityPositionEvent) Kind() EventKind { return EventEntityPosition }
func (EntitySelectedEvent) Kind() EventKind { return EventEntitySelected }
func (PropertyListEvent) Kind() EventKind   { return EventPropertyList }
func (LogEvent) Kind() EventKind            { return EventLogMessage }
func (e UnhandledEvent) Kind() EventKind    { return EventKind(e.Tag) }

// DecodeEvent decodes one inbound message. Decoding is a single pure pass
// over the buffer: no state is carried between messages, and a failure on
// one message never affects the next. A buffer shorter than the tag's
// fixed fields is ErrTruncated; trailing bytes beyond them are ignored.
func DecodeEvent(data []byte) (Event, error) {
	d := NewDecoder(data)
	tag, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	switch EventKind(tag) {
	case EventEntityPosition:
		var ev EntityPositionEvent
		if ev.Entity, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if ev.X, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if ev.Y, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if ev.Z, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		return ev, nil

	case EventEntitySelected:
		var ev EntitySelectedEvent
		if ev.Entity, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		return ev, nil

	case EventPropertyList:
		return decodePropertyList(d)

	case EventLogMessage:
		var ev LogEvent
		level, err := d.ReadInt32()
		if err != nil {
			return nil, err
		}
		ev.Level = LogLevel(level)
		if ev.Message, err = d.ReadCString(); err != nil {
			return nil, err
		}
		return ev, nil

	default:
		return UnhandledEvent{Tag: tag}, nil
	}
}

// decodePropertyList extracts (key, length, value) records until the
// buffer ends. The loop runs only while a full record header remains;
// a header whose value bytes run past the end is ErrTruncated.
func decodePropertyList(d *Decoder) (Event, error) {
	var ev PropertyListEvent
	for d.Remaining() >= 8 {
		key, err := d.ReadUint32()
		if err != nil {
			return nil, err
		}
		length, err := d.ReadInt32()
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, ErrTruncated
		}
		if length > MaxValueSize {
			return nil, ErrValueTooLarge
		}
		value, err := d.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		ev.Properties = append(ev.Properties, PropertyValue{Key: key, Value: value})
	}
	return ev, nil
}

// Event encoding, the engine-side counterpart of DecodeEvent. The editor
// never sends events; these exist for engine implementations and tests.

// EncodeEvent encodes an event to bytes: tag followed by the payload
// fields in wire order.
func EncodeEvent(ev Event) []byte {
	e := NewEncoder()
	EncodeEventTo(e, ev)
	return e.Bytes()
}

// EncodeEventTo encodes an event using the provided encoder.
func EncodeEventTo(e *Encoder, ev Event) {
	e.WriteUint32(uint32(ev.Kind()))

	switch ev := ev.(type) {
	case EntityPositionEvent:
		e.WriteInt32(ev.Entity)
		e.WriteFloat32(ev.X)
		e.WriteFloat32(ev.Y)
		e.WriteFloat32(ev.Z)

	case EntitySelectedEvent:
		e.WriteInt32(ev.Entity)

	case PropertyListEvent:
		for _, p := range ev.Properties {
			e.WriteUint32(p.Key)
			e.WriteInt32(int32(len(p.Value)))
			e.WriteBytes(p.Value)
		}

	case LogEvent:
		e.WriteInt32(int32(ev.Level))
		e.WriteCString(ev.Message)
	}
}
