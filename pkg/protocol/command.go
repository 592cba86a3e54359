package protocol

// CommandType identifies an editor → engine command and fixes its payload
// layout.
type CommandType uint32

// Command tag constants. Values are part of the wire format.
const (
	CmdPointerDown       CommandType = 0x01
	CmdPointerUp         CommandType = 0x02
	CmdPointerMove       CommandType = 0x03
	CmdPropertySet       CommandType = 0x04
	CmdMoveCamera        CommandType = 0x05
	CmdGetProperties     CommandType = 0x06
	CmdLookAtSelected    CommandType = 0x07
	CmdAddComponent      CommandType = 0x08
	CmdToggleGameMode    CommandType = 0x09
	CmdAddEntity         CommandType = 0x0A
	CmdLoad              CommandType = 0x0B
	CmdSave              CommandType = 0x0C
	CmdNewUniverse       CommandType = 0x0D
	CmdSetWireframe      CommandType = 0x0E
	CmdSetAnimableTime   CommandType = 0x0F
	CmdPlayPauseAnimable CommandType = 0x10
	CmdSetPosition       CommandType = 0x11
)

// String returns the string representation of the command type.
func (ct CommandType) String() string {
	switch ct {
	case CmdPointerDown:
		return "PointerDown"
	case CmdPointerUp:
		return "PointerUp"
	case CmdPointerMove:
		return "PointerMove"
	case CmdPropertySet:
		return "PropertySet"
	case CmdMoveCamera:
		return "MoveCamera"
	case CmdGetProperties:
		return "GetProperties"
	case CmdLookAtSelected:
		return "LookAtSelected"
	case CmdAddComponent:
		return "AddComponent"
	case CmdToggleGameMode:
		return "ToggleGameMode"
	case CmdAddEntity:
		return "AddEntity"
	case CmdLoad:
		return "Load"
	case CmdSave:
		return "Save"
	case CmdNewUniverse:
		return "NewUniverse"
	case CmdSetWireframe:
		return "SetWireframe"
	case CmdSetAnimableTime:
		return "SetAnimableTime"
	case CmdPlayPauseAnimable:
		return "PlayPauseAnimable"
	case CmdSetPosition:
		return "SetPosition"
	default:
		return "Unknown"
	}
}

// Command is an editor → engine message. Implementations are value types;
// a command carries only its arguments, never a reference to prior state.
type Command interface {
	// Type returns the command's wire tag.
	Type() CommandType

	// encodePayload appends the command's payload fields in wire order.
	encodePayload(e *Encoder)
}

// Command variants, one per wire tag.

// PointerDownCommand reports a pointer button press at a screen position.
type PointerDownCommand struct {
	X, Y   int32
	Button int32
}

// PointerUpCommand reports a pointer button release at a screen position.
type PointerUpCommand struct {
	X, Y   int32
	Button int32
}

// PointerMoveCommand reports pointer motion with relative deltas.
type PointerMoveCommand struct {
	X, Y   int32
	DX, DY int32
	Flags  int32
}

// PropertySetCommand sets one component property. Component and Property
// are ContentKey digests of the respective names; Value is the raw
// property bytes in the property's own layout.
type PropertySetCommand struct {
	Component uint32
	Property  uint32
	Value     []byte
}

// MoveCameraCommand moves the editor camera.
type MoveCameraCommand struct {
	Forward float32
	Right   float32
	Speed   float32
}

// GetPropertiesCommand requests the property list for a component type,
// addressed by the ContentKey of its name.
type GetPropertiesCommand struct {
	Key uint32
}

// LookAtSelectedCommand points the camera at the current selection.
type LookAtSelectedCommand struct{}

// AddComponentCommand adds a component of the given type to the selection.
type AddComponentCommand struct {
	Kind uint32
}

// ToggleGameModeCommand toggles between edit and game mode.
type ToggleGameModeCommand struct{}

// AddEntityCommand creates a new entity.
type AddEntityCommand struct{}

// LoadCommand loads a universe from the given engine-side path.
type LoadCommand struct {
	Path string
}

// SaveCommand saves the universe to the given engine-side path.
type SaveCommand struct {
	Path string
}

// NewUniverseCommand replaces the universe with an empty one.
type NewUniverseCommand struct{}

// SetWireframeCommand toggles wireframe rendering.
type SetWireframeCommand struct {
	Enabled bool
}

// SetAnimableTimeCommand seeks the previewed animation.
type SetAnimableTimeCommand struct {
	Time int32
}

// PlayPauseAnimableCommand toggles animation preview playback.
type PlayPauseAnimableCommand struct{}

// SetPositionCommand moves an entity to an absolute position.
type SetPositionCommand struct {
	Entity  int32
	X, Y, Z float32
}

// UnhandledCommand is the decode result for a tag outside the known set.
// Unknown tags are skippable, not an error.
type UnhandledCommand struct {
	Tag uint32
}

func (PointerDownCommand) Type() CommandType       { return CmdPointerDown }
func (PointerUpCommand) Type() CommandType         { return CmdPointerUp }
func (PointerMoveCommand) Type() CommandType       { return CmdPointerMove }
func (PropertySetCommand) Type() CommandType       { return CmdPropertySet }
func (MoveCameraCommand) Type() CommandType        { return CmdMoveCamera }
func (GetPropertiesCommand) Type() CommandType     { return CmdGetProperties }
func (LookAtSelectedCommand) Type() CommandType    { return CmdLookAtSelected }
func (AddComponentCommand) Type() CommandType      { return CmdAddComponent }
func (ToggleGameModeCommand) Type() CommandType    { return CmdToggleGameMode }
func (AddEntityCommand) Type() CommandType         { return CmdAddEntity }
func (LoadCommand) Type() CommandType              { return CmdLoad }
func (SaveCommand) Type() CommandType              { return CmdSave }
func (NewUniverseCommand) Type() CommandType       { return CmdNewUniverse }
func (SetWireframeCommand) Type() CommandType      { return CmdSetWireframe }
func (SetAnimableTimeCommand) Type() CommandType   { return CmdSetAnimableTime }
func (PlayPauseAnimableCommand) Type() CommandType { return CmdPlayPauseAnimable }
func (SetPositionCommand) Type() CommandType       { return CmdSetPosition }
func (c UnhandledCommand) Type() CommandType       { return CommandType(c.Tag) }

func (c PointerDownCommand) encodePayload(e *Encoder) {
	e.WriteInt32(c.X)
	e.WriteInt32(c.Y)
	e.WriteInt32(c.Button)
}

func (c PointerUpCommand) encodePayload(e *Encoder) {
	e.WriteInt32(c.X)
	e.WriteInt32(c.Y)
	e.WriteInt32(c.Button)
}

func (c PointerMoveCommand) encodePayload(e *Encoder) {
	e.WriteInt32(c.X)
	e.WriteInt32(c.Y)
	e.WriteInt32(c.DX)
	e.WriteInt32(c.DY)
	e.WriteInt32(c.Flags)
}

func (c PropertySetCommand) encodePayload(e *Encoder) {
	e.WriteUint32(c.Component)
	e.WriteUint32(c.Property)
	e.WriteInt32(int32(len(c.Value)))
	e.WriteBytes(c.Value)
}

func (c MoveCameraCommand) encodePayload(e *Encoder) {
	e.WriteFloat32(c.Forward)
	e.WriteFloat32(c.Right)
	e.WriteFloat32(c.Speed)
}

func (c GetPropertiesCommand) encodePayload(e *Encoder) {
	e.WriteUint32(c.Key)
}

func (LookAtSelectedCommand) encodePayload(*Encoder) {}

func (c AddComponentCommand) encodePayload(e *Encoder) {
	e.WriteUint32(c.Kind)
}

func (ToggleGameModeCommand) encodePayload(*Encoder) {}

func (AddEntityCommand) encodePayload(*Encoder) {}

func (c LoadCommand) encodePayload(e *Encoder) {
	e.WriteCString(c.Path)
}

func (c SaveCommand) encodePayload(e *Encoder) {
	e.WriteCString(c.Path)
}

func (NewUniverseCommand) encodePayload(*Encoder) {}

func (c SetWireframeCommand) encodePayload(e *Encoder) {
	e.WriteBool(c.Enabled)
}

func (c SetAnimableTimeCommand) encodePayload(e *Encoder) {
	e.WriteInt32(c.Time)
}

func (PlayPauseAnimableCommand) encodePayload(*Encoder) {}

func (c SetPositionCommand) encodePayload(e *Encoder) {
	e.WriteInt32(c.Entity)
	e.WriteFloat32(c.X)
	e.WriteFloat32(c.Y)
	e.WriteFloat32(c.Z)
}

func (UnhandledCommand) encodePayload(*Encoder) {}

// EncodeCommand encodes a command to bytes: tag followed by the payload
// fields in wire order. A command with no arguments encodes to exactly
// 4 bytes. The returned buffer is freshly allocated and owned by the
// caller until handed to the transport.
func EncodeCommand(c Command) []byte {
	e := NewEncoder()
	EncodeCommandTo(e, c)
	return e.Bytes()
}

// EncodeCommandTo encodes a command using the provided encoder.
func EncodeCommandTo(e *Encoder, c Command) {
	e.WriteUint32(uint32(c.Type()))
	c.encodePayload(e)
}

// DecodeCommand decodes a command from bytes. This is the engine-side
// counterpart of EncodeCommand. A buffer shorter than the tag's fixed
// fields is ErrTruncated; an unknown tag decodes to UnhandledCommand.
// Trailing bytes beyond a tag's fixed fields are ignored.
func DecodeCommand(data []byte) (Command, error) {
	d := NewDecoder(data)
	tag, err := d.ReadUint32()
	if err != nil {
		return nil, err
	}

	switch CommandType(tag) {
	case CmdPointerDown, CmdPointerUp:
		var c PointerDownCommand
		if c.X, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.Y, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.Button, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if CommandType(tag) == CmdPointerUp {
			return PointerUpCommand(c), nil
		}
		return c, nil

	case CmdPointerMove:
		var c PointerMoveCommand
		if c.X, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.Y, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.DX, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.DY, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.Flags, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		return c, nil

	case CmdPropertySet:
		var c PropertySetCommand
		if c.Component, err = d.ReadUint32(); err != nil {
			return nil, err
		}
		if c.Property, err = d.ReadUint32(); err != nil {
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
		if c.Value, err = d.ReadBytes(int(length)); err != nil {
			return nil, err
		}
		return c, nil

	case CmdMoveCamera:
		var c MoveCameraCommand
		if c.Forward, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.Right, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.Speed, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		return c, nil

	case CmdGetProperties:
		var c GetPropertiesCommand
		if c.Key, err = d.ReadUint32(); err != nil {
			return nil, err
		}
		return c, nil

	case CmdLookAtSelected:
		return LookAtSelectedCommand{}, nil

	case CmdAddComponent:
		var c AddComponentCommand
		if c.Kind, err = d.ReadUint32(); err != nil {
			return nil, err
		}
		return c, nil

	case CmdToggleGameMode:
		return ToggleGameModeCommand{}, nil

	case CmdAddEntity:
		return AddEntityCommand{}, nil

	case CmdLoad:
		path, err := d.ReadCString()
		if err != nil {
			return nil, err
		}
		return LoadCommand{Path: path}, nil

	case CmdSave:
		path, err := d.ReadCString()
		if err != nil {
			return nil, err
		}
		return SaveCommand{Path: path}, nil

	case CmdNewUniverse:
		return NewUniverseCommand{}, nil

	case CmdSetWireframe:
		flag, err := d.ReadInt32()
		if err != nil {
			return nil, err
		}
		return SetWireframeCommand{Enabled: flag != 0}, nil

	case CmdSetAnimableTime:
		t, err := d.ReadInt32()
		if err != nil {
			return nil, err
		}
		return SetAnimableTimeCommand{Time: t}, nil

	case CmdPlayPauseAnimable:
		return PlayPauseAnimableCommand{}, nil

	case CmdSetPosition:
		var c SetPositionCommand
		if c.Entity, err = d.ReadInt32(); err != nil {
			return nil, err
		}
		if c.X, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.Y, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		if c.Z, err = d.ReadFloat32(); err != nil {
			return nil, err
		}
		return c, nil

	default:
		return UnhandledCommand{Tag: tag}, nil
	}
}
