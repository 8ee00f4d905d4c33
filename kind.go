package gameevents

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the type of an event argument. The set is closed:
// every slot declares exactly one Kind and every broadcast value must
// map to one.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindName
	KindString
	KindVec3
	KindVec2
	KindRotation
	KindObject
	KindActor
	KindEnum8
	KindStruct
)

var kindNames = [...]string{
	KindInt:      "Int",
	KindFloat:    "Float",
	KindBool:     "Bool",
	KindName:     "Name",
	KindString:   "String",
	KindVec3:     "Vector3",
	KindVec2:     "Vector2",
	KindRotation: "Rotation",
	KindObject:   "ObjectRef",
	KindActor:    "ActorRef",
	KindEnum8:    "Enum8",
	KindStruct:   "StructRef",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid - report whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind - resolve a kind from its string name
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalJSON encodes the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// defaultValue - the initial value stored in a slot of kind k.
// Slots are never kind-less: they carry this value until the first broadcast.
func defaultValue(k Kind) any {
	switch k {
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	case KindBool:
		return false
	case KindName:
		return Name("")
	case KindString:
		return ""
	case KindVec3:
		return Vec3{}
	case KindVec2:
		return Vec2{}
	case KindRotation:
		return Rotation{}
	case KindObject:
		return ObjectRef{}
	case KindActor:
		return ActorRef{}
	case KindEnum8:
		return Enum8(0)
	case KindStruct:
		return StructRef{}
	}
	return nil
}
