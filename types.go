package gameevents

// Each Kind maps to exactly one Go static type, so a broadcast value's
// kind is determined by a type switch. Plain int, float64, bool and
// string cover the primitive kinds; the types below carry the rest.

// Name is a short identifier argument, distinct from String.
type Name string

// Vec3 is a three-component vector argument.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a two-component vector argument.
type Vec2 struct {
	X, Y float64
}

// Rotation is an orientation argument in degrees.
type Rotation struct {
	Pitch, Yaw, Roll float64
}

// ObjectRef carries an opaque reference to a host-owned object. The
// registry never inspects or retains Obj beyond the slot it fills.
type ObjectRef struct {
	Obj any
}

// ActorRef carries an opaque reference to a host-owned actor. Kept
// separate from ObjectRef so the two never satisfy each other's slots.
type ActorRef struct {
	Actor any
}

// Enum8 is a small enumeration argument, distinct from Int.
type Enum8 uint8

// StructRef carries a caller-defined payload struct, usually a pointer.
type StructRef struct {
	Struct any
}

// kindOf - map a value's static type to its kind.
// float32 widens to KindFloat; everything else must match exactly.
func kindOf(v any) (Kind, any, bool) {
	switch t := v.(type) {
	case int:
		return KindInt, t, true
	case float64:
		return KindFloat, t, true
	case float32:
		return KindFloat, float64(t), true
	case bool:
		return KindBool, t, true
	case Name:
		return KindName, t, true
	case string:
		return KindString, t, true
	case Vec3:
		return KindVec3, t, true
	case Vec2:
		return KindVec2, t, true
	case Rotation:
		return KindRotation, t, true
	case ObjectRef:
		return KindObject, t, true
	case ActorRef:
		return KindActor, t, true
	case Enum8:
		return KindEnum8, t, true
	case StructRef:
		return KindStruct, t, true
	}
	return 0, nil, false
}
