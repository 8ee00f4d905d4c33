package gameevents

// Subscriber is invoked with the event itself during fan-out, so it can
// read any argument back out by name.
type Subscriber func(*Event)

// subscriber - one registration; id is empty for anonymous registrations
type subscriber struct {
	id string
	fn Subscriber
}

// slot - one declared argument; value always holds a value of the
// declared kind, starting from the kind's default
type slot struct {
	name  string
	kind  Kind
	value any
}

// aborted - sentinel fill counter after a mid-broadcast mismatch
const aborted = -1

// Event is a named multicast event with a fixed, ordered argument
// schema. Slot order is set at build time and defines positional
// argument order for every broadcast.
//
// Events are not safe for concurrent use and Broadcast is not
// reentrant: a subscriber must not broadcast the event it is currently
// being invoked from.
type Event struct {
	name    string
	dynamic bool
	slots   []slot
	subs    []subscriber
	fill    int
}

func newEvent(name string, dynamic bool, args []ArgDef) *Event {
	e := &Event{
		name:    name,
		dynamic: dynamic,
		slots:   make([]slot, 0, len(args)),
	}
	for _, a := range args {
		e.slots = append(e.slots, slot{
			name:  a.Name,
			kind:  a.Kind,
			value: defaultValue(a.Kind),
		})
	}
	return e
}

// Name - the event's registry name
func (e *Event) Name() string { return e.name }

// IsDynamic - report whether the event was declared dynamic
func (e *Event) IsDynamic() bool { return e.dynamic }

// ArgCount - the number of declared arguments
func (e *Event) ArgCount() int { return len(e.slots) }

// SubscriberCount - the number of registered subscribers
func (e *Event) SubscriberCount() int { return len(e.subs) }

// Subscribe appends fn to the subscriber list. There is no
// de-duplication; registration order is invocation order. Panics on a
// nil subscriber.
func (e *Event) Subscribe(fn Subscriber) {
	if fn == nil {
		panic("gameevents: nil subscriber")
	}
	e.subs = append(e.subs, subscriber{fn: fn})
}

// SubscribeNamed registers a removable subscriber under id. Only events
// declared dynamic expose this surface; ids must be unique within the
// event. Panics on a nil subscriber.
func (e *Event) SubscribeNamed(id string, fn Subscriber) error {
	if fn == nil {
		panic("gameevents: nil subscriber")
	}
	if !e.dynamic {
		return &SlotError{Event: e.name, Slot: id, err: ErrNotDynamic}
	}
	for _, s := range e.subs {
		if s.id != "" && s.id == id {
			return &SlotError{Event: e.name, Slot: id, err: ErrDuplicateSubscriber}
		}
	}
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return nil
}

// Unsubscribe removes the subscriber registered under id, reporting
// whether one was found. Anonymous subscribers cannot be removed.
func (e *Event) Unsubscribe(id string) bool {
	if id == "" {
		return false
	}
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Broadcast fills the event's slots from values in order, then invokes
// every subscriber in registration order with the event itself.
//
// The first value whose kind disagrees with its slot aborts the fill:
// no further slot is touched, no subscriber runs, and the returned
// error names the offending argument. Supplying fewer or more values
// than the schema declares is an argument-count error, again invoking
// nobody. A zero-value call is valid only for an empty schema. After
// any outcome the fill counter is reset and the event stays usable.
func (e *Event) Broadcast(values ...any) error {
	var abortErr *BroadcastError
	for _, v := range values {
		if e.fill == aborted {
			break
		}
		if e.fill == len(e.slots) {
			e.fill = 0
			return &BroadcastError{Event: e.name, err: ErrArgumentCount}
		}
		abortErr = e.setValue(v)
	}

	if e.fill == aborted {
		e.fill = 0
		return abortErr
	}
	if e.fill < len(e.slots) {
		e.fill = 0
		return &BroadcastError{Event: e.name, err: ErrArgumentCount}
	}

	for _, s := range e.subs {
		s.fn(e)
	}
	e.fill = 0
	return nil
}

// setValue - store one positional value into the next unfilled slot,
// or abort the fill on a kind mismatch
func (e *Event) setValue(v any) *BroadcastError {
	s := &e.slots[e.fill]
	k, norm, ok := kindOf(v)
	if !ok || k != s.kind {
		e.fill = aborted
		return &BroadcastError{Event: e.name, Slot: s.name, err: ErrTypeMismatch}
	}
	s.value = norm
	e.fill++
	return nil
}

func (e *Event) slot(name string) *slot {
	for i := range e.slots {
		if e.slots[i].name == name {
			return &e.slots[i]
		}
	}
	return nil
}

// ArgValue constrains the Go types that can pass through an event
// argument, one per Kind.
type ArgValue interface {
	int | float64 | bool | Name | string | Vec3 | Vec2 | Rotation |
		ObjectRef | ActorRef | Enum8 | StructRef
}

// Value reads the named argument of e, checking that the slot's
// declared kind corresponds to T. It never reinterprets: a kind
// disagreement is a TypeMismatch error, not a zero value of the wrong
// meaning.
func Value[T ArgValue](e *Event, name string) (T, error) {
	var zero T
	s := e.slot(name)
	if s == nil {
		return zero, &SlotError{Event: e.name, Slot: name, err: ErrSlotNotFound}
	}
	want, _, _ := kindOf(zero)
	if s.kind != want {
		return zero, &SlotError{Event: e.name, Slot: name, err: ErrTypeMismatch}
	}
	return s.value.(T), nil
}

// Per-kind accessors over Value, one for each argument kind.

// GetInt - read a named Int argument
func (e *Event) GetInt(name string) (int, error) { return Value[int](e, name) }

// GetFloat - read a named Float argument
func (e *Event) GetFloat(name string) (float64, error) { return Value[float64](e, name) }

// GetBool - read a named Bool argument
func (e *Event) GetBool(name string) (bool, error) { return Value[bool](e, name) }

// GetName - read a named Name argument
func (e *Event) GetName(name string) (Name, error) { return Value[Name](e, name) }

// GetString - read a named String argument
func (e *Event) GetString(name string) (string, error) { return Value[string](e, name) }

// GetVec3 - read a named Vector3 argument
func (e *Event) GetVec3(name string) (Vec3, error) { return Value[Vec3](e, name) }

// GetVec2 - read a named Vector2 argument
func (e *Event) GetVec2(name string) (Vec2, error) { return Value[Vec2](e, name) }

// GetRotation - read a named Rotation argument
func (e *Event) GetRotation(name string) (Rotation, error) { return Value[Rotation](e, name) }

// GetObject - read a named ObjectRef argument
func (e *Event) GetObject(name string) (ObjectRef, error) { return Value[ObjectRef](e, name) }

// GetActor - read a named ActorRef argument
func (e *Event) GetActor(name string) (ActorRef, error) { return Value[ActorRef](e, name) }

// GetEnum - read a named Enum8 argument
func (e *Event) GetEnum(name string) (Enum8, error) { return Value[Enum8](e, name) }

// GetStruct - read a named StructRef argument
func (e *Event) GetStruct(name string) (StructRef, error) { return Value[StructRef](e, name) }
