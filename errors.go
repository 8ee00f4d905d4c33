package gameevents

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch - a value's kind disagrees with the declared kind
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrArgumentCount - a broadcast supplied too few or too many values
	ErrArgumentCount = errors.New("argument count mismatch")
	// ErrSlotNotFound - a read by name matched no slot
	ErrSlotNotFound = errors.New("slot not found")
	// ErrDuplicateName - two definitions share a name
	ErrDuplicateName = errors.New("duplicate event name")
	// ErrUnknownKind - a kind name or value is not one of the declared kinds
	ErrUnknownKind = errors.New("unknown argument kind")
	// ErrNotDynamic - a keyed subscriber operation on a non-dynamic event
	ErrNotDynamic = errors.New("event is not dynamic")
	// ErrDuplicateSubscriber - a keyed subscriber ID is already registered
	ErrDuplicateSubscriber = errors.New("duplicate subscriber id")
)

// BroadcastError wraps a failure that aborted a broadcast, recording
// which event and, for mismatches, which slot it happened on.
type BroadcastError struct {
	Event string
	Slot  string
	err   error
}

func (e *BroadcastError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("broadcast of event %q: %v on argument %q", e.Event, e.err, e.Slot)
	}
	return fmt.Sprintf("broadcast of event %q: %v", e.Event, e.err)
}

func (e *BroadcastError) Unwrap() error { return e.err }

// SlotError wraps a failed named read on an event's slot.
type SlotError struct {
	Event string
	Slot  string
	err   error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("event %q argument %q: %v", e.Event, e.Slot, e.err)
}

func (e *SlotError) Unwrap() error { return e.err }
