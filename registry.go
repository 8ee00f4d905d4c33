package gameevents

import (
	"fmt"

	"github.com/lockp111/go-cmap"
)

// Registry owns a name-keyed collection of events, built once from an
// ordered definition sequence. Lookups tolerate concurrent readers;
// Build and Clear must not run concurrently with any other call.
type Registry struct {
	events cmap.ConcurrentMap[string, *Event]
}

// NewRegistry - return a new empty Registry
func NewRegistry() *Registry {
	return &Registry{
		events: cmap.New[*Event](),
	}
}

// Build constructs one event per definition, slots in declared order
// with per-kind default values, and installs the result. The build is
// all-or-nothing: on a duplicate name or an unknown kind the registry
// keeps whatever it held before the call. A successful Build replaces
// any previously built events.
func (r *Registry) Build(defs []Definition) error {
	staged := cmap.New[*Event]()
	for _, def := range defs {
		for _, a := range def.Args {
			if !a.Kind.Valid() {
				return fmt.Errorf("event %q argument %q: %w: %d", def.Name, a.Name, ErrUnknownKind, uint8(a.Kind))
			}
		}
		if _, exists := staged.Get(def.Name); exists {
			return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		ev := newEvent(def.Name, def.Dynamic, def.Args)
		staged.Upsert(def.Name, func(_ *Event, _ bool) *Event {
			return ev
		})
	}
	r.events = staged
	return nil
}

// Get returns the named event. An unknown name is a caller bug, not a
// runtime condition: definitions are authored up front and callers are
// expected to only request names they declared, so Get panics instead
// of returning an error. Use GetDynamic for a tolerant lookup.
func (r *Registry) Get(name string) *Event {
	ev, ok := r.events.Get(name)
	if !ok {
		panic(fmt.Sprintf("gameevents: unknown event %q", name))
	}
	return ev
}

// GetDynamic - look up an event declared dynamic, reporting whether one
// was found. A name bound to a non-dynamic event reports false, since
// the caller is asking for the removable-subscriber surface.
func (r *Registry) GetDynamic(name string) (*Event, bool) {
	ev, ok := r.events.Get(name)
	if !ok || !ev.dynamic {
		return nil, false
	}
	return ev, true
}

// Clear drops every owned event. Event handles obtained before Clear
// must not be used afterwards.
func (r *Registry) Clear() {
	r.events = cmap.New[*Event]()
}

// Len - return the number of registered events
func (r *Registry) Len() int {
	return r.events.Count()
}

// SubscriberCount - return the number of subscribers for an event
func (r *Registry) SubscriberCount(name string) int {
	ev, ok := r.events.Get(name)
	if !ok {
		return 0
	}
	return ev.SubscriberCount()
}

// TotalSubscribers - return the total number of subscribers
func (r *Registry) TotalSubscribers() int {
	total := 0
	r.events.IterCb(func(_ string, ev *Event) {
		total += ev.SubscriberCount()
	})
	return total
}
