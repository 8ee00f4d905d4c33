package gameevents

var defaultRegistry = NewRegistry()

// Build - build the default registry from definitions
func Build(defs []Definition) error {
	return defaultRegistry.Build(defs)
}

// Get - look up an event in the default registry
func Get(name string) *Event {
	return defaultRegistry.Get(name)
}

// GetDynamic - tolerant dynamic-event lookup in the default registry
func GetDynamic(name string) (*Event, bool) {
	return defaultRegistry.GetDynamic(name)
}

// Clear - drop every event in the default registry
func Clear() {
	defaultRegistry.Clear()
}
