package gameevents

import (
	"encoding/json"
	"fmt"
	"io"
)

// ArgDef declares one argument of an event definition: its name and
// the kind every broadcast value for it must carry.
type ArgDef struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Definition is one row of the external definition source. Rows are
// consumed once by Registry.Build; the registry keeps no reference to
// them afterwards.
type Definition struct {
	Name    string   `json:"name"`
	Dynamic bool     `json:"dynamic,omitempty"`
	Args    []ArgDef `json:"args,omitempty"`
}

// ParseDefinitions decodes a JSON array of definitions, preserving
// declaration order.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse event definitions: %w", err)
	}
	return defs, nil
}

// LoadDefinitions reads and decodes a JSON definition source.
func LoadDefinitions(r io.Reader) ([]Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read event definitions: %w", err)
	}
	return ParseDefinitions(data)
}
