package season

import (
	"fmt"
	"sort"
	"strings"
)

// StructureError reports malformed per-division season settings. It is
// returned by Resolve when the settings cannot yield a coherent structure.
type StructureError struct {
	// Division is the division whose settings are malformed.
	Division string

	// Field is the offending settings field.
	Field string

	// Value is the offending value.
	Value int

	// Reason describes why the value is rejected.
	Reason string
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid season settings for division %s: %s=%d: %s",
		e.Division, e.Field, e.Value, e.Reason)
}

// SyncError reports divisions that disagree on the current phase or week.
// Divisions maps every division name to a human-readable phase/week
// description, so an operator sees the full picture rather than the first
// mismatch found.
type SyncError struct {
	// Divisions maps division name to its phase/week description.
	Divisions map[string]string
}

// Error implements the error interface. Divisions are listed in name order
// so the message is stable across runs.
func (e *SyncError) Error() string {
	names := make([]string, 0, len(e.Divisions))
	for name := range e.Divisions {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s at %s", name, e.Divisions[name]))
	}
	return "divisions out of lockstep: " + strings.Join(parts, "; ")
}
