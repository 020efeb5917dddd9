package field

import (
	"fmt"
	"strings"
)

// Trigger is the set of user events that validate a field automatically.
// Combine with bitwise OR.
type Trigger uint8

const (
	// TriggerBlur validates when the field loses focus.
	TriggerBlur Trigger = 1 << iota
	// TriggerChange validates on every value change.
	TriggerChange
)

// TriggerNone disables automatic validation; the field is validated only
// through its Handle.
const TriggerNone Trigger = 0

// Has reports whether t includes every event in other.
func (t Trigger) Has(other Trigger) bool {
	return other != 0 && t&other == other
}

func (t Trigger) String() string {
	var parts []string
	if t.Has(TriggerBlur) {
		parts = append(parts, "blur")
	}
	if t.Has(TriggerChange) {
		parts = append(parts, "change")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseTrigger parses event names such as "blur", "change" or "blur,change".
// An empty input yields TriggerNone.
func ParseTrigger(names ...string) (Trigger, error) {
	var t Trigger
	for _, raw := range names {
		for name := range strings.SplitSeq(raw, ",") {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "":
			case "blur":
				t |= TriggerBlur
			case "change":
				t |= TriggerChange
			default:
				return TriggerNone, fmt.Errorf("%w: %q", ErrUnknownTrigger, name)
			}
		}
	}
	return t, nil
}
