package cofd

import (
	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
)

// clarityTriggerWindow is how many rightmost boxes count as the danger zone:
// damage landing there grants a Clarity condition.
const clarityTriggerWindow = 3

// ClarityConditionActive reports whether any damage sits in the rightmost
// three boxes of the clarity track.
func ClarityConditionActive(t track.Track) bool {
	boxes := t.Boxes()
	start := len(boxes) - clarityTriggerWindow
	if start < 0 {
		start = 0
	}
	for _, box := range boxes[start:] {
		if box != track.None {
			return true
		}
	}
	return false
}

// PerceptionModifier returns the dice-pool modifier perception rolls take
// from the character's remaining undamaged Clarity. A full track leaves the
// character at the comatose threshold with the worst penalty.
func PerceptionModifier(t track.Track) int {
	undamaged := t.CurrentValue()
	switch {
	case undamaged >= 5:
		return 2
	case undamaged >= 3:
		return -1
	default:
		return -2
	}
}

// ComatoseRisk reports whether the clarity track is completely filled.
func ComatoseRisk(t track.Track) bool {
	return t.Capacity() > 0 && t.IsFull()
}
