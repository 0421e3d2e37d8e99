// Package cofd layers Chronicles of Darkness table rules on top of the raw
// damage track: wound penalties, incapacitation, Clarity conditions, and the
// box-glyph display both tracks share.
package cofd

import (
	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
)

// SystemID identifies the Chronicles of Darkness ruleset for system modules.
const SystemID = "cofd"

// WoundPenalty returns the dice penalty imposed by damage in the last three
// health boxes: -1, -2, -3 as the marked damage closes on the track's end.
// An empty or lightly damaged track imposes no penalty.
func WoundPenalty(t track.Track) int {
	capacity := t.Capacity()
	marked := t.Marked()
	if capacity == 0 || marked == 0 {
		return 0
	}
	switch {
	case marked >= capacity:
		return -3
	case marked == capacity-1:
		return -2
	case marked == capacity-2:
		return -1
	default:
		return 0
	}
}

// Incapacitated reports whether the health track is completely filled.
func Incapacitated(t track.Track) bool {
	return t.Capacity() > 0 && t.IsFull()
}
