// Package track implements the ordered-severity damage track used for both
// the physical Health track and the Clarity track. A track is a fixed-length
// row of boxes; each box is either empty or marked with a damage severity.
// More severe damage always occupies more leftward boxes: applying damage
// inserts with a rightward push, healing clears from the right and re-packs.
package track

import (
	apperrors "github.com/soma-satoro/pyreach/internal/platform/errors"
)

var (
	// ErrInvalidAmount indicates a damage or heal amount below 1.
	ErrInvalidAmount = apperrors.New(apperrors.CodeTrackInvalidAmount, "amount must be at least 1")
	// ErrInvalidSeverity indicates a severity outside the track's mode.
	ErrInvalidSeverity = apperrors.New(apperrors.CodeTrackInvalidSeverity, "severity is not valid for this track mode")
	// ErrInvalidCapacity indicates a negative track capacity.
	ErrInvalidCapacity = apperrors.New(apperrors.CodeTrackInvalidCapacity, "capacity must be non-negative")
)

// Severity is an ordered damage rank within a track mode. The zero value
// marks an empty box. Higher values are more severe.
type Severity int

// None marks an undamaged box.
const None Severity = 0

// Health-mode severities, least to most severe.
const (
	Bashing Severity = 1 + iota
	Lethal
	Aggravated
)

// Clarity-mode severities, least to most severe.
const (
	Mild   Severity = 1
	Severe Severity = 2
)

// Mode selects the severity ladder a track enforces.
type Mode int

const (
	// ModeHealth is the three-tier physical track: bashing < lethal < aggravated.
	ModeHealth Mode = iota
	// ModeClarity is the two-tier sanity track: mild < severe.
	ModeClarity
)

// severityLabels maps each mode's severities to their wire/storage labels,
// indexed by rank starting at 1.
var severityLabels = map[Mode][]string{
	ModeHealth:  {"bashing", "lethal", "aggravated"},
	ModeClarity: {"mild", "severe"},
}

// String returns the storage identifier for the mode.
func (m Mode) String() string {
	switch m {
	case ModeClarity:
		return "clarity"
	default:
		return "health"
	}
}

// Tiers returns the number of severity tiers in the mode.
func (m Mode) Tiers() int {
	return len(severityLabels[m])
}

// Valid reports whether s is a recognized severity for the mode.
// None is not a valid damage severity.
func (m Mode) Valid(s Severity) bool {
	return s >= 1 && int(s) <= m.Tiers()
}

// Label returns the severity's storage label, or "" for None or unknown ranks.
func (m Mode) Label(s Severity) string {
	if !m.Valid(s) {
		return ""
	}
	return severityLabels[m][s-1]
}

// ParseSeverity resolves a severity label for the mode. Single-letter
// abbreviations are accepted the way the health command accepts them
// (b/l/a, m/s).
func (m Mode) ParseSeverity(label string) (Severity, error) {
	for rank, name := range severityLabels[m] {
		if label == name || (len(label) == 1 && label == name[:1]) {
			return Severity(rank + 1), nil
		}
	}
	return None, apperrors.WithMetadata(
		apperrors.CodeTrackInvalidSeverity,
		"unknown severity label",
		map[string]string{"Severity": label},
	)
}

// Track is a fixed-length ordered damage record. The zero value is an empty
// zero-capacity health track; use New or Load to build one with capacity.
type Track struct {
	mode  Mode
	boxes []Severity
}

// New creates an empty track of the given mode and capacity.
func New(mode Mode, capacity int) (Track, error) {
	if capacity < 0 {
		return Track{}, ErrInvalidCapacity
	}
	return Track{mode: mode, boxes: make([]Severity, capacity)}, nil
}

// Mode returns the track's severity mode.
func (t Track) Mode() Mode {
	return t.mode
}

// Capacity returns the fixed number of boxes.
func (t Track) Capacity() int {
	return len(t.boxes)
}

// Boxes returns a copy of the box row, leftmost first.
func (t Track) Boxes() []Severity {
	out := make([]Severity, len(t.boxes))
	copy(out, t.boxes)
	return out
}

// IsFull reports whether every box holds damage.
func (t Track) IsFull() bool {
	for _, box := range t.boxes {
		if box == None {
			return false
		}
	}
	return true
}

// Counts returns the number of marked boxes per severity.
func (t Track) Counts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, box := range t.boxes {
		if box != None {
			counts[box]++
		}
	}
	return counts
}

// Marked returns the total number of non-empty boxes.
func (t Track) Marked() int {
	marked := 0
	for _, box := range t.boxes {
		if box != None {
			marked++
		}
	}
	return marked
}

// CurrentValue returns the undamaged remainder: capacity minus marked boxes.
func (t Track) CurrentValue() int {
	return len(t.boxes) - t.Marked()
}

// ApplyDamage applies up to amount points of the given severity one box at a
// time, stopping early once the track has no room for that severity. It
// returns how many points were actually applied; a full track is a short
// count, never an error.
//
// Each point lands in the leftmost box that is empty or holds strictly less
// severe damage, pushing the displaced damage rightward in its original
// order. For the least severe tier that reduces to "leftmost empty box"; for
// the most severe tier it reduces to "leftmost box not already at that tier".
func (t *Track) ApplyDamage(amount int, severity Severity) (int, error) {
	if amount < 1 {
		return 0, ErrInvalidAmount
	}
	if !t.mode.Valid(severity) {
		return 0, ErrInvalidSeverity
	}

	applied := 0
	for ; applied < amount; applied++ {
		pos := t.insertPos(severity)
		if pos < 0 {
			break
		}
		if !t.insertWithPush(pos, severity) {
			break
		}
	}
	return applied, nil
}

// insertPos finds the leftmost box where the severity may land, or -1 when
// the track is full for that severity.
func (t *Track) insertPos(severity Severity) int {
	for i, box := range t.boxes {
		if box == None || box < severity {
			return i
		}
	}
	return -1
}

// insertWithPush writes severity at pos and re-places the displaced damage,
// in its original left-to-right order, into the empty boxes to the right.
// A displaced value with no empty box remaining is dropped silently and the
// insert reports false so the caller stops treating the track as open.
func (t *Track) insertWithPush(pos int, severity Severity) bool {
	var displaced []Severity
	for i := pos; i < len(t.boxes); i++ {
		if t.boxes[i] != None {
			displaced = append(displaced, t.boxes[i])
		}
		t.boxes[i] = None
	}

	t.boxes[pos] = severity

	next := pos + 1
	for _, old := range displaced {
		placed := false
		for i := next; i < len(t.boxes); i++ {
			if t.boxes[i] == None {
				t.boxes[i] = old
				placed = true
				next = i + 1
				break
			}
		}
		if !placed {
			// Overflow: the box row was already carrying as much as it can.
			return false
		}
	}
	return true
}

// HealDamage clears up to amount boxes holding exactly the given severity,
// scanning from the rightmost box leftward, then compacts the track so the
// remaining damage is packed against the left edge. Returns how many boxes
// were healed.
func (t *Track) HealDamage(amount int, severity Severity) (int, error) {
	if amount < 1 {
		return 0, ErrInvalidAmount
	}
	if !t.mode.Valid(severity) {
		return 0, ErrInvalidSeverity
	}

	healed := 0
	for i := len(t.boxes) - 1; i >= 0 && healed < amount; i-- {
		if t.boxes[i] == severity {
			t.boxes[i] = None
			healed++
		}
	}

	t.compact()
	return healed, nil
}

// Clear empties every box.
func (t *Track) Clear() {
	for i := range t.boxes {
		t.boxes[i] = None
	}
}

// SetCapacity resizes the track. Growth appends empty boxes; shrinking
// discards the rightmost boxes, losing whatever damage they held.
func (t *Track) SetCapacity(capacity int) error {
	if capacity < 0 {
		return ErrInvalidCapacity
	}
	if capacity <= len(t.boxes) {
		t.boxes = t.boxes[:capacity]
		return nil
	}
	grown := make([]Severity, capacity)
	copy(grown, t.boxes)
	t.boxes = grown
	return nil
}

// compact re-packs all damage leftward in its current order, leaving the
// trailing boxes empty. Display logic assumes no gaps after a heal.
func (t *Track) compact() {
	kept := t.boxes[:0]
	empty := 0
	for _, box := range t.boxes {
		if box != None {
			kept = append(kept, box)
		} else {
			empty++
		}
	}
	for i := 0; i < empty; i++ {
		kept = append(kept, None)
	}
	t.boxes = kept
}
