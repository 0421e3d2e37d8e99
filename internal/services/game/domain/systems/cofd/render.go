package cofd

import (
	"fmt"
	"strings"

	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
)

// Box glyphs match the MUD display conventions: empty, light damage,
// heavy damage, aggravated.
const (
	glyphEmpty      = "[ ]"
	glyphLight      = "[/]"
	glyphHeavy      = "[X]"
	glyphAggravated = "[*]"
)

// glyph maps a box value to its display glyph. Health uses all three damage
// glyphs; clarity only the first two.
func glyph(box track.Severity) string {
	switch box {
	case track.None:
		return glyphEmpty
	case 1:
		return glyphLight
	case 2:
		return glyphHeavy
	default:
		return glyphAggravated
	}
}

// RenderTrack draws the track as a row of box glyphs, leftmost first.
func RenderTrack(t track.Track) string {
	var sb strings.Builder
	for _, box := range t.Boxes() {
		sb.WriteString(glyph(box))
	}
	return sb.String()
}

// DamageSummary lists the marked damage per severity, least severe first,
// e.g. "2 bashing, 1 lethal". An undamaged track reports no damage taken.
func DamageSummary(t track.Track) string {
	counts := t.Counts()
	if len(counts) == 0 {
		return "No damage taken."
	}

	mode := t.Mode()
	parts := make([]string, 0, mode.Tiers())
	for rank := 1; rank <= mode.Tiers(); rank++ {
		severity := track.Severity(rank)
		if count := counts[severity]; count > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", count, mode.Label(severity)))
		}
	}
	return strings.Join(parts, ", ")
}
