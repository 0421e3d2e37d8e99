package cofd

import (
	"testing"

	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
)

func healthTrack(t *testing.T, capacity int, damage ...track.Severity) track.Track {
	t.Helper()
	return buildTrack(t, track.ModeHealth, capacity, damage...)
}

func clarityTrack(t *testing.T, capacity int, damage ...track.Severity) track.Track {
	t.Helper()
	return buildTrack(t, track.ModeClarity, capacity, damage...)
}

func buildTrack(t *testing.T, mode track.Mode, capacity int, damage ...track.Severity) track.Track {
	t.Helper()
	sparse := make(map[int]track.Severity)
	for i, severity := range damage {
		if severity != track.None {
			sparse[i+1] = severity
		}
	}
	tr, err := track.Load(mode, capacity, sparse)
	if err != nil {
		t.Fatalf("load track: %v", err)
	}
	return tr
}

func TestWoundPenalty(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		marked   int
		want     int
	}{
		{"empty", 7, 0, 0},
		{"light", 7, 3, 0},
		{"third from last", 7, 5, -1},
		{"second from last", 7, 6, -2},
		{"full", 7, 7, -3},
		{"small track full", 2, 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			damage := make([]track.Severity, tt.marked)
			for i := range damage {
				damage[i] = track.Bashing
			}
			tr := healthTrack(t, tt.capacity, damage...)
			if got := WoundPenalty(tr); got != tt.want {
				t.Fatalf("penalty = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIncapacitated(t *testing.T) {
	if Incapacitated(healthTrack(t, 3, track.Bashing, track.Bashing)) {
		t.Fatal("two of three boxes should not incapacitate")
	}
	if !Incapacitated(healthTrack(t, 3, track.Lethal, track.Bashing, track.Bashing)) {
		t.Fatal("full track should incapacitate")
	}
}

func TestRenderTrack(t *testing.T) {
	tr := healthTrack(t, 5, track.Aggravated, track.Lethal, track.Bashing)
	if got := RenderTrack(tr); got != "[*][X][/][ ][ ]" {
		t.Fatalf("render = %q", got)
	}

	ct := clarityTrack(t, 4, track.Severe, track.Mild)
	if got := RenderTrack(ct); got != "[X][/][ ][ ]" {
		t.Fatalf("clarity render = %q", got)
	}
}

func TestDamageSummary(t *testing.T) {
	tr := healthTrack(t, 6, track.Aggravated, track.Lethal, track.Bashing, track.Bashing)
	if got := DamageSummary(tr); got != "2 bashing, 1 lethal, 1 aggravated" {
		t.Fatalf("summary = %q", got)
	}

	empty := healthTrack(t, 6)
	if got := DamageSummary(empty); got != "No damage taken." {
		t.Fatalf("summary = %q", got)
	}

	ct := clarityTrack(t, 4, track.Severe, track.Severe, track.Mild)
	if got := DamageSummary(ct); got != "1 mild, 2 severe" {
		t.Fatalf("clarity summary = %q", got)
	}
}
