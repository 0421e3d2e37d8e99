package track

import (
	"errors"
	"testing"
)

func TestLoadDumpRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		cap    int
		sparse map[int]Severity
	}{
		{"empty", ModeHealth, 5, map[int]Severity{}},
		{"nil map", ModeHealth, 5, nil},
		{"partial", ModeHealth, 5, map[int]Severity{1: Aggravated, 2: Lethal, 3: Bashing}},
		{"full", ModeHealth, 3, map[int]Severity{1: Lethal, 2: Lethal, 3: Bashing}},
		{"clarity", ModeClarity, 7, map[int]Severity{1: Severe, 2: Mild}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Load(tt.mode, tt.cap, tt.sparse)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if tr.Capacity() != tt.cap {
				t.Fatalf("capacity = %d, want %d", tr.Capacity(), tt.cap)
			}

			dumped := Dump(tr)
			if len(dumped) != len(tt.sparse) {
				t.Fatalf("dump = %v, want %v", dumped, tt.sparse)
			}
			for pos, severity := range tt.sparse {
				if dumped[pos] != severity {
					t.Fatalf("dump[%d] = %v, want %v", pos, dumped[pos], severity)
				}
			}

			reloaded, err := Load(tt.mode, tt.cap, dumped)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			assertBoxes(t, reloaded, tr.Boxes()...)
		})
	}
}

func TestLoadDropsOutOfRangePositions(t *testing.T) {
	tr, err := Load(ModeHealth, 3, map[int]Severity{
		0: Bashing,
		1: Lethal,
		4: Bashing,
		9: Aggravated,
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertBoxes(t, tr, Lethal, None, None)
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load(ModeHealth, -1, nil); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("error = %v, want ErrInvalidCapacity", err)
	}
	if _, err := Load(ModeClarity, 3, map[int]Severity{1: Aggravated}); !errors.Is(err, ErrInvalidSeverity) {
		t.Fatalf("error = %v, want ErrInvalidSeverity", err)
	}
	if _, err := Load(ModeHealth, 3, map[int]Severity{1: None}); !errors.Is(err, ErrInvalidSeverity) {
		t.Fatalf("error = %v, want ErrInvalidSeverity", err)
	}
}

func TestDumpAfterMutation(t *testing.T) {
	tr, err := New(ModeHealth, 5)
	if err != nil {
		t.Fatalf("new track: %v", err)
	}
	if _, err := tr.ApplyDamage(2, Lethal); err != nil {
		t.Fatalf("apply damage: %v", err)
	}
	if _, err := tr.ApplyDamage(1, Bashing); err != nil {
		t.Fatalf("apply damage: %v", err)
	}

	sparse := Dump(tr)
	want := map[int]Severity{1: Lethal, 2: Lethal, 3: Bashing}
	if len(sparse) != len(want) {
		t.Fatalf("dump = %v, want %v", sparse, want)
	}
	for pos, severity := range want {
		if sparse[pos] != severity {
			t.Fatalf("dump[%d] = %v, want %v", pos, sparse[pos], severity)
		}
	}
}
