package track

// The persistence layer stores a track as a sparse {position: severity}
// mapping with 1-based positions, mirroring how the character record store
// keeps attribute dictionaries. Load and Dump convert between that shape and
// the dense box row.

// Load builds a track of the given mode and capacity from a sparse mapping.
// Positions outside 1..capacity are dropped; their damage is considered lost
// to an earlier capacity reduction. Severities must be valid for the mode.
func Load(mode Mode, capacity int, sparse map[int]Severity) (Track, error) {
	t, err := New(mode, capacity)
	if err != nil {
		return Track{}, err
	}
	for pos, severity := range sparse {
		if pos < 1 || pos > capacity {
			continue
		}
		if !mode.Valid(severity) {
			return Track{}, ErrInvalidSeverity
		}
		t.boxes[pos-1] = severity
	}
	return t, nil
}

// Dump flattens a track into the sparse 1-based mapping. Empty boxes are
// omitted; an undamaged track dumps to an empty map.
func Dump(t Track) map[int]Severity {
	sparse := make(map[int]Severity)
	for i, box := range t.boxes {
		if box != None {
			sparse[i+1] = box
		}
	}
	return sparse
}
