package slot

import "strings"

// Usable reports whether s carries enough data to be listed: a real court name and
// at least one recovered side of its time range.
func Usable(s Slot) bool {
	name := strings.TrimSpace(s.CourtName)
	if name == "" || name == UnnamedCourt {
		return false
	}
	return !(s.StartTime == Unresolved && s.EndTime == Unresolved)
}

// QualityGate keeps the usable slots, in order, and reports how many were dropped.
func QualityGate(slots []Slot) ([]Slot, int) {
	kept := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if Usable(s) {
			kept = append(kept, s)
		}
	}
	return kept, len(slots) - len(kept)
}
