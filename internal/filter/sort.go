package filter

import (
	"sort"

	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/slot"
)

// sortSlots orders slots in place. Distance ordering is not available yet, so
// SortNearest and unknown values keep the input order.
func sortSlots(slots []slot.Slot, by Sort) {
	switch by {
	case SortPrice:
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].Price < slots[j].Price })
	case SortSkill:
		sort.SliceStable(slots, func(i, j int) bool {
			return skill.Rank(slots[i].SkillLevel) > skill.Rank(slots[j].SkillLevel)
		})
	case SortRating:
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].Rating > slots[j].Rating })
	}
}
