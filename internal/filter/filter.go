// Package filter narrows and orders slot lists according to the user's criteria.
// Every function here is pure: inputs are never modified.
package filter

import (
	"slices"
	"strings"

	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/slot"
)

type predicate func(slot.Slot) bool

// Apply returns the slots matching every criterion, in the requested order.
// The result is a new slice; ties keep their input order.
func Apply(slots []slot.Slot, c Criteria) []slot.Slot {
	preds := c.predicates()
	out := make([]slot.Slot, 0, len(slots))
next:
	for _, s := range slots {
		for _, p := range preds {
			if !p(s) {
				continue next
			}
		}
		out = append(out, s)
	}
	sortSlots(out, c.Sort)
	return out
}

func (c Criteria) predicates() []predicate {
	var preds []predicate
	if q := normalize(c.Query); q != "" && !c.namesWholeCity(q) {
		preds = append(preds, matchesQuery(q))
	}
	if c.Skill != "" {
		preds = append(preds, hasSkill([]skill.Category{c.Skill}))
	}
	if len(c.Skills) > 0 {
		preds = append(preds, hasSkill(c.Skills))
	}
	if len(c.Districts) > 0 {
		preds = append(preds, func(s slot.Slot) bool { return slices.Contains(c.Districts, s.District) })
	}
	preds = append(preds, inPriceRange(c.PriceMin, c.PriceMax))
	if c.Date != "" {
		preds = append(preds, func(s slot.Slot) bool { return s.Date == "" || s.Date == c.Date })
	}
	if c.TimeFrom != "" {
		preds = append(preds, startsFrom(c.TimeFrom))
	}
	if len(c.Amenities) > 0 {
		preds = append(preds, hasAmenities(c.Amenities))
	}
	return preds
}

func matchesQuery(q string) predicate {
	return func(s slot.Slot) bool {
		return strings.Contains(strings.ToLower(s.CourtName), q) ||
			strings.Contains(strings.ToLower(s.District), q) ||
			strings.Contains(strings.ToLower(s.Location), q)
	}
}

// hasSkill passes a slot when one of its labels falls in a wanted category, or
// when it carries the universal label.
func hasSkill(wanted []skill.Category) predicate {
	return func(s slot.Slot) bool {
		for _, label := range labels(s) {
			category := skill.BroadCategory(label)
			if category == skill.CategoryAny || slices.Contains(wanted, category) {
				return true
			}
		}
		return false
	}
}

// inPriceRange never excludes a zero price: it means the price is given on request.
func inPriceRange(lo int64, hi *int64) predicate {
	return func(s slot.Slot) bool {
		if s.Price == 0 {
			return true
		}
		return s.Price >= lo && (hi == nil || s.Price <= *hi)
	}
}

// startsFrom compares zero-padded HH:mm strings lexicographically. Slots with no
// known start time pass.
func startsFrom(floor string) predicate {
	return func(s slot.Slot) bool {
		if s.StartTime == "" || s.StartTime == slot.Unresolved {
			return true
		}
		return s.StartTime >= floor
	}
}

func hasAmenities(required []string) predicate {
	return func(s slot.Slot) bool {
		for _, a := range required {
			if !slices.Contains(s.Amenities, a) {
				return false
			}
		}
		return true
	}
}

func labels(s slot.Slot) []string {
	if len(s.SkillLevels) > 0 {
		return s.SkillLevels
	}
	return []string{string(s.SkillLevel)}
}

func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
