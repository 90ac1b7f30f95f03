package filter

import (
	"errors"
	"slices"

	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/slot"
	"github.com/mauv0809/court-finder/internal/source"
)

// ErrInvalidCriteria is wrapped by every ParseQuery error.
var ErrInvalidCriteria = errors.New("invalid filter criteria")

// Sort selects the single ordering applied after filtering.
type Sort string

const (
	// SortNearest leaves the input order untouched.
	SortNearest Sort = "nearest"
	SortPrice   Sort = "price"
	SortSkill   Sort = "skill"
	SortRating  Sort = "rating"
)

// sortLabels are the sort menu entries as the UI shows them.
var sortLabels = []struct {
	Label string
	Sort  Sort
}{
	{"Gần nhất", SortNearest},
	{"Giá thấp nhất", SortPrice},
	{"Trình độ", SortSkill},
	{"Đánh giá cao", SortRating},
}

// SortOption is one entry of the sort menu.
type SortOption struct {
	Label string `json:"label" msgpack:"label"`
	Value Sort   `json:"value" msgpack:"value"`
}

// SortOptions returns the sort menu in display order.
func SortOptions() []SortOption {
	out := make([]SortOption, len(sortLabels))
	for i, l := range sortLabels {
		out[i] = SortOption{Label: l.Label, Value: l.Sort}
	}
	return out
}

// everywhere are queries asking for every slot.
var everywhere = []string{"tất cả", "all"}

// cityAliases are the unaccented spellings users type for a city.
var cityAliases = map[string][]string{
	"đà nẵng":     {"da nang", "danang"},
	"hà nội":      {"ha noi", "hanoi"},
	"hồ chí minh": {"ho chi minh", "hcm", "sài gòn", "sai gon", "saigon"},
}

// namesWholeCity reports whether the normalized query q names the covered city,
// which filters nothing. An empty city means slot.DefaultDistrict.
func (c Criteria) namesWholeCity(q string) bool {
	city := normalize(c.City)
	if city == "" {
		city = normalize(slot.DefaultDistrict)
	}
	return q == city || slices.Contains(everywhere, q) || slices.Contains(cityAliases[city], q)
}

// Criteria are the user's filter and sort choices. Zero values mean "no filter",
// except PriceMin which is always applied.
type Criteria struct {
	Query string `json:"query,omitempty" msgpack:"query,omitempty"`
	// Skill is the single search bar choice; "" means all levels.
	Skill skill.Category `json:"skill,omitempty" msgpack:"skill,omitempty"`
	// Skills are the sidebar choices.
	Skills    []skill.Category `json:"skills,omitempty" msgpack:"skills,omitempty"`
	Districts []string         `json:"districts,omitempty" msgpack:"districts,omitempty"`
	PriceMin  int64            `json:"priceMin" msgpack:"priceMin"`
	// PriceMax is unbounded when nil.
	PriceMax  *int64   `json:"priceMax,omitempty" msgpack:"priceMax,omitempty"`
	Date      string   `json:"date,omitempty" msgpack:"date,omitempty"`         // YYYY-MM-DD
	TimeFrom  string   `json:"timeFrom,omitempty" msgpack:"timeFrom,omitempty"` // HH:mm
	Amenities []string `json:"amenities,omitempty" msgpack:"amenities,omitempty"`
	Sort      Sort     `json:"sort" msgpack:"sort"`

	// City is the covered city. It comes from configuration, not from the query.
	City string `json:"-" msgpack:"-"`
}

// Default returns the criteria a fresh page starts with.
func Default() Criteria {
	hi := source.DefaultPriceRange.Max
	return Criteria{
		PriceMin: source.DefaultPriceRange.Min,
		PriceMax: &hi,
		Sort:     SortNearest,
	}
}

// Cleared resets the sidebar and skill choices, keeping the query, date, start
// time and sort order.
func (c Criteria) Cleared() Criteria {
	out := Default()
	out.Query = c.Query
	out.Date = c.Date
	out.TimeFrom = c.TimeFrom
	out.Sort = c.Sort
	out.City = c.City
	if out.Sort == "" {
		out.Sort = SortNearest
	}
	return out
}
