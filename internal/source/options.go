package source

import (
	"fmt"
	"slices"

	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/slot"
)

// PriceRange is the inclusive per-player price window offered by the price slider.
type PriceRange struct {
	Min int64 `json:"min" msgpack:"min"`
	Max int64 `json:"max" msgpack:"max"`
}

// DefaultPriceRange is the slider's initial and cleared position.
var DefaultPriceRange = PriceRange{Min: 0, Max: 500000}

// FilterOptions lists the choices the filter controls offer.
type FilterOptions struct {
	SkillLevels []skill.Category `json:"skillLevels" msgpack:"skillLevels"`
	Amenities   []string         `json:"amenities" msgpack:"amenities"`
	Districts   []string         `json:"districts" msgpack:"districts"`
	PriceRange  PriceRange       `json:"priceRange" msgpack:"priceRange"`
	StartTimes  []string         `json:"startTimes" msgpack:"startTimes"`
}

var (
	amenities = []string{"Gửi xe", "Nước uống", "Thay đồ", "Máy lạnh", "Thảm chuẩn", "Phòng tắm", "Canteen"}
	districts = []string{"Đống Đa", "Ba Đình", "Hai Bà Trưng", "Tây Hồ", "Cầu Giấy", "Thanh Xuân", "Long Biên"}
)

// Options returns the filter choices. Districts seen in slots are appended after
// the fixed ones, in first-seen order and without duplicates.
func Options(slots []slot.Slot) FilterOptions {
	ds := slices.Clone(districts)
	for _, s := range slots {
		if s.District != "" && !slices.Contains(ds, s.District) {
			ds = append(ds, s.District)
		}
	}
	return FilterOptions{
		SkillLevels: slices.Clone(skill.Categories),
		Amenities:   slices.Clone(amenities),
		Districts:   ds,
		PriceRange:  DefaultPriceRange,
		StartTimes:  StartTimes(),
	}
}

// StartTimes returns the "from" choices of the time picker: 05:00 to 22:00 in
// half-hour steps.
func StartTimes() []string {
	var out []string
	for m := 5 * 60; m <= 22*60; m += 30 {
		out = append(out, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return out
}
