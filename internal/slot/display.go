package slot

import (
	"fmt"
	"strconv"
)

// SpotsLabel is the availability badge shown on cards and map popups.
func (s Slot) SpotsLabel() string {
	switch {
	case s.Status == StatusFull:
		return "Full"
	case s.AvailableSpots < 0:
		return "Hỏi thêm"
	case s.AvailableSpots == 0:
		return "Liên hệ"
	default:
		return fmt.Sprintf("%d chỗ", s.AvailableSpots)
	}
}

// PriceLabel renders the per-player price with dot thousand separators, e.g. "60.000đ".
// A zero price means the host quotes it on request.
func (s Slot) PriceLabel() string {
	if s.Price <= 0 {
		return "Liên hệ"
	}
	digits := strconv.FormatInt(s.Price, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return string(out) + "đ"
}
