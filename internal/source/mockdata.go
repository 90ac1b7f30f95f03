package source

import (
	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/slot"
)

// MockSlots returns the built-in demo dataset shown when no real source has data.
// Prices are per player. A fresh slice is returned on every call.
func MockSlots() []slot.Slot {
	out := make([]slot.Slot, len(mockSlots))
	for i, s := range mockSlots {
		s.SkillLevels = append([]string(nil), s.SkillLevels...)
		s.Amenities = append([]string(nil), s.Amenities...)
		out[i] = s
	}
	return out
}

func demo(id, name, location, district, start, end string, price int64, level skill.Category, rating float64, reviews, spots int, amenities []string, host, phone, image string, lat, lng float64) slot.Slot {
	return slot.Slot{
		ID:             id,
		CourtName:      name,
		Location:       location,
		District:       district,
		Date:           "2026-03-02",
		TimeSlot:       start + " - " + end,
		StartTime:      start,
		EndTime:        end,
		Price:          price,
		SkillLevel:     level,
		SkillLevels:    []string{string(level)},
		AvailableSpots: spots,
		Rating:         rating,
		ReviewsCount:   reviews,
		Amenities:      amenities,
		HostName:       host,
		ContactLink:    slot.ContactFromPhone(phone),
		Lat:            lat,
		Lng:            lng,
		Image:          image,
		Status:         slot.StatusOpen,
		Source:         slot.SourceMock,
	}
}

var mockSlots = []slot.Slot{
	demo("1", "Sân Cầu Lông Đại Học Y Hà Nội", "Số 1 Tôn Thất Tùng, Đống Đa, Hà Nội", "Đống Đa",
		"18:00", "20:00", 60000, skill.CategoryIntermediate, 9.1, 342, 4,
		[]string{"Gửi xe", "Nước uống", "Thay đồ", "Canteen"}, "Anh Thắng", "0987654321",
		"https://images.unsplash.com/photo-1626224484214-4051d0c21db2?auto=format&fit=crop&q=80&w=800",
		21.0029, 105.8301),
	demo("2", "Sân Cầu Lông T19", "Số 9 Thành Công, Ba Đình, Hà Nội", "Ba Đình",
		"19:00", "21:00", 75000, skill.CategoryAdvanced, 8.8, 156, 2,
		[]string{"Máy lạnh", "Gửi xe", "Thảm chuẩn"}, "Chị Minh", "0987654322",
		"https://images.unsplash.com/photo-1595252292352-09386ad2792a?auto=format&fit=crop&q=80&w=800",
		21.0198, 105.8153),
	demo("3", "Sân Cầu Lông Bách Khoa", "Số 1 Đại Cồ Việt, Hai Bà Trưng, Hà Nội", "Hai Bà Trưng",
		"17:00", "19:00", 40000, skill.CategoryWeak, 8.5, 520, 6,
		[]string{"Gửi xe", "Nước uống", "Giá rẻ"}, "Anh Huy", "0987654323",
		"https://images.unsplash.com/photo-1521537634581-0dced2fee2ef?auto=format&fit=crop&q=80&w=800",
		21.0056, 105.8434),
	demo("4", "Sân Cầu Lông Ciputra", "Khu đô thị Ciputra, Tây Hồ, Hà Nội", "Tây Hồ",
		"20:00", "22:00", 100000, skill.CategoryAdvanced, 9.5, 112, 2,
		[]string{"Hồ bơi", "Gym", "Máy lạnh", "Phòng tắm"}, "Anh Thắng", "0987654324",
		"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&q=80&w=800",
		21.0768, 105.8042),
	demo("5", "Sân Cầu Lông Nhà Thi Đấu Cầu Giấy", "35 Trần Quý Kiên, Cầu Giấy, Hà Nội", "Cầu Giấy",
		"18:30", "20:30", 70000, skill.CategoryIntermediate, 9.0, 890, 3,
		[]string{"Khán đài", "Gửi xe", "Thảm xịn"}, "Minh Minh", "0987654325",
		"https://images.unsplash.com/photo-1526676037777-05a232554f77?auto=format&fit=crop&q=80&w=800",
		21.0365, 105.7957),
}
