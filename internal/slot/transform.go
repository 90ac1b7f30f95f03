// Package slot turns the records of every data source into the single Slot
// view-model and drops records too incomplete to list.
package slot

import (
	"fmt"
	"math"
	"strings"

	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/skill"
	"github.com/mauv0809/court-finder/internal/snapshot"
)

// FromBackend converts a backend match, its court (may be nil) and the group index
// (may be nil) into a Slot. It performs no I/O.
func FromBackend(m backend.Match, c *backend.Court, groups map[string]backend.FbGroup) Slot {
	labels := skill.LabelsFromRange(m.LevelMin, m.LevelMax)
	start, end := clock(m.StartTime), clock(m.EndTime)

	s := Slot{
		ID:             m.ID,
		CourtName:      firstNonEmpty(courtField(c, func(c *backend.Court) *string { return &c.Name }), m.AreaText),
		Location:       firstNonEmpty(courtField(c, func(c *backend.Court) *string { return c.AddressText }), m.AreaText),
		District:       firstNonEmpty(courtField(c, func(c *backend.Court) *string { return c.District })),
		Date:           calendarDate(value(m.Date)),
		TimeSlot:       timeSlot(start, end),
		StartTime:      start,
		EndTime:        end,
		Price:          pricePerPlayer(m.PricePerPlayer),
		SkillLevel:     skill.BroadCategory(labels[0]),
		SkillLevels:    labels,
		AvailableSpots: remaining(whole(m.TotalSlots), whole(m.CurrentJoined)),
		Amenities:      []string{},
		HostName:       firstNonEmpty(m.ContactName, courtField(c, func(c *backend.Court) *string { return c.ContactName })),
		ContactLink:    backendContactLink(m, c),
		Lat:            DefaultLat,
		Lng:            DefaultLng,
		Status:         StatusOpen,
		Notes:          value(m.Description),
		Source:         SourceBackend,
	}
	if s.District == "" {
		s.District = DefaultDistrict
	}
	if s.HostName == "" {
		s.HostName = DefaultHost
	}
	if value(m.Status) == string(StatusFull) {
		s.Status = StatusFull
	}
	if m.IsLookingForGroup != nil {
		s.IsLookingForGroup = *m.IsLookingForGroup
	}

	imageSeed := m.ID
	if c != nil {
		imageSeed = c.ID
		if c.GeoLat != nil {
			s.Lat = *c.GeoLat
		}
		if c.GeoLng != nil {
			s.Lng = *c.GeoLng
		}
		if c.RatingAvg != nil {
			s.Rating = *c.RatingAvg
		}
		if c.ReviewCount != nil {
			s.ReviewsCount = value(whole(c.ReviewCount))
		}
	}
	s.Image = firstNonEmpty(courtField(c, func(c *backend.Court) *string { return c.ImageURL }))
	if s.Image == "" {
		s.Image = CourtImage(imageSeed)
	}

	if id := value(m.FbGroupID); id != "" {
		s.FbGroupID = &id
		if g, ok := groups[id]; ok {
			s.FbGroupName = g.Name
			s.FbGroupURL = g.URL
		}
	}
	return s
}

// FromSnapshot converts a snapshot match and its court (may be nil) into a Slot.
// The per-person price is used as is.
func FromSnapshot(m snapshot.Match, c *snapshot.Court) Slot {
	category := skill.FromEnglish(value(m.SkillLevel))
	start, end := clock(&m.StartTime), clock(&m.EndTime)

	s := Slot{
		ID:             m.ID,
		CourtName:      m.CourtName,
		Date:           calendarDate(m.Date),
		TimeSlot:       timeSlot(start, end),
		StartTime:      start,
		EndTime:        end,
		Price:          pricePerPlayer(m.PricePerPerson),
		SkillLevel:     category,
		SkillLevels:    []string{string(category)},
		AvailableSpots: snapshotSpots(m),
		Amenities:      []string{},
		HostName:       firstNonEmpty(m.ContactName),
		Lat:            DefaultLat,
		Lng:            DefaultLng,
		Image:          CourtImage(firstNonEmpty(&m.CourtID, &m.ID)),
		Status:         StatusOpen,
		Notes:          m.Notes,
		SourceURL:      m.SourceURL,
		Source:         SourceSnapshot,
	}
	if m.Status == string(StatusFull) {
		s.Status = StatusFull
	}
	if s.HostName == "" {
		s.HostName = DefaultSnapshotHost
	}

	phone := value(m.ContactPhone)
	if c != nil {
		if s.CourtName == "" {
			s.CourtName = c.Name
		}
		s.Location = c.Address
		s.District = c.District
		s.Rating = c.Rating
		s.ReviewsCount = value(whole(&c.TotalReviews))
		if len(c.Facilities) > 0 {
			s.Amenities = append([]string(nil), c.Facilities...)
		}
		if c.Image != "" {
			s.Image = c.Image
		}
		if phone == "" {
			phone = c.Phone
		}
	}
	if s.CourtName == "" {
		s.CourtName = UnnamedCourt
	}
	if s.District == "" {
		s.District = DefaultDistrict
	}
	s.ContactLink = ContactFromPhone(phone)
	return s
}

// remaining derives free spots from capacity counters. Over-booked matches report
// zero; unknown capacity reports UnknownSpots.
func remaining(total, joined *int) int {
	if total == nil {
		return UnknownSpots
	}
	left := *total - value(joined)
	if left < 0 {
		return 0
	}
	return left
}

func snapshotSpots(m snapshot.Match) int {
	switch {
	case m.PlayersNeeded != nil:
		return max(0, value(whole(m.PlayersNeeded)))
	case m.MaxPlayers != nil:
		return remaining(whole(m.MaxPlayers), whole(m.CurrentPlayers))
	default:
		return UnknownSpots
	}
}

// pricePerPlayer rounds to whole đồng. Missing, negative and non-finite prices
// mean "contact for price".
func pricePerPlayer(p *float64) int64 {
	if p == nil || *p < 0 || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0
	}
	return int64(math.Round(*p))
}

// whole rounds a crawled count to the nearest integer.
func whole(p *float64) *int {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	n := int(math.Round(*p))
	return &n
}

func backendContactLink(m backend.Match, c *backend.Court) string {
	if link := firstNonEmpty(m.ZaloLink, courtField(c, func(c *backend.Court) *string { return c.ZaloLink })); link != "" {
		return link
	}
	return ContactFromPhone(value(courtField(c, func(c *backend.Court) *string { return c.ContactPhone })))
}

// ContactFromPhone builds a chat link from a local phone number, swapping the
// leading trunk digit for the country code.
func ContactFromPhone(phone string) string {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if phone == "" {
		return DefaultContactLink
	}
	if strings.HasPrefix(phone, "0") {
		phone = "84" + phone[1:]
	}
	return DefaultContactLink + phone
}

// calendarDate keeps the YYYY-MM-DD prefix of a date or timestamp. The suffix is
// dropped rather than parsed so that no timezone shift can move the day.
func calendarDate(d string) string {
	d = strings.TrimSpace(d)
	if len(d) > 10 {
		return d[:10]
	}
	return d
}

func clock(t *string) string {
	v := strings.TrimSpace(value(t))
	if v == "" {
		return Unresolved
	}
	if len(v) > 5 {
		return v[:5]
	}
	return v
}

func timeSlot(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}

func courtField(c *backend.Court, get func(*backend.Court) *string) *string {
	if c == nil {
		return nil
	}
	return get(c)
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return *v
		}
	}
	return ""
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
