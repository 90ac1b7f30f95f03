package slot

import "github.com/mauv0809/court-finder/internal/skill"

// Status is the open/full flag shown on cards.
type Status string

const (
	StatusOpen Status = "open"
	StatusFull Status = "full"
)

// UnknownSpots marks a slot whose remaining capacity is not known. It must never be
// read as "zero remaining".
const UnknownSpots = -1

// Unresolved replaces a start or end time that could not be recovered.
const Unresolved = "?"

// Default values used when upstream data is missing.
const (
	DefaultLat          = 16.0544
	DefaultLng          = 108.2022
	DefaultDistrict     = "Đà Nẵng"
	DefaultContactLink  = "https://zalo.me/"
	DefaultHost         = "Chủ bài"
	DefaultSnapshotHost = "Chủ kèo"
	UnnamedCourt        = "Sân không tên"
)

// Slot is the unified view-model every list, map and carousel view consumes.
// Slots are produced once per load cycle and never mutated afterwards.
type Slot struct {
	ID           string         `json:"id" msgpack:"id"`
	CourtName    string         `json:"courtName" msgpack:"courtName"`
	Location     string         `json:"location" msgpack:"location"`
	District     string         `json:"district" msgpack:"district"`
	Date         string         `json:"date" msgpack:"date"` // YYYY-MM-DD or ""
	TimeSlot     string         `json:"timeSlot" msgpack:"timeSlot"`
	StartTime    string         `json:"startTime" msgpack:"startTime"` // HH:mm or "?"
	EndTime      string         `json:"endTime" msgpack:"endTime"`
	Price        int64          `json:"price" msgpack:"price"` // per player, 0 = contact for price
	SkillLevel   skill.Category `json:"skillLevel" msgpack:"skillLevel"`
	SkillLevels  []string       `json:"skillLevels" msgpack:"skillLevels"`
	// AvailableSpots is UnknownSpots when capacity is not known.
	AvailableSpots int      `json:"availableSpots" msgpack:"availableSpots"`
	Rating         float64  `json:"rating" msgpack:"rating"`
	ReviewsCount   int      `json:"reviewsCount" msgpack:"reviewsCount"`
	Amenities      []string `json:"amenities" msgpack:"amenities"`
	HostName       string   `json:"hostName" msgpack:"hostName"`
	ContactLink    string   `json:"contactLink" msgpack:"contactLink"`
	Lat            float64  `json:"lat" msgpack:"lat"`
	Lng            float64  `json:"lng" msgpack:"lng"`
	Image          string   `json:"image" msgpack:"image"`
	Status         Status   `json:"status" msgpack:"status"`
	Notes          string   `json:"notes" msgpack:"notes"`

	FbGroupID         *string `json:"fbGroupId" msgpack:"fbGroupId"`
	FbGroupName       *string `json:"fbGroupName" msgpack:"fbGroupName"`
	FbGroupURL        *string `json:"fbGroupUrl" msgpack:"fbGroupUrl"`
	IsLookingForGroup bool    `json:"isLookingForGroup" msgpack:"isLookingForGroup"`

	SourceURL string `json:"sourceUrl" msgpack:"sourceUrl"`
	Source    string `json:"source" msgpack:"source"`
}

// Origins recorded in Slot.Source.
const (
	SourceBackend  = "backend"
	SourceSnapshot = "snapshot"
	SourceMock     = "mock"
)
