package backend

import "errors"

// ErrUnavailable is wrapped by every FetchAll error. Callers treat it as a
// non-fatal warning and move on to the next source.
var ErrUnavailable = errors.New("backend unavailable")

// Match mirrors the backend match DTO. Most fields are recovered by crawling and AI
// extraction of community posts, so any of them may be null. Counts and prices are
// decoded as float64 because crawled records sometimes carry fractions; the
// transformer rounds them.
type Match struct {
	ID                string   `json:"id"`
	SourcePostID      *string  `json:"sourcePostId"`
	HostUserID        *string  `json:"hostUserId"`
	CourtID           *string  `json:"courtId"`
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Date              *string  `json:"date"`      // "YYYY-MM-DD", sometimes a full timestamp
	StartTime         *string  `json:"startTime"` // "HH:mm" or "HH:mm:ss"
	EndTime           *string  `json:"endTime"`
	AreaText          *string  `json:"areaText"`
	LevelMin          *float64 `json:"levelMin"`
	LevelMax          *float64 `json:"levelMax"`
	TotalSlots        *float64 `json:"totalSlots"`
	CurrentJoined     *float64 `json:"currentJoined"`
	Status            *string  `json:"status"`
	PricePerPlayer    *float64 `json:"pricePerPlayer"`
	ContactName       *string  `json:"contactName"`
	ContactPhone      *string  `json:"contactPhone"`
	ZaloLink          *string  `json:"zaloLink"`
	FbGroupID         *string  `json:"fbGroupId"`
	IsLookingForGroup *bool    `json:"isLookingForGroup"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// Court mirrors the backend court DTO.
type Court struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	AddressText  *string  `json:"addressText"`
	District     *string  `json:"district"`
	City         *string  `json:"city"`
	GeoLat       *float64 `json:"geoLat"`
	GeoLng       *float64 `json:"geoLng"`
	Indoor       *bool    `json:"indoor"`
	Note         *string  `json:"note"`
	ContactName  *string  `json:"contactName"`
	ContactPhone *string  `json:"contactPhone"`
	FbGroupID    *string  `json:"fbGroupId"`
	ImageURL     *string  `json:"imageUrl"`
	TotalCourts  *float64 `json:"totalCourts"`
	ZaloLink     *string  `json:"zaloLink"`
	WebsiteURL   *string  `json:"websiteUrl"`
	RatingAvg    *float64 `json:"ratingAvg"`
	ReviewCount  *float64 `json:"reviewCount"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// FbGroup mirrors the backend community group DTO.
type FbGroup struct {
	ID            string   `json:"id"`
	FbGroupID     string   `json:"fbGroupId"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	URL           *string  `json:"url"`
	MemberCount   *float64 `json:"memberCount"`
	IsActive      bool     `json:"isActive"`
	CrawlEnabled  bool     `json:"crawlEnabled"`
	City          *string  `json:"city"`
	LastCrawledAt *string  `json:"lastCrawledAt"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Result is everything one load cycle got from the backend.
type Result struct {
	Matches []Match
	Courts  []Court
	// Groups is keyed by the external group id (FbGroup.FbGroupID).
	Groups map[string]FbGroup
	// Joined is true when the optimised joined endpoint answered.
	Joined bool
}

// CourtsByID indexes the courts for the transformer.
func (r Result) CourtsByID() map[string]*Court {
	out := make(map[string]*Court, len(r.Courts))
	for i := range r.Courts {
		out[r.Courts[i].ID] = &r.Courts[i]
	}
	return out
}

// envelope is the `{ data: [...] }` wrapper every backend endpoint uses.
type envelope[T any] struct {
	Data []T `json:"data"`
}

// joinedRow is one row of /api/matches/full.
type joinedRow struct {
	Match   Match    `json:"match"`
	Court   *Court   `json:"court"`
	FbGroup *FbGroup `json:"fbGroup"`
}
