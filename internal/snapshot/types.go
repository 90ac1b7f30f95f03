package snapshot

import "errors"

// ErrSnapshot is wrapped by every Fetch error. Unlike a backend failure it blocks
// the overall loading state, because the snapshot is the last real dataset.
var ErrSnapshot = errors.New("snapshot unavailable")

// Document is the pre-generated JSON snapshot.
type Document struct {
	Matches  []Match  `json:"matches"`
	Courts   []Court  `json:"courts"`
	Metadata Metadata `json:"metadata"`
}

// Match is a snapshot match. Its shape differs from the backend DTO: the skill
// level is a flat English string and remaining capacity is given directly. Counts
// and prices are float64 so that one fractional value cannot reject the document.
type Match struct {
	ID             string   `json:"id"`
	CourtID        string   `json:"courtId"`
	CourtName      string   `json:"courtName"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	SkillLevel     *string  `json:"skillLevel"`
	CurrentPlayers *float64 `json:"currentPlayers"`
	MaxPlayers     *float64 `json:"maxPlayers"`
	PlayersNeeded  *float64 `json:"playersNeeded"`
	PricePerPerson *float64 `json:"pricePerPerson"`
	Status         string   `json:"status"`
	ContactPhone   *string  `json:"contactPhone"`
	ContactName    *string  `json:"contactName"`
	Notes          string   `json:"notes"`
	SourcePostID   string   `json:"sourcePostId"`
	SourceURL      string   `json:"sourceUrl"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// Court is a snapshot court.
type Court struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	PriceRange   string   `json:"priceRange"`
	Rating       float64  `json:"rating"`
	TotalReviews float64  `json:"totalReviews"`
	Facilities   []string `json:"facilities"`
	OpeningHours string   `json:"openingHours"`
	Phone        string   `json:"phone"`
	Image        string   `json:"image"`
}

// Metadata describes how and when the snapshot was generated.
type Metadata struct {
	TotalMatches int    `json:"totalMatches"`
	TotalCourts  int    `json:"totalCourts"`
	LastUpdated  string `json:"lastUpdated"`
	Source       string `json:"source"`
}

// CourtsByID indexes the courts for the transformer.
func (d Document) CourtsByID() map[string]*Court {
	out := make(map[string]*Court, len(d.Courts))
	for i := range d.Courts {
		out[d.Courts[i].ID] = &d.Courts[i]
	}
	return out
}
