package selection

// View is the page layout currently mounted.
type View string

const (
	ViewList  View = "list"
	ViewSplit View = "split"
	ViewMap   View = "map"
)

// ParseView returns the view named s, or false.
func ParseView(s string) (View, bool) {
	switch v := View(s); v {
	case ViewList, ViewSplit, ViewMap:
		return v, true
	}
	return "", false
}

// Origin names the interaction that changed the active slot.
type Origin string

const (
	OriginPinClick   Origin = "pin-click"
	OriginCardEnter  Origin = "card-enter"
	OriginCardClick  Origin = "card-click"
	OriginSearch     Origin = "search"
	OriginCardLeave  Origin = "card-leave"
	OriginPopupClose Origin = "popup-close"
)

// ParseOrigin returns the origin named s, or false.
func ParseOrigin(s string) (Origin, bool) {
	switch o := Origin(s); o {
	case OriginPinClick, OriginCardEnter, OriginCardClick, OriginSearch, OriginCardLeave, OriginPopupClose:
		return o, true
	}
	return "", false
}

// Effects is what the mounted views do for an active slot.
type Effects struct {
	HighlightCard  bool `json:"highlightCard"`
	ScrollListCard bool `json:"scrollListCard"`
	PanMap         bool `json:"panMap"`
	OpenPopup      bool `json:"openPopup"`
	CenterCarousel bool `json:"centerCarousel"`
}

// Change is delivered to subscribers after every effective write.
type Change struct {
	// ID is empty when Active is false.
	ID      string  `json:"id"`
	Active  bool    `json:"active"`
	Origin  Origin  `json:"origin"`
	View    View    `json:"view"`
	Effects Effects `json:"effects"`
}
