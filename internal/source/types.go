package source

import "github.com/mauv0809/court-finder/internal/slot"

// Name identifies where a slot list came from.
type Name string

const (
	Backend  Name = "backend"
	Snapshot Name = "snapshot"
	Mock     Name = "mock"
)

// Provider is one candidate slot list, already transformed and quality-gated.
type Provider struct {
	Name  Name
	Slots []slot.Slot
}

// Selection is the list every view renders, tagged with its origin.
type Selection struct {
	Name  Name        `json:"source" msgpack:"source"`
	Slots []slot.Slot `json:"slots" msgpack:"slots"`
}
