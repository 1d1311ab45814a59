package entities

import "time"

// Project represents an NPI project with its milestone dates, from Design
// Freeze through Start of Production.
type Project struct {
	Name         string
	DesignFreeze time.Time
	MCS          time.Time
	Pilot        time.Time
	SOP          time.Time
}

// ECN represents an Engineering Change Notification: a project-linked
// bundle of part numbers that needs sourcing.
type ECN struct {
	Project     string
	ID          string
	ReleaseDate time.Time
	Items       []Item
}

// Supplier identifies one supplier in the sourcing process. Performance
// profiles used for simulation live in the simulation package; the domain
// only carries identity.
type Supplier struct {
	ID   SupplierID
	Name string
}
