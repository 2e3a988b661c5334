package schedule

import (
	"time"
)

// DateLayout is the calendar-day interchange format for schedule dates.
// Dates are day-granular; no time-of-day component participates in any
// layout arithmetic.
const DateLayout = "2006-01-02"

// RelationType identifies a predecessor relationship type.
//
// Only finish-to-start is modeled by the layout engine; the other types are
// accepted on input and routed identically (predecessor end → successor
// start), since no other topology is supported downstream.
type RelationType string

// Relationship types carried by schedule interchange files.
const (
	RelationFinishStart RelationType = "FS"
	RelationStartStart  RelationType = "SS"
	RelationFinishEnd   RelationType = "FF"
	RelationStartEnd    RelationType = "SF"
)

// Valid reports whether t is one of the recognized relationship types.
func (t RelationType) Valid() bool {
	switch t {
	case RelationFinishStart, RelationStartStart, RelationFinishEnd, RelationStartEnd:
		return true
	}
	return false
}

// Predecessor is a dependency link from an activity to one that must
// precede it.
type Predecessor struct {
	ID   string       `json:"id" toml:"id"`
	Type RelationType `json:"type,omitempty" toml:"type,omitempty"`
	Lag  int          `json:"lag,omitempty" toml:"lag,omitempty"` // working days
}

// Activity is a single schedule activity with dates already computed by an
// upstream scheduling pass. Activities are treated as immutable by the
// layout engine.
type Activity struct {
	ID           string
	Name         string
	Start        time.Time
	End          time.Time
	DurationDays int
	WBSCode      string
	WBSName      string
	Critical     bool
	FloatDays    int
	Milestone    bool
	Predecessors []Predecessor
}

// Division returns the CSI division this activity belongs to, resolving
// blank or unknown WBS codes to the sentinel General Requirements division.
func (a *Activity) Division() Division {
	return DivisionForCode(a.WBSCode)
}

// GroupCode returns the WBS grouping key for this activity: the division
// part of its WBS code, or the sentinel division code when blank.
func (a *Activity) GroupCode() string {
	return a.Division().Code()
}

// GroupName returns the display name for the activity's group, preferring
// an explicit WBSName from the input over the static division table.
func (a *Activity) GroupName() string {
	if a.WBSName != "" {
		return a.WBSName
	}
	return a.Division().Name()
}

// Schedule is an ordered activity list with project metadata. Activity
// order is meaningful: group ordering in the layout follows first
// occurrence in this list.
type Schedule struct {
	Project    string
	Activities []Activity
}
