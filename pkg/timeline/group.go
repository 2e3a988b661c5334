package timeline

import (
	"time"

	"github.com/Haston00/DABO/pkg/schedule"
)

// Group is an ordered WBS group: all activities sharing a division code,
// in input order, with the aggregate date extent used for the group's
// summary bar.
type Group struct {
	Code    string
	Name    string
	Members []schedule.Activity

	// Aggregate extent over members. Feeds the summary bar only; arrow
	// routing always targets individual activity bars.
	Start time.Time
	End   time.Time
}

// GroupActivities partitions activities into groups keyed by WBS division
// code, preserving the order in which each code is first encountered. This
// is not a sort: a schedule that mentions "09" before "03" lays out with
// Finishes above Concrete, and re-running on the same input yields the
// identical grouping.
//
// Activities with no WBS code land in the sentinel General Requirements
// group ("01").
func GroupActivities(activities []schedule.Activity) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, a := range activities {
		code := a.GroupCode()
		i, ok := index[code]
		if !ok {
			i = len(groups)
			index[code] = i
			groups = append(groups, Group{Code: code, Name: a.GroupName()})
		}

		g := &groups[i]
		g.Members = append(g.Members, a)

		start := midnightUTC(a.Start)
		end := midnightUTC(a.End)
		if g.Start.IsZero() || start.Before(g.Start) {
			g.Start = start
		}
		if g.End.IsZero() || end.After(g.End) {
			g.End = end
		}
	}

	return groups
}
