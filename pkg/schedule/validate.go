package schedule

import "fmt"

// Validate runs advisory consistency checks over a schedule's predecessor
// links and returns a list of human-readable problems. The layout engine
// tolerates all of these (unresolved references are dropped at routing
// time, unknown relationship types route as finish-to-start), so a
// non-empty result is a warning, not a failure.
func Validate(activities []Activity) []string {
	var problems []string

	ids := make(map[string]bool, len(activities))
	for _, a := range activities {
		ids[a.ID] = true
	}

	for _, a := range activities {
		for _, p := range a.Predecessors {
			if !ids[p.ID] {
				problems = append(problems,
					fmt.Sprintf("activity %s references nonexistent predecessor %s", a.ID, p.ID))
			}
			if p.ID == a.ID {
				problems = append(problems,
					fmt.Sprintf("activity %s references itself as predecessor", a.ID))
			}
			if !p.Type.Valid() {
				problems = append(problems,
					fmt.Sprintf("activity %s: unknown relationship type %q (routed as FS)", a.ID, p.Type))
			}
		}
	}

	return problems
}

// HasCycle reports whether the predecessor graph contains a circular
// dependency. Cycles do not break layout (bars position by date, not by
// topology) but they indicate corrupt upstream CPM output worth surfacing.
func HasCycle(activities []Activity) bool {
	byID := make(map[string]*Activity, len(activities))
	for i := range activities {
		byID[activities[i].ID] = &activities[i]
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[string]int, len(activities))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case inStack:
			return true
		case done:
			return false
		}
		state[id] = inStack
		if a, ok := byID[id]; ok {
			for _, p := range a.Predecessors {
				if visit(p.ID) {
					return true
				}
			}
		}
		state[id] = done
		return false
	}

	for _, a := range activities {
		if visit(a.ID) {
			return true
		}
	}
	return false
}
