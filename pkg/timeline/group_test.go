package timeline

import (
	"testing"

	"github.com/Haston00/DABO/pkg/schedule"
)

func TestGroupActivitiesFirstSeenOrder(t *testing.T) {
	// "09" appears before "03" in the input; the grouping must not sort.
	activities := []schedule.Activity{
		act("F1", "09", date(2026, 5, 1), date(2026, 5, 10)),
		act("C1", "03", date(2026, 3, 1), date(2026, 3, 10)),
		act("F2", "09", date(2026, 5, 11), date(2026, 5, 20)),
		act("C2", "03", date(2026, 3, 11), date(2026, 3, 20)),
	}

	groups := GroupActivities(activities)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Code != "09" || groups[1].Code != "03" {
		t.Errorf("group order = [%s %s], want [09 03]", groups[0].Code, groups[1].Code)
	}
	if len(groups[0].Members) != 2 || groups[0].Members[0].ID != "F1" || groups[0].Members[1].ID != "F2" {
		t.Errorf("group 09 members out of order: %+v", groups[0].Members)
	}
}

func TestGroupActivitiesSentinel(t *testing.T) {
	activities := []schedule.Activity{
		act("X1", "", date(2026, 3, 1), date(2026, 3, 5)),
		act("X2", "99", date(2026, 3, 6), date(2026, 3, 10)),
	}

	groups := GroupActivities(activities)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Code != "01" {
		t.Errorf("sentinel code = %q, want %q", groups[0].Code, "01")
	}
	if groups[0].Name != "General Requirements" {
		t.Errorf("sentinel name = %q, want %q", groups[0].Name, "General Requirements")
	}
	if len(groups[0].Members) != 2 {
		t.Errorf("sentinel members = %d, want 2", len(groups[0].Members))
	}
}

func TestGroupActivitiesAggregateExtent(t *testing.T) {
	activities := []schedule.Activity{
		act("C2", "03", date(2026, 3, 15), date(2026, 3, 20)),
		act("C1", "03", date(2026, 3, 1), date(2026, 3, 10)),
		act("C3", "03", date(2026, 3, 5), date(2026, 4, 2)),
	}

	groups := GroupActivities(activities)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if !g.Start.Equal(date(2026, 3, 1)) {
		t.Errorf("group start = %v, want 2026-03-01", g.Start)
	}
	if !g.End.Equal(date(2026, 4, 2)) {
		t.Errorf("group end = %v, want 2026-04-02", g.End)
	}
}

func TestGroupActivitiesDottedCode(t *testing.T) {
	// Sub-level WBS codes group by their leading division segment.
	activities := []schedule.Activity{
		act("C1", "03.1", date(2026, 3, 1), date(2026, 3, 10)),
		act("C2", "03.2", date(2026, 3, 11), date(2026, 3, 20)),
	}

	groups := GroupActivities(activities)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Code != "03" {
		t.Errorf("group code = %q, want %q", groups[0].Code, "03")
	}
}

func TestGroupActivitiesDeterministic(t *testing.T) {
	activities := []schedule.Activity{
		act("A", "05", date(2026, 3, 1), date(2026, 3, 5)),
		act("B", "02", date(2026, 3, 1), date(2026, 3, 5)),
		act("C", "16", date(2026, 3, 1), date(2026, 3, 5)),
	}

	first := GroupActivities(activities)
	for i := 0; i < 10; i++ {
		again := GroupActivities(activities)
		for j := range first {
			if again[j].Code != first[j].Code {
				t.Fatalf("run %d: group order changed: %s vs %s", i, again[j].Code, first[j].Code)
			}
		}
	}
}
