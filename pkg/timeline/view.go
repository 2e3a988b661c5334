package timeline

import "github.com/Haston00/DABO/pkg/schedule"

// View is the collapse-filtered rendering of a Layout: the visible row
// sequence with reassigned row positions, and the dependency arrows routed
// against those positions. A View never owns geometry — bar x/width always
// comes from the Layout it was built from; only vertical placement and
// visibility live here.
type View struct {
	// Rows is the visible row sequence: group headers always, task rows
	// only while their group is expanded.
	Rows []Row `json:"rows"`

	// RowIndex maps visible activity ids to their position in Rows.
	// Activities hidden by a collapsed group are absent.
	RowIndex map[string]int `json:"row_index"`

	// GroupRowIndex maps WBS codes to their header row position. Headers
	// and group summary bars stay visible when a group collapses.
	GroupRowIndex map[string]int `json:"group_row_index"`

	// Arrows are the routed connectors between visible bars.
	Arrows []Arrow `json:"arrows"`

	// Height is the pane height for the visible row count.
	Height float64 `json:"height"`
}

// BuildView filters a layout through collapse state and routes dependency
// arrows against the surviving rows. activities must be the same list the
// layout was built from; collapsed reports per-group collapse state and
// may be nil for an all-expanded view.
func BuildView(l *Layout, activities []schedule.Activity, collapsed func(code string) bool) *View {
	if collapsed == nil {
		collapsed = func(string) bool { return false }
	}

	v := &View{
		RowIndex:      make(map[string]int),
		GroupRowIndex: make(map[string]int),
	}

	for _, row := range l.Rows {
		if row.Kind == RowTask && collapsed(row.WBSCode) {
			continue
		}
		i := len(v.Rows)
		v.Rows = append(v.Rows, row)
		switch row.Kind {
		case RowGroupHeader:
			v.GroupRowIndex[row.WBSCode] = i
		case RowTask:
			v.RowIndex[row.ActivityID] = i
		}
	}

	v.Height = heightFor(len(v.Rows))
	v.Arrows = routeArrows(activities, l.Bars, v.RowIndex)

	return v
}
