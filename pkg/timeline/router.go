package timeline

import "github.com/Haston00/DABO/pkg/schedule"

// ArrowInset is the horizontal distance before a successor's left edge at
// which a connector's vertical leg runs.
const ArrowInset = 8.0

// ArrowheadSize is the side length of the triangular head at a connector's
// entry point.
const ArrowheadSize = 5.0

// Point is a 2D pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arrow is one routed finish-to-start connector: an orthogonal polyline
// from the predecessor bar's right edge to the successor bar's left edge,
// plus the triangular head at the entry point.
type Arrow struct {
	From string `json:"from"`
	To   string `json:"to"`

	// Points traces the three-segment path: horizontal out of the
	// predecessor, vertical at ArrowInset before the successor, horizontal
	// into the successor. Four points, three segments; when predecessor
	// and successor share a row the vertical leg degenerates to zero
	// length but the point count stays fixed.
	Points [4]Point `json:"points"`

	// Head is the arrowhead triangle, tip at the successor's left edge.
	Head [3]Point `json:"head"`
}

// routeArrows computes connectors for every predecessor reference that
// resolves to a visible bar. rowIndex maps activity ids to visible row
// positions; an id absent from it is either unknown (dropped silently, per
// the unresolved-reference contract) or hidden by a collapsed group
// (omitted entirely for this render — no dangling stubs). Routing is
// recomputed fresh on every layout change, so omitted connectors reappear
// as soon as both rows are visible again.
//
// All relationship types route identically, predecessor end → successor
// start; no other topology is supported.
func routeArrows(activities []schedule.Activity, bars map[string]Bar, rowIndex map[string]int) []Arrow {
	var arrows []Arrow

	for _, a := range activities {
		toRow, ok := rowIndex[a.ID]
		if !ok {
			continue
		}
		toBar := bars[a.ID]

		for _, p := range a.Predecessors {
			fromRow, ok := rowIndex[p.ID]
			if !ok {
				continue
			}
			arrows = append(arrows, route(p.ID, a.ID, bars[p.ID], toBar, fromRow, toRow))
		}
	}

	return arrows
}

// route builds one orthogonal connector between two visible bars.
func route(from, to string, fromBar, toBar Bar, fromRow, toRow int) Arrow {
	startX := fromBar.Right()
	startY := RowCenterY(fromRow)
	endX := toBar.Left()
	endY := RowCenterY(toRow)
	elbowX := endX - ArrowInset

	return Arrow{
		From: from,
		To:   to,
		Points: [4]Point{
			{X: startX, Y: startY},
			{X: elbowX, Y: startY},
			{X: elbowX, Y: endY},
			{X: endX, Y: endY},
		},
		Head: [3]Point{
			{X: endX, Y: endY},
			{X: endX - ArrowheadSize, Y: endY - ArrowheadSize/2},
			{X: endX - ArrowheadSize, Y: endY + ArrowheadSize/2},
		},
	}
}
