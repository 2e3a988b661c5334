// Package network renders the schedule's precedence graph as a node-link
// diagram: activities as boxes, predecessor links as arrows, the critical
// path highlighted. It complements the Gantt view — the Gantt shows when,
// the network shows why.
//
// The diagram is expressed as Graphviz DOT and rendered to SVG through
// goccy/go-graphviz. Unresolved predecessor references are dropped here
// exactly as the timeline router drops them.
package network
