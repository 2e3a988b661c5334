package timeline

import "sort"

// Collapse tracks per-group visibility for one interactive session. Every
// known group starts expanded; state lives only in memory and is never
// persisted. Collapse is not safe for concurrent use — the session model
// is single-threaded and callers serialize triggering actions.
type Collapse struct {
	known     map[string]bool
	collapsed map[string]bool
}

// NewCollapse creates collapse state tracking the given group codes, all
// expanded.
func NewCollapse(codes []string) *Collapse {
	c := &Collapse{
		known:     make(map[string]bool, len(codes)),
		collapsed: make(map[string]bool, len(codes)),
	}
	for _, code := range codes {
		c.known[code] = true
	}
	return c
}

// Toggle flips the state of one group. Toggling a code that is not a
// current group is a no-op, not an error; toggling twice restores the
// original state; other groups are never affected.
func (c *Collapse) Toggle(code string) {
	if !c.known[code] {
		return
	}
	if c.collapsed[code] {
		delete(c.collapsed, code)
	} else {
		c.collapsed[code] = true
	}
}

// ExpandAll resets every group to expanded.
func (c *Collapse) ExpandAll() {
	c.collapsed = make(map[string]bool, len(c.known))
}

// CollapseAll sets every known group to collapsed.
func (c *Collapse) CollapseAll() {
	for code := range c.known {
		c.collapsed[code] = true
	}
}

// Collapsed reports whether the group is currently collapsed.
func (c *Collapse) Collapsed(code string) bool {
	return c.collapsed[code]
}

// CollapsedCodes returns the collapsed group codes in sorted order, for
// cache keys and query parameters.
func (c *Collapse) CollapsedCodes() []string {
	codes := make([]string, 0, len(c.collapsed))
	for code := range c.collapsed {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// retarget replaces the known group set after a reload, dropping state for
// groups that no longer exist and starting new groups expanded. State for
// groups present in both sets is preserved.
func (c *Collapse) retarget(codes []string) {
	known := make(map[string]bool, len(codes))
	for _, code := range codes {
		known[code] = true
	}
	for code := range c.collapsed {
		if !known[code] {
			delete(c.collapsed, code)
		}
	}
	c.known = known
}
