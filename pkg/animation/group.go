package animation

import "slices"

// Group advances a set of animations together and drops each one once it
// finishes. The zero value is ready to use.
type Group struct {
	items []Animation
}

// Add starts advancing a on the next Update. Nil is ignored.
func (g *Group) Add(a Animation) {
	if a == nil {
		return
	}
	g.items = append(g.items, a)
}

// Remove stops advancing a. It reports whether a was in the group.
func (g *Group) Remove(a Animation) bool {
	i := slices.Index(g.items, a)
	if i < 0 {
		return false
	}
	g.items = slices.Delete(g.items, i, i+1)
	return true
}

// Update advances every animation by dt seconds. Animations added from a
// callback during Update start on the next call.
func (g *Group) Update(dt float32) {
	if len(g.items) == 0 {
		return
	}
	current := slices.Clone(g.items)
	finished := make(map[Animation]bool)
	for _, a := range current {
		if a.Update(dt) {
			finished[a] = true
		}
	}
	g.items = slices.DeleteFunc(g.items, func(a Animation) bool { return finished[a] })
}

// Len returns the number of running animations.
func (g *Group) Len() int { return len(g.items) }

// Clear drops every animation without finishing it.
func (g *Group) Clear() {
	clear(g.items)
	g.items = g.items[:0]
}
