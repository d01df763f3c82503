package coursetree

// Flatten returns pointers to every activity in the course in document
// order: module order, then lesson order, then activity order. This is
// the single traversal all validators and the state-machine consumers
// share, so ordering never diverges between checks.
func Flatten(c *Course) []*Activity {
	var out []*Activity
	for mi := range c.Modules {
		m := &c.Modules[mi]
		for li := range m.Lessons {
			l := &m.Lessons[li]
			for ai := range l.Activities {
				out = append(out, &l.Activities[ai])
			}
		}
	}
	return out
}

// ActivityIndex resolves activity ids to activities. Lookups of ids that
// no longer exist simply miss; stale outcome mappings never crash.
type ActivityIndex struct {
	byID    map[string]*Activity
	ordered []*Activity
}

// BuildIndex flattens the course and indexes every activity by id.
func BuildIndex(c *Course) *ActivityIndex {
	ordered := Flatten(c)
	byID := make(map[string]*Activity, len(ordered))
	for _, a := range ordered {
		byID[a.ID] = a
	}
	return &ActivityIndex{byID: byID, ordered: ordered}
}

// Lookup returns the activity with the given id, or nil if it does not
// exist in the tree.
func (x *ActivityIndex) Lookup(id string) *Activity {
	return x.byID[id]
}

// Has reports whether an activity with the given id exists.
func (x *ActivityIndex) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// Activities returns all indexed activities in document order.
func (x *ActivityIndex) Activities() []*Activity {
	return x.ordered
}

// Len returns the number of indexed activities.
func (x *ActivityIndex) Len() int {
	return len(x.ordered)
}
