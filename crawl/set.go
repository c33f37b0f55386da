package crawl

// OrderedSet is an insertion-ordered string set. Iteration order is the
// order in which values were first added.
type OrderedSet struct {
	items []string
	seen  map[string]bool
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{
		seen: make(map[string]bool),
	}
}

// Add inserts v if it hasn't been seen before and reports whether it was new.
func (s *OrderedSet) Add(v string) bool {
	if s.seen[v] {
		return false
	}
	s.seen[v] = true
	s.items = append(s.items, v)
	return true
}

// Has reports whether v has been added.
func (s *OrderedSet) Has(v string) bool {
	return s.seen[v]
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns the values in first-seen order.
func (s *OrderedSet) Items() []string {
	return append([]string(nil), s.items...)
}
