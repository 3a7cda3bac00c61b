package bento

// AddChild appends a child to the element and wires its parent
// pointer. Nil children are ignored so conditional builders can pass
// their result straight through. It returns the element for chaining.
func (e *Element) AddChild(child *Element) *Element {
	if child == nil {
		return e
	}
	child.parent = e
	e.children = append(e.children, child)
	return e
}

func (e *Element) addChildren(children []*Element) {
	for _, child := range children {
		e.AddChild(child)
	}
}

// Walk visits the element and every descendant in pre-order, passing
// each node's depth-first index. Parents are visited before children
// and indices are strictly increasing, so later callbacks always sit
// on top of earlier ones in paint order. Returning false stops the
// walk.
func (e *Element) Walk(visit func(el *Element, index int) bool) {
	e.walk(visit, new(int))
}

func (e *Element) walk(visit func(el *Element, index int) bool, next *int) bool {
	index := *next
	*next = index + 1
	if !visit(e, index) {
		return false
	}
	for _, child := range e.children {
		if !child.walk(visit, next) {
			return false
		}
	}
	return true
}

// Count returns the number of elements in the subtree rooted at e,
// including e itself.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element, int) bool {
		n++
		return true
	})
	return n
}
