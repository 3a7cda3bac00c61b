package bento

import (
	"fmt"
	"hash/fnv"
	"io"
)

// IntentKind classifies an interaction produced by dispatch.
type IntentKind uint8

const (
	// IntentClick fires when the cursor is over an interactive element
	// on the frame the left button is first pressed.
	IntentClick IntentKind = iota
	// IntentHoverEnter fires on the first frame the cursor is over an
	// element after a frame it was not.
	IntentHoverEnter
	// IntentHoverLeave fires on the first frame the cursor is no
	// longer over an element it hovered the previous frame.
	IntentHoverLeave
)

// String returns the intent kind name.
func (k IntentKind) String() string {
	switch k {
	case IntentClick:
		return "click"
	case IntentHoverEnter:
		return "hover-enter"
	case IntentHoverLeave:
		return "hover-leave"
	default:
		return "unknown"
	}
}

// Intent records one interaction dispatched during a frame, in the
// order it fired. Hosts that prefer applying effects after the frame
// can consume the intent log instead of element callbacks.
type Intent struct {
	Kind IntentKind

	// Identity is the element's stable interaction identity, either
	// its explicit key or a content-derived fallback.
	Identity string

	// Index is the element's position in this frame's pre-order
	// traversal.
	Index int
}

// HoverSet remembers which interaction identities were hovered on the
// previous frame. It is the only piece of interaction state that
// survives the frame; everything else is rebuilt from the tree.
type HoverSet struct {
	prev map[string]bool
}

// NewHoverSet returns an empty hover set.
func NewHoverSet() *HoverSet {
	return &HoverSet{prev: make(map[string]bool)}
}

// Hovered reports whether an identity was hovered as of the last
// dispatch.
func (hs *HoverSet) Hovered(identity string) bool {
	return hs.prev[identity]
}

// Len returns how many identities were hovered as of the last
// dispatch.
func (hs *HoverSet) Len() int {
	return len(hs.prev)
}

// Dispatch hit-tests the laid-out tree against the input snapshot and
// fires interaction callbacks. Every element is assigned a strictly
// increasing pre-order index; containers and empties are indexed but
// never hit-tested. Hover membership is tracked by identity, so
// inserting an unrelated sibling does not shift hover state onto a
// different element. Callbacks fire in traversal order and the
// returned intents mirror them. The input snapshot is never mutated.
func (hs *HoverSet) Dispatch(root *Element, in *Input) []Intent {
	d := &dispatcher{
		input: in,
		prev:  hs.prev,
		next:  make(map[string]bool, len(hs.prev)),
		seen:  make(map[uint64]int),
	}
	root.Walk(func(e *Element, index int) bool {
		d.visit(e, index)
		return true
	})
	hs.prev = d.next
	return d.intents
}

type dispatcher struct {
	input   *Input
	prev    map[string]bool
	next    map[string]bool
	seen    map[uint64]int
	intents []Intent
}

func (d *dispatcher) visit(e *Element, index int) {
	if !interactive(e) {
		return
	}
	identity := d.identityFor(e)
	over := d.input.Mouse.Over(e.layout.Rect)

	if over {
		d.next[identity] = true
		if !d.prev[identity] {
			d.intents = append(d.intents, Intent{Kind: IntentHoverEnter, Identity: identity, Index: index})
			if e.onJustHovered != nil {
				e.onJustHovered()
			}
		}
		if e.onHover != nil {
			e.onHover()
		}
		if d.input.Mouse.LeftJustPressed {
			d.intents = append(d.intents, Intent{Kind: IntentClick, Identity: identity, Index: index})
			if e.onClick != nil {
				e.onClick()
			}
		}
		return
	}

	if d.prev[identity] {
		d.intents = append(d.intents, Intent{Kind: IntentHoverLeave, Identity: identity, Index: index})
		if e.onJustUnhovered != nil {
			e.onJustUnhovered()
		}
	}
}

// interactive reports whether an element participates in hit-testing.
// Buttons always do; other leaves do when they carry a callback.
// Containers and empties only route the traversal through.
func interactive(e *Element) bool {
	switch e.kind {
	case KindRow, KindColumn, KindEmpty:
		return false
	case KindButton:
		return true
	default:
		return e.onClick != nil || e.onHover != nil ||
			e.onJustHovered != nil || e.onJustUnhovered != nil
	}
}

// identityFor derives the element's interaction identity. An explicit
// key wins. Otherwise identity is a hash of kind and text plus an
// occurrence ordinal, so identical siblings stay distinct while
// unrelated insertions elsewhere in the tree leave identity untouched.
func (d *dispatcher) identityFor(e *Element) string {
	if e.key != "" {
		return "k:" + e.key
	}
	h := fnv.New64a()
	io.WriteString(h, e.kind.String())
	h.Write([]byte{0})
	io.WriteString(h, e.text)
	sum := h.Sum64()
	ordinal := d.seen[sum]
	d.seen[sum] = ordinal + 1
	return fmt.Sprintf("c:%x:%d", sum, ordinal)
}
