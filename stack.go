package tidytree

import "github.com/webfolk/tidytree/internal/stack"

// elementStack tracks the currently open elements, innermost on top.
// The document is never pushed: an empty stack means new content goes
// to the document itself. Keeping the root off the stack means it can
// never be popped, and never participates in end-tag name matching.
type elementStack struct {
	stack.Stack[*Element]
}

// Peek returns the innermost open element, or nil when no element is
// open.
func (s *elementStack) Peek() *Element {
	if e, ok := s.Stack.Peek(); ok {
		return e
	}
	return nil
}

// IndexOf returns the stack position of the innermost open element
// with the given name, or -1. The name must already be lower-cased.
func (s *elementStack) IndexOf(name string) int {
	return s.Index(func(e *Element) bool {
		return e.Name() == name
	})
}
