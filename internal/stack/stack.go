package stack

// Stack is a LIFO sequence of T. The zero value is an empty stack
// ready for use.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes the top n items (one if n is omitted). Popping more
// items than the stack holds empties it.
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	if nn <= 0 {
		return
	}

	for s.Len() > 0 {
		*s = (*s)[:s.Len()-1]
		nn--
		if nn <= 0 {
			break
		}
	}

	if c := s.Cap(); c > 20 && c > s.Len()*2 {
		s.Realloc()
	}
}

// Realloc copies the live items into a right-sized backing array so
// that a stack that grew deep does not keep the large buffer pinned.
func (s *Stack[T]) Realloc() {
	*s = append(Stack[T](nil), *s...)
}

// Peek returns the top item without removing it. The second return
// value is false when the stack is empty.
func (s Stack[T]) Peek() (T, bool) {
	if l := len(s); l > 0 {
		return s[l-1], true
	}
	var zero T
	return zero, false
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s Stack[T]) Cap() int {
	return cap(s)
}

// Index returns the position of the topmost item satisfying fn,
// scanning from the top of the stack down, or -1 if no item matches.
func (s Stack[T]) Index(fn func(T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if fn(s[i]) {
			return i
		}
	}
	return -1
}

// Truncate removes the item at position i and everything above it.
func (s *Stack[T]) Truncate(i int) {
	if i < 0 || i >= s.Len() {
		return
	}
	s.Pop(s.Len() - i)
}
