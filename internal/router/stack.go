package router

// Stack is the ordered navigation history. The last entry is the visible view.
type Stack struct {
	entries []View
}

// NewStack creates a new empty stack
func NewStack() *Stack {
	return &Stack{
		entries: make([]View, 0),
	}
}

// Push appends a view on top of the stack
func (s *Stack) Push(view View) {
	s.entries = append(s.entries, view)
}

// Pop removes and returns the top view.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *View {
	if len(s.entries) == 0 {
		return nil
	}
	view := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &view
}

// Peek returns the top view without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *View {
	if len(s.entries) == 0 {
		return nil
	}
	view := s.entries[len(s.entries)-1]
	return &view
}

// IsEmpty returns true if the stack has no entries
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Routes returns the routes on the stack, bottom first
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	for i, view := range s.entries {
		routes[i] = view.Route
	}
	return routes
}
