// Package selection provides a generic cursor-addressable list used for the
// schedule lines, the experiment picker, and the scheduling-mode picker.
// Navigation is total: every operation is a no-op to "no selection" on an
// empty list, and never fails.
package selection

// List pairs an ordered sequence with an optional cursor. The zero value is
// unusable; construct with New so the cursor starts unselected.
type List[T any] struct {
	Items  []T
	cursor int
}

// New returns a list over items with no selection.
func New[T any](items []T) List[T] {
	return List[T]{Items: items, cursor: -1}
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.Items) }

// Index returns the cursor position, or -1 when nothing is selected.
func (l *List[T]) Index() int {
	if l.cursor < 0 || l.cursor >= len(l.Items) {
		return -1
	}
	return l.cursor
}

// Selected returns the item under the cursor.
func (l *List[T]) Selected() (T, bool) {
	if i := l.Index(); i >= 0 {
		return l.Items[i], true
	}
	var zero T
	return zero, false
}

// Next moves the cursor one position forward, wrapping past the last index
// to 0. With no prior selection the cursor lands on 0.
func (l *List[T]) Next() {
	if len(l.Items) == 0 {
		l.cursor = -1
		return
	}
	if l.cursor < 0 || l.cursor >= len(l.Items)-1 {
		l.cursor = 0
		return
	}
	l.cursor++
}

// Previous moves the cursor one position back, wrapping before index 0 to
// the last index. With no prior selection the cursor lands on 0.
func (l *List[T]) Previous() {
	if len(l.Items) == 0 {
		l.cursor = -1
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	if l.cursor == 0 {
		l.cursor = len(l.Items) - 1
		return
	}
	l.cursor--
}

// First jumps the cursor to index 0.
func (l *List[T]) First() {
	if len(l.Items) == 0 {
		l.cursor = -1
		return
	}
	l.cursor = 0
}

// Last jumps the cursor to the final index.
func (l *List[T]) Last() {
	l.cursor = len(l.Items) - 1
}

// Select places the cursor on i if i is a valid index.
func (l *List[T]) Select(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	l.cursor = i
	return true
}

// ClearSelection unselects the cursor. Any viewport offset a view keeps for
// this list is its own; clearing the selection must not reset it.
func (l *List[T]) ClearSelection() {
	l.cursor = -1
}
