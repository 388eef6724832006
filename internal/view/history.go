package view

// Snapshot records where the user was before a jump: the viewport's top
// offset and the cursor.
type Snapshot struct {
	TopOffset uint64
	Cursor    Cursor
}

// History is the jump-back stack, most recent entry last. Jump-class
// commands (page, home, end, go-to-offset) push before mutating state;
// step-class commands never push, so fine navigation does not pile up one
// entry per keystroke.
type History struct {
	entries []Snapshot
}

// Push appends a snapshot.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot. The second return value
// is false when the stack is empty.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	s := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return s, true
}

// Len returns the number of stacked snapshots.
func (h *History) Len() int {
	return len(h.entries)
}
