// Package history implements the editor undo/redo engine: a bounded,
// branch-discarding, deduplicated list of theme snapshots with a cursor.
// The engine is pure state machine; debounce timing lives in the scheduling
// adapter next door.
package history

// MaxSize caps the retained snapshots. When the list overflows the oldest
// entry is dropped and the cursor clamped.
const MaxSize = 30

type replayState uint8

const (
	stateIdle replayState = iota
	// stateReplaying swallows exactly one push: the state-change
	// notification caused by applying an undo/redo snapshot.
	stateReplaying
)

type History struct {
	entries []Snapshot
	cursor  int
	state   replayState
}

// New seeds the history with the state present when the editor mounted.
func New(initial Snapshot) *History {
	return &History{
		entries: []Snapshot{initial.Clone()},
		cursor:  0,
	}
}

// Push records a new snapshot. It is a no-op (returning false) when invoked
// as the echo of an undo/redo replay, or when the snapshot is value-equal to
// the current entry. Any redo branch beyond the cursor is discarded before
// appending.
func (h *History) Push(s Snapshot) bool {
	if h.state == stateReplaying {
		h.state = stateIdle
		return false
	}
	if s.Equal(h.entries[h.cursor]) {
		return false
	}

	h.entries = append(h.entries[:h.cursor+1], s.Clone())
	if len(h.entries) > MaxSize {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1
	return true
}

// Undo moves the cursor back and returns the snapshot there. At the boundary
// it reports false and changes nothing. A successful undo arms the replay
// suppression so the resulting state-change notification is not re-recorded.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.cursor--
	h.state = stateReplaying
	return h.entries[h.cursor].Clone(), true
}

// Redo moves the cursor forward and returns the snapshot there, arming the
// same suppression as Undo.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.cursor++
	h.state = stateReplaying
	return h.entries[h.cursor].Clone(), true
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

func (h *History) Len() int {
	return len(h.entries)
}

// Current returns the snapshot at the cursor.
func (h *History) Current() Snapshot {
	return h.entries[h.cursor].Clone()
}
