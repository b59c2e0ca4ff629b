// Package history implements bounded snapshot-based undo and redo. Consecutive commits of the
// same state are collapsed by comparing a canonical hash of each snapshot.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"
)

// DefaultLimit is the number of snapshots kept when no limit is configured.
const DefaultLimit = 50

type entry struct {
	snap Snapshot
	hash string
}

// History is an ordered list of snapshots with a cursor on the current one.
type History struct {
	entries []entry
	index   int
	limit   int
}

// New returns an empty history keeping at most limit snapshots.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{index: -1, limit: limit}
}

// Hash returns the canonical digest of s. Snapshots with equal contents hash equally.
func Hash(s Snapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("hash snapshot: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Commit appends a copy of s after the cursor. It reports false without changing anything when s
// equals the current snapshot. Snapshots after the cursor are discarded and the oldest snapshot
// is evicted once the limit is exceeded.
func (h *History) Commit(s Snapshot) (bool, error) {
	sum, err := Hash(s)
	if err != nil {
		return false, err
	}
	if h.index >= 0 && h.entries[h.index].hash == sum {
		return false, nil
	}
	snap, err := copySnapshot(s)
	if err != nil {
		return false, err
	}
	h.entries = append(h.entries[:h.index+1], entry{snap: snap, hash: sum})
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.index = len(h.entries) - 1
	return true, nil
}

// Undo moves the cursor back and returns a copy of the snapshot to restore. It reports false at
// the earliest snapshot. The cursor stays put when the copy fails.
func (h *History) Undo() (Snapshot, bool, error) {
	if !h.CanUndo() {
		return Snapshot{}, false, nil
	}
	return h.move(h.index - 1)
}

// Redo moves the cursor forward and returns a copy of the snapshot to restore. It reports false
// at the latest snapshot. The cursor stays put when the copy fails.
func (h *History) Redo() (Snapshot, bool, error) {
	if !h.CanRedo() {
		return Snapshot{}, false, nil
	}
	return h.move(h.index + 1)
}

// Current returns a copy of the snapshot under the cursor.
func (h *History) Current() (Snapshot, bool) {
	if h.index < 0 {
		return Snapshot{}, false
	}
	return h.current()
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.index >= 0 && h.index < len(h.entries)-1 }

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }

// Index returns the cursor position, or -1 when empty.
func (h *History) Index() int { return h.index }

// Limit returns the maximum number of stored snapshots.
func (h *History) Limit() int { return h.limit }

// Reset drops every snapshot.
func (h *History) Reset() {
	h.entries = nil
	h.index = -1
}

func (h *History) current() (Snapshot, bool) {
	s, err := copySnapshot(h.entries[h.index].snap)
	if err != nil {
		return Snapshot{}, false
	}
	return s, true
}

func (h *History) move(to int) (Snapshot, bool, error) {
	s, err := copySnapshot(h.entries[to].snap)
	if err != nil {
		return Snapshot{}, false, err
	}
	h.index = to
	return s, true, nil
}

// copySnapshot is replaced in tests.
var copySnapshot = clone

// clone deep-copies s so stored snapshots never alias caller data.
func clone(s Snapshot) (Snapshot, error) {
	var out Snapshot
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		return Snapshot{}, fmt.Errorf("copy snapshot: %w", err)
	}
	return out, nil
}
