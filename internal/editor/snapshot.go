package editor

import (
	"blander/internal/history"
	"blander/internal/primitives"
	"blander/internal/scene"
)

// Capture returns a by-value snapshot of the session.
func (s *Session) Capture() history.Snapshot {
	snap := history.Snapshot{
		Counters:      make(map[string]int),
		TransformMode: s.mode.String(),
		NextID:        s.scene.NextID(),
	}
	for _, e := range s.scene.Entities() {
		snap.Entities = append(snap.Entities, history.RecordEntity(e))
	}
	for k, n := range s.scene.Counters() {
		snap.Counters[string(k)] = n
	}
	if s.selected != nil {
		snap.SelectedID = s.selected.ID
	}
	return snap
}

// Restore replaces the live state with snap. Entities are rebuilt from copies of the recorded
// arrays so the snapshot stays independent. Commits triggered while restoring are dropped.
func (s *Session) Restore(snap history.Snapshot) {
	s.restoring = true
	defer func() { s.restoring = false }()

	s.ExitEditMode()
	s.gesture = gesture{}
	s.selected = nil
	s.scene.Clear()

	counters := make(map[primitives.Kind]int, len(snap.Counters))
	for k, n := range snap.Counters {
		counters[primitives.Kind(k)] = n
	}
	s.scene.SetCounters(counters)
	for _, r := range snap.Entities {
		s.scene.Insert(r.Entity())
	}
	s.scene.SetNextID(snap.NextID)

	var target *scene.Entity
	if snap.SelectedID != 0 {
		target = s.scene.Find(snap.SelectedID)
	}
	s.SelectEntity(target)

	if m, err := ParseTransformMode(snap.TransformMode); err == nil {
		s.mode = m
	}
	Logger().Debug("restored", "entities", s.scene.Len(), "selected", snap.SelectedID)
	s.notify()
}
