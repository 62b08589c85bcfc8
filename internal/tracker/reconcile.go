package tracker

import "github.com/julianstephens/habitflow/internal/models"

// mergePersisted reconciles a persisted habit snapshot with the seed
// registry. Counts are never trusted from the snapshot; they are zeroed
// here and re-derived from today's log by project().
//
// Rules:
//   - empty snapshot (first run): the full seed set applies.
//   - id in both seed and snapshot: seed definition with goal and unit
//     carried forward from the snapshot.
//   - id only in the snapshot (habit added by the user, or a seed key
//     retired in a later release): carried forward as-is.
//   - id only in the seed while the snapshot is non-empty: the user
//     deleted it; it stays deleted.
func mergePersisted(seed, persisted map[string]models.Habit) map[string]models.Habit {
	if len(persisted) == 0 {
		out := make(map[string]models.Habit, len(seed))
		for id, h := range seed {
			h.Count = 0
			out[id] = h
		}
		return out
	}

	out := make(map[string]models.Habit, len(persisted))
	for id, p := range persisted {
		if s, ok := seed[id]; ok {
			s.Goal = p.Goal
			if p.Unit != "" {
				s.Unit = p.Unit
			}
			s.Count = 0
			out[id] = s
			continue
		}
		p.Count = 0
		out[id] = p
	}
	return out
}

// project copies today's recorded counts onto the registry's live view.
// Habits without an entry today read 0. Re-running this after every
// mutation and before every read makes day rollover implicit: on the
// first touch of a new day all counts naturally drop to 0.
func (t *Tracker) project() {
	today := t.logs.Day(t.todayKey())
	for _, id := range t.registry.IDs() {
		entry, ok := today.Habits[id]
		if !ok {
			t.registry.SetCount(id, 0)
			continue
		}
		t.registry.SetCount(id, entry.Count)
	}
}
