package tracker

import "github.com/julianstephens/habitflow/internal/models"

// Registry is the in-memory habit registry: habit id -> definition plus
// the live count projection for today.
type Registry struct {
	habits map[string]models.Habit
}

func NewRegistry() *Registry {
	return &Registry{
		habits: map[string]models.Habit{},
	}
}

// Add inserts or overwrites a habit by id.
func (r *Registry) Add(h models.Habit) {
	r.habits[h.ID] = h
}

// Update merges partial fields into an existing habit. It never creates
// an entry implicitly; it reports false when the id is unknown.
func (r *Registry) Update(id string, upd models.HabitUpdate) bool {
	h, ok := r.habits[id]
	if !ok {
		return false
	}

	if upd.Name != nil {
		h.Name = *upd.Name
	}
	if upd.Goal != nil {
		h.Goal = *upd.Goal
	}
	if upd.Unit != nil {
		h.Unit = *upd.Unit
	}
	if upd.Icon != nil {
		h.Icon = *upd.Icon
	}
	if upd.Color != nil {
		h.Color = *upd.Color
	}

	r.habits[id] = h
	return true
}

// Remove deletes a habit. Historical log entries are not touched; history
// stays readable for removed habits by falling back to the raw id.
func (r *Registry) Remove(id string) {
	delete(r.habits, id)
}

func (r *Registry) Get(id string) (models.Habit, bool) {
	h, ok := r.habits[id]
	return h, ok
}

// SetCount updates the live count projection for a habit. No-op for
// unknown ids.
func (r *Registry) SetCount(id string, count float64) {
	h, ok := r.habits[id]
	if !ok {
		return
	}
	h.Count = count
	r.habits[id] = h
}

// List returns a copy of the full current mapping.
func (r *Registry) List() map[string]models.Habit {
	out := make(map[string]models.Habit, len(r.habits))
	for id, h := range r.habits {
		out[id] = h
	}
	return out
}

// Replace swaps the entire registry contents.
func (r *Registry) Replace(habits map[string]models.Habit) {
	r.habits = make(map[string]models.Habit, len(habits))
	for id, h := range habits {
		r.habits[id] = h
	}
}

// IDs returns the ids of all registered habits, in no particular order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.habits))
	for id := range r.habits {
		out = append(out, id)
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.habits)
}
