package tracker

import (
	"sort"
	"testing"

	"github.com/julianstephens/habitflow/internal/models"
)

func TestRegistry_IDs(t *testing.T) {
	r := NewRegistry()
	if got := r.IDs(); len(got) != 0 {
		t.Fatalf("empty registry IDs = %v, want none", got)
	}

	r.Add(models.Habit{ID: "water"})
	r.Add(models.Habit{ID: "sleep"})
	r.Add(models.Habit{ID: "steps"})

	ids := r.IDs()
	sort.Strings(ids)
	want := []string{"sleep", "steps", "water"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}
