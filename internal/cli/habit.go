package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit's goal, unit, or display fields."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit (history is kept)."`
}

type HabitAddCmd struct {
	Name  string  `arg:"" help:"Habit name."`
	Goal  float64 `help:"Daily goal." default:"1"`
	Unit  string  `help:"Unit label." default:"times"`
	Step  float64 `help:"Increment step." default:"1"`
	Icon  string  `help:"Icon tag." default:""`
	Color string  `help:"Color tag." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	for _, h := range ctx.Tracker.Habits() {
		if h.Name == c.Name {
			return fmt.Errorf("habit with name %q already exists", c.Name)
		}
	}

	habit := models.Habit{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Goal:  c.Goal,
		Unit:  c.Unit,
		Step:  c.Step,
		Icon:  c.Icon,
		Color: c.Color,
	}
	if err := validation.ValidateHabit(habit); err != nil {
		return err
	}

	if err := ctx.Tracker.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (goal %s %s, step %s)\n",
		habit.Name, formatCount(habit.Goal), habit.Unit, formatCount(habit.Step))

	ctx.Dispatcher.Flush()
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range sortedHabits(habits) {
		fmt.Printf("%-20s goal %s %s, step %s\n",
			h.Name, formatCount(h.Goal), h.Unit, formatCount(h.Step))
	}
	return nil
}

type HabitEditCmd struct {
	Habit string   `arg:"" help:"Habit name or id."`
	Name  *string  `help:"New display name."`
	Goal  *float64 `help:"New daily goal."`
	Unit  *string  `help:"New unit label."`
	Icon  *string  `help:"New icon tag."`
	Color *string  `help:"New color tag."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	h, ok := findHabit(ctx.Tracker.Habits(), c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	upd := models.HabitUpdate{
		Name:  c.Name,
		Goal:  c.Goal,
		Unit:  c.Unit,
		Icon:  c.Icon,
		Color: c.Color,
	}
	if err := validation.ValidateHabitUpdate(upd); err != nil {
		return err
	}

	if err := ctx.Tracker.UpdateHabit(h.ID, upd); err != nil {
		return err
	}

	updated, _ := ctx.Tracker.Habit(h.ID)
	fmt.Printf("Updated habit: %s (goal %s %s)\n", updated.Name, formatCount(updated.Goal), updated.Unit)

	ctx.Dispatcher.Flush()
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	h, ok := findHabit(ctx.Tracker.Habits(), c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	if err := ctx.Tracker.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	fmt.Println("(Logged history for this habit is kept and stays visible in exports.)")

	ctx.Dispatcher.Flush()
	return nil
}
