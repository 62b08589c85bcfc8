package cli

import "fmt"

type TrackCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Times int    `help:"Apply the step this many times." default:"1"`
}

func (c *TrackCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	h, ok := findHabit(ctx.Tracker.Habits(), c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	for i := 0; i < c.Times; i++ {
		if err := ctx.Tracker.Track(h.ID); err != nil {
			return err
		}
	}

	updated, _ := ctx.Tracker.Habit(h.ID)
	fmt.Printf("%s: %s/%s %s\n", updated.Name, formatCount(updated.Count), formatCount(updated.Goal), updated.Unit)

	ctx.Dispatcher.Flush()
	return nil
}

type UntrackCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Times int    `help:"Apply the step this many times." default:"1"`
}

func (c *UntrackCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	if err := ctx.RequireProfile(); err != nil {
		return err
	}

	h, ok := findHabit(ctx.Tracker.Habits(), c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	for i := 0; i < c.Times; i++ {
		if err := ctx.Tracker.Untrack(h.ID); err != nil {
			return err
		}
	}

	updated, _ := ctx.Tracker.Habit(h.ID)
	fmt.Printf("%s: %s/%s %s\n", updated.Name, formatCount(updated.Count), formatCount(updated.Goal), updated.Unit)

	ctx.Dispatcher.Flush()
	return nil
}
