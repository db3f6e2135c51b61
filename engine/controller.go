// Package engine owns the view state: the selected season, the live particle
// set and the batch safety timeouts
package engine

import (
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/lixenwraith/seasons/motion"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/season"
)

// Chimer plays the selection sound of a season
type Chimer interface {
	Chime(s season.Season)
}

type silentChimer struct{}

func (silentChimer) Chime(season.Season) {}

// Options configure a Controller, zero values get defaults
type Options struct {
	Settings particle.Settings
	Rand     *rand.Rand
	Logger   *slog.Logger
	Chimer   Chimer
}

// Stats are the lifetime counters of a session
type Stats struct {
	Live      int
	Pending   int
	Spawned   uint64
	Completed uint64
	Reaped    uint64
}

// Controller is the single owner of view state
// All methods run on the loop goroutine, there is no internal locking
type Controller struct {
	spawner *particle.Spawner
	store   *particle.Store
	reaper  *particle.Reaper
	log     *slog.Logger
	chimer  Chimer

	width, height int

	current    season.Season
	selected   bool
	selectedAt time.Time
	firstAt    time.Time
	fromColors season.Colors

	focus     int
	pressed   int
	pressedAt time.Time
	started   time.Time

	exits []particle.Exit

	completed uint64
	reaped    uint64
}

// NewController creates a controller for a width x height viewport starting at now
func NewController(opts Options, now time.Time, width, height int) *Controller {
	if opts.Settings == (particle.Settings{}) {
		opts.Settings = particle.DefaultSettings()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(now.UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Chimer == nil {
		opts.Chimer = silentChimer{}
	}

	return &Controller{
		spawner:    particle.NewSpawner(opts.Rand, opts.Settings),
		store:      particle.NewStore(),
		reaper:     particle.NewReaper(),
		log:        opts.Logger,
		chimer:     opts.Chimer,
		width:      width,
		height:     height,
		fromColors: season.DefaultColors,
		pressed:    -1,
		started:    now,
	}
}

// Resize updates the viewport used for future batches
// Live particles keep the geometry they were spawned with
func (c *Controller) Resize(width, height int) {
	c.width, c.height = width, height
	c.log.Debug("viewport resized", "width", width, "height", height)
}

// Viewport returns the current viewport size
func (c *Controller) Viewport() (int, int) {
	return c.width, c.height
}

// Select makes s current and spawns its batch
func (c *Controller) Select(s season.Season, now time.Time) particle.Batch {
	cfg := season.Lookup(s)

	c.fromColors = c.Palette(now)
	if !c.selected {
		c.firstAt = now
	}
	c.current = s
	c.selected = true
	c.selectedAt = now
	c.focus = int(s)

	b := c.spawner.Spawn(s, now, c.width, c.height)
	c.store.Add(b)
	c.reaper.Schedule(b)
	c.chimer.Chime(s)

	c.log.Info("batch spawned",
		"batch", b.ID.String(),
		"season", s.String(),
		"label", cfg.Label,
		"size", len(b.Sprites),
		"live", c.store.Len(),
	)
	return b
}

// SelectAt selects the season of tile index, false when out of range
func (c *Controller) SelectAt(index int, now time.Time) (particle.Batch, bool) {
	if index < 0 || index >= season.Count {
		return particle.Batch{}, false
	}
	c.pressed = index
	c.pressedAt = now
	return c.Select(season.All()[index], now), true
}

// Press selects the focused tile
func (c *Controller) Press(now time.Time) particle.Batch {
	b, _ := c.SelectAt(c.focus, now)
	return b
}

// MoveFocus moves the tile focus on a grid of cols columns, clamped at the edges
func (c *Controller) MoveFocus(dx, dy, cols int) {
	if cols <= 0 {
		cols = season.Count
	}
	col := c.focus%cols + dx
	row := c.focus/cols + dy
	rows := (season.Count + cols - 1) / cols

	if col < 0 {
		col = 0
	}
	if col >= cols {
		col = cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}

	idx := row*cols + col
	if idx >= season.Count {
		idx = season.Count - 1
	}
	c.focus = idx
}

// Focus returns the focused tile index
func (c *Controller) Focus() int {
	return c.focus
}

// Pressed returns the last pressed tile and when, tile is -1 before any press
func (c *Controller) Pressed() (int, time.Time) {
	return c.pressed, c.pressedAt
}

// Complete handles the completion signal of one particle
// Duplicate or late signals are no-ops
func (c *Controller) Complete(id particle.ID) bool {
	if !c.store.Remove(id) {
		return false
	}
	c.completed++
	return true
}

// Update fires every batch timeout due at now and returns how many
// particles were reaped by them. Reaped sprites that were on screen keep
// fading out for ExitFade without being live
func (c *Controller) Update(now time.Time) int {
	c.exits = slices.DeleteFunc(c.exits, func(e particle.Exit) bool {
		return e.Done(now, parameter.ExitFade)
	})

	total := 0
	for _, d := range c.reaper.Due(now) {
		for _, sp := range c.store.Batch(d.Batch) {
			if e, ok := particle.NewExit(sp, now); ok {
				c.exits = append(c.exits, e)
			}
		}
		n := c.store.RemoveBatch(d.Batch)
		total += n
		if n > 0 {
			c.log.Warn("batch timeout reaped stragglers", "batch", d.Batch.String(), "reaped", n)
		} else {
			c.log.Debug("batch timeout fired", "batch", d.Batch.String())
		}
	}
	c.reaped += uint64(total)
	return total
}

// Current returns the selected season, false before any selection
func (c *Controller) Current() (season.Season, bool) {
	return c.current, c.selected
}

// Config returns the selected season config, false before any selection
func (c *Controller) Config() (season.Config, bool) {
	if !c.selected {
		return season.Config{}, false
	}
	return season.Lookup(c.current), true
}

// SelectedAt returns the instant of the last selection
func (c *Controller) SelectedAt() time.Time {
	return c.selectedAt
}

// FirstSelectedAt returns the instant of the first selection of the session
func (c *Controller) FirstSelectedAt() time.Time {
	return c.firstAt
}

// Started returns the instant the controller was created
func (c *Controller) Started() time.Time {
	return c.started
}

// Palette returns the colors in effect at now, crossfading after a selection
func (c *Controller) Palette(now time.Time) season.Colors {
	if !c.selected {
		return season.DefaultColors
	}
	target := season.Lookup(c.current).Colors
	p := motion.Progress(now.Sub(c.selectedAt).Seconds(), parameter.BackgroundTransition.Seconds())
	return c.fromColors.Blend(target, motion.EaseInOut(p))
}

// Sprites returns the live particles in render order
func (c *Controller) Sprites() []particle.Sprite {
	return c.store.Snapshot()
}

// Exits returns the reaped sprites still fading out
func (c *Controller) Exits() []particle.Exit {
	return slices.Clone(c.exits)
}

// Live reports whether a particle is still in the active set
func (c *Controller) Live(id particle.ID) bool {
	return c.store.Has(id)
}

// Settings returns the spawn tuning in use
func (c *Controller) Settings() particle.Settings {
	return c.spawner.Settings()
}

// Stats returns the session counters
func (c *Controller) Stats() Stats {
	return Stats{
		Live:      c.store.Len(),
		Pending:   c.reaper.Pending(),
		Spawned:   c.spawner.Spawned(),
		Completed: c.completed,
		Reaped:    c.reaped,
	}
}
