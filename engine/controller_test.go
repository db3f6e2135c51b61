package engine

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/season"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingChimer struct {
	played []season.Season
}

func (r *recordingChimer) Chime(s season.Season) { r.played = append(r.played, s) }

func newTestController(t *testing.T) (*Controller, *MockTimeProvider, *recordingChimer) {
	t.Helper()
	clock := NewMockTimeProvider(epoch)
	chimer := &recordingChimer{}
	c := NewController(Options{
		Rand:   rand.New(rand.NewSource(1)),
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Chimer: chimer,
	}, clock.Now(), 80, 24)
	return c, clock, chimer
}

func TestSelectAddsBatch(t *testing.T) {
	for _, s := range season.All() {
		c, clock, _ := newTestController(t)
		before := c.Stats().Live

		b := c.Select(s, clock.Now())

		assert.Equal(t, before+30, c.Stats().Live, s.String())
		assert.Len(t, b.Sprites, 30)
		cfg := season.Lookup(s)
		for _, sp := range c.Sprites() {
			assert.True(t, cfg.Has(sp.Glyph))
		}
	}
}

func TestSelectSpringScenario(t *testing.T) {
	c, clock, chimer := newTestController(t)

	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, season.DefaultColors, c.Palette(clock.Now()))

	c.Select(season.Spring, clock.Now())

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, season.Spring, cur)

	cfg, ok := c.Config()
	require.True(t, ok)
	assert.Equal(t, "春 (はる)", cfg.Label)

	// Palette settles on spring after the crossfade
	assert.Equal(t, season.Lookup(season.Spring).Colors, c.Palette(clock.Advance(time.Second)))

	assert.Equal(t, 30, c.Stats().Live)
	glyphs := lo.Uniq(lo.Map(c.Sprites(), func(sp particle.Sprite, _ int) string { return sp.Glyph }))
	assert.Subset(t, season.Lookup(season.Spring).Glyphs, glyphs)
	assert.Equal(t, []season.Season{season.Spring}, chimer.played)
}

func TestPaletteCrossfade(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Select(season.Winter, clock.Now())

	start := c.Palette(clock.Now())
	assert.Equal(t, season.DefaultColors, start)

	mid := c.Palette(clock.Now().Add(400 * time.Millisecond))
	assert.NotEqual(t, season.DefaultColors, mid)
	assert.NotEqual(t, season.Lookup(season.Winter).Colors, mid)
}

func TestOverlappingSelectionsAccumulate(t *testing.T) {
	c, clock, _ := newTestController(t)

	c.Select(season.Spring, clock.Now())
	c.Select(season.Winter, clock.Advance(100*time.Millisecond))

	counts := lo.CountValuesBy(c.Sprites(), func(sp particle.Sprite) season.Season { return sp.Season })
	assert.Equal(t, 30, counts[season.Spring])
	assert.Equal(t, 30, counts[season.Winter])
	assert.Equal(t, 2, c.Stats().Pending)

	cur, _ := c.Current()
	assert.Equal(t, season.Winter, cur)
}

func TestUniqueIDsAcrossBatches(t *testing.T) {
	c, clock, _ := newTestController(t)
	for i := 0; i < 8; i++ {
		c.Select(season.All()[i%season.Count], clock.Advance(time.Millisecond))
	}
	ids := lo.Map(c.Sprites(), func(sp particle.Sprite, _ int) particle.ID { return sp.ID })
	assert.Len(t, lo.Uniq(ids), 240)
}

func TestCompleteIdempotent(t *testing.T) {
	c, clock, _ := newTestController(t)
	b := c.Select(season.Autumn, clock.Now())
	id := b.Sprites[0].ID

	assert.True(t, c.Complete(id))
	assert.False(t, c.Complete(id))
	assert.Equal(t, 29, c.Stats().Live)
	assert.Equal(t, uint64(1), c.Stats().Completed)
	assert.False(t, c.Live(id))
}

func TestTimeoutReapsWithoutCompletion(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Select(season.Summer, clock.Now())

	assert.Equal(t, 0, c.Update(clock.Advance(24*time.Second)))
	assert.Equal(t, 30, c.Stats().Live)

	assert.Equal(t, 30, c.Update(clock.Advance(time.Second)))
	assert.Equal(t, 0, c.Stats().Live)
	assert.Equal(t, 0, c.Stats().Pending)
	assert.Equal(t, uint64(30), c.Stats().Reaped)
}

func TestTimeoutAfterCompletionIsNoop(t *testing.T) {
	c, clock, _ := newTestController(t)
	b := c.Select(season.Winter, clock.Now())

	// Completion removes everything first, then the timeout races in
	for _, sp := range b.Sprites {
		require.True(t, c.Complete(sp.ID))
	}
	assert.Equal(t, 0, c.Update(clock.Advance(25*time.Second)))

	st := c.Stats()
	assert.Equal(t, uint64(30), st.Completed)
	assert.Equal(t, uint64(0), st.Reaped)

	// Late completion signals after the timeout do nothing
	assert.False(t, c.Complete(b.Sprites[0].ID))
}

func TestTimeoutOnlyTouchesOwnBatch(t *testing.T) {
	c, clock, _ := newTestController(t)
	first := c.Select(season.Spring, clock.Now())
	second := c.Select(season.Autumn, clock.Advance(10*time.Second))

	assert.Equal(t, 30, c.Update(clock.Advance(15*time.Second)))
	for _, sp := range first.Sprites {
		assert.False(t, c.Live(sp.ID))
	}
	for _, sp := range second.Sprites {
		assert.True(t, c.Live(sp.ID))
	}
	assert.Equal(t, 30, c.Update(clock.Advance(10*time.Second)))
}

func TestEveryParticleEventuallyRemoved(t *testing.T) {
	c, clock, _ := newTestController(t)
	for i := 0; i < 4; i++ {
		c.Select(season.All()[i], clock.Advance(time.Second))
	}

	// Deliver completion for half of the particles only, as frames would
	for step := 0; step < 30*60; step++ {
		now := clock.Advance(time.Second / 60)
		for _, sp := range c.Sprites() {
			if sp.ID%2 == 0 && sp.Frame(now).Phase == particle.Done {
				c.Complete(sp.ID)
			}
		}
		c.Update(now)
	}

	st := c.Stats()
	assert.Equal(t, 0, st.Live)
	assert.Equal(t, uint64(120), st.Completed+st.Reaped)
	assert.Equal(t, uint64(60), st.Reaped)
}

func TestFocusMovement(t *testing.T) {
	c, clock, _ := newTestController(t)
	assert.Equal(t, 0, c.Focus())

	c.MoveFocus(1, 0, 4)
	assert.Equal(t, 1, c.Focus())
	c.MoveFocus(5, 0, 4)
	assert.Equal(t, 3, c.Focus())
	c.MoveFocus(0, 1, 4)
	assert.Equal(t, 3, c.Focus())

	// 2x2 grid
	c.MoveFocus(-9, -9, 2)
	assert.Equal(t, 0, c.Focus())
	c.MoveFocus(0, 1, 2)
	assert.Equal(t, 2, c.Focus())
	c.MoveFocus(1, 0, 2)
	assert.Equal(t, 3, c.Focus())

	b := c.Press(clock.Now())
	assert.Equal(t, season.Winter, b.Season)
	tile, at := c.Pressed()
	assert.Equal(t, 3, tile)
	assert.Equal(t, clock.Now(), at)
}

func TestSelectFocusesTile(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Select(season.Autumn, clock.Now())
	assert.Equal(t, int(season.Autumn), c.Focus())

	_, ok := c.SelectAt(7, clock.Now())
	assert.False(t, ok)
}

func TestResizeAffectsOnlyNewBatches(t *testing.T) {
	c, clock, _ := newTestController(t)
	first := c.Select(season.Spring, clock.Now())

	c.Resize(200, 60)
	w, h := c.Viewport()
	assert.Equal(t, 200, w)
	assert.Equal(t, 60, h)

	second := c.Select(season.Spring, clock.Now())
	assert.Equal(t, 26.0, first.Sprites[0].Motion.EndY)
	assert.Equal(t, 62.0, second.Sprites[0].Motion.EndY)
}

func TestDefaultsApplied(t *testing.T) {
	c := NewController(Options{}, epoch, 80, 24)
	assert.Equal(t, particle.DefaultSettings(), c.Settings())
	assert.Equal(t, epoch, c.Started())
	c.Select(season.Spring, epoch)
	assert.Equal(t, epoch, c.SelectedAt())
}

func TestFirstSelectedAtIsSticky(t *testing.T) {
	c, clock, _ := newTestController(t)
	assert.True(t, c.FirstSelectedAt().IsZero())

	first := clock.Now()
	c.Select(season.Autumn, first)
	later := clock.Advance(2 * time.Second)
	c.Select(season.Winter, later)

	assert.Equal(t, first, c.FirstSelectedAt())
	assert.Equal(t, later, c.SelectedAt())
}

func TestReapedSpritesFadeOut(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	settings := particle.DefaultSettings()
	settings.Timeout = 5 * time.Second
	c := NewController(Options{
		Settings: settings,
		Rand:     rand.New(rand.NewSource(1)),
		Logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}, clock.Now(), 80, 24)

	c.Select(season.Autumn, clock.Now())
	require.Equal(t, 30, c.Update(clock.Advance(5*time.Second)))
	assert.Equal(t, 0, c.Stats().Live)

	// Only sprites that were on screen fade, none of them is live
	exits := c.Exits()
	require.NotEmpty(t, exits)
	assert.Less(t, len(exits), 30)
	for _, e := range exits {
		assert.False(t, c.Live(e.ID))
		assert.Equal(t, particle.Animating, e.From.Phase)
	}

	c.Update(clock.Advance(parameter.ExitFade / 2))
	assert.Len(t, c.Exits(), len(exits))

	c.Update(clock.Advance(parameter.ExitFade / 2))
	assert.Empty(t, c.Exits())
	assert.Equal(t, uint64(30), c.Stats().Reaped)
}

func TestCompletedSpritesDoNotFade(t *testing.T) {
	c, clock, _ := newTestController(t)
	b := c.Select(season.Spring, clock.Now())
	for _, sp := range b.Sprites {
		c.Complete(sp.ID)
	}
	c.Update(clock.Advance(25 * time.Second))
	assert.Empty(t, c.Exits())
}
