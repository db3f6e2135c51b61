package particle

import (
	"io"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"

	"github.com/lixenwraith/seasons/season"
)

// Spawner creates batches with session-unique particle IDs
// Not safe for concurrent use, owned by the controller
type Spawner struct {
	rng      *rand.Rand
	entropy  io.Reader
	settings Settings
	next     ID
}

// NewSpawner creates a spawner drawing all randomness from rng
func NewSpawner(rng *rand.Rand, settings Settings) *Spawner {
	return &Spawner{
		rng:      rng,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(rng.Int63())), 0),
		settings: settings,
		next:     1,
	}
}

// Settings returns the spawn tuning in use
func (sp *Spawner) Settings() Settings {
	return sp.settings
}

// Spawned returns how many particles were created so far
func (sp *Spawner) Spawned() uint64 {
	return uint64(sp.next - 1)
}

// Spawn creates a batch for s at now, sized to a width x height viewport
// Glyphs are sampled uniformly with replacement from the season palette
func (sp *Spawner) Spawn(s season.Season, now time.Time, width, height int) Batch {
	cfg := season.Lookup(s)
	batchID := ulid.MustNew(ulid.Timestamp(now), sp.entropy)

	sprites := lo.Times(sp.settings.BatchSize, func(i int) Sprite {
		id := sp.next
		sp.next++
		return Sprite{
			Particle: Particle{
				ID:     id,
				Batch:  batchID,
				Season: s,
				Glyph:  cfg.Glyphs[sp.rng.Intn(len(cfg.Glyphs))],
				Delay:  time.Duration(i) * sp.settings.Stagger,
			},
			Motion: NewParams(sp.rng, width, height, sp.settings),
			Born:   now,
		}
	})

	return Batch{
		ID:       batchID,
		Season:   s,
		Created:  now,
		Deadline: now.Add(sp.settings.Timeout),
		Sprites:  sprites,
	}
}
