package nanomesh

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// GenStats counts how fibers were placed during one generation run.
type GenStats struct {
	Placed   int
	Fallback int
}

// BuildNanomesh samples cfg.Fiber.Count fibers and merges their solids into
// one mesh. Descriptor sampling is strictly sequential on the sampler's
// seeded source, so a given seed reproduces the population exactly; the
// per-fiber solid builds are pure and fan out across CPUs, with results
// slotted by index and merged in order. Output is therefore deterministic
// for a fixed config.
func BuildNanomesh(cfg *Config) (*Mesh, GenStats) {
	n := cfg.Fiber.Count
	sampler := NewSampler(cfg.Sheet, cfg.Fiber, cfg.Seed)

	fibers := make([]Fiber, n)
	var stats GenStats
	for i := range fibers {
		f, placement := sampler.Sample()
		fibers[i] = f
		if placement == Fallback {
			stats.Fallback++
		} else {
			stats.Placed++
		}
	}

	solids := make([]*Mesh, n)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var built int64
	step := int64(1)
	if n >= 100 {
		step = int64(n / 100)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(wid int) {
			defer wg.Done()
			for i := wid; i < n; i += workers {
				solids[i] = BuildFiberSolid(fibers[i], cfg.Fiber.Radius(), cfg.Fiber.Sections, cfg.Fiber.Subdivide)
				if c := atomic.AddInt64(&built, 1); c%step == 0 {
					fmt.Printf("[MESH] %.2f%%\n", float64(c)*100/float64(n))
				}
			}
		}(w)
	}
	wg.Wait()

	return Assemble(solids), stats
}
