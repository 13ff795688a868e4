// Package batch generates many independent volcano instances on a bounded
// pool of workers.
package batch

import (
	"runtime"
	"sort"
	"sync"

	"synthvolcano/internal/core"
	"synthvolcano/internal/volcano"
)

// Summary is the compact record kept for every generated instance.
type Summary struct {
	Index      int
	Seed       int64
	Params     volcano.Parameters
	Stats      volcano.ElevationStats
	RangeWidth int
	Timings    []core.StageTiming
	Err        error
}

// Visitor receives every finished instance. It is called from a single
// goroutine in completion order; the volcano is nil when Err is set.
type Visitor func(v *volcano.Volcano, s Summary)

type result struct {
	v *volcano.Volcano
	s Summary
}

// Seed returns the seed used for the i-th instance of a batch.
func Seed(base int64, i int) int64 {
	return base + int64(i)
}

// Run generates count instances from base, each with its own seed, using at
// most workers goroutines (NumCPU when workers <= 0). The returned summaries
// are ordered by index. Instances that fail are reported through
// Summary.Err and do not stop the batch.
func Run(base volcano.Config, count, workers int, visit Visitor) []Summary {
	if count <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}

	jobs := make(chan int)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- generate(base, idx)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < count; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	all := make([]Summary, 0, count)
	for res := range results {
		if visit != nil {
			visit(res.v, res.s)
		}
		all = append(all, res.s)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

func generate(base volcano.Config, idx int) result {
	cfg := base
	cfg.Seed = Seed(base.Seed, idx)
	s := Summary{Index: idx, Seed: cfg.Seed}

	v, err := volcano.Generate(cfg)
	if err != nil {
		s.Err = err
		return result{s: s}
	}
	s.Params = v.Parameters()
	s.Stats = v.Stats()
	s.RangeWidth = v.ProjectedDEM().W
	s.Timings = v.Timings()
	return result{v: v, s: s}
}

// Failures counts the summaries that carry an error.
func Failures(all []Summary) int {
	n := 0
	for _, s := range all {
		if s.Err != nil {
			n++
		}
	}
	return n
}
