package parallel

import (
	"runtime"
	"sync"
)

// Workers returns the worker count to use when n <= 0 is passed to Map:
// GOMAXPROCS(0), an OS-level pool sized to hardware parallelism.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Map runs fn once per item in items, using at most workers goroutines,
// and returns results aligned with items by index (results[i] is
// fn(i, items[i])). workers <= 0 selects runtime.GOMAXPROCS(0).
//
// Map is the engine's fan-out primitive: StaticSelective.Search
// fanning a mutation across individuals, and Simulator.RunEpisodes
// fanning an episode across agents. Each index is claimed by exactly
// one goroutine, so fn may assume exclusive ownership of items[i] for
// its own duration — the per-worker "deep copy before claim" discipline
// is still the caller's responsibility (fn receives items[i] itself,
// not a pre-cloned copy).
func Map[T any, R any](workers int, items []T, fn func(index int, item T) R) []R {
	n := len(items)
	results := make([]R, n)
	if n == 0 {
		return results
	}

	w := Workers(workers)
	if w > n {
		w = n
	}

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(w)
	for g := 0; g < w; g++ {
		go func() {
			defer wg.Done()
			for idx := range next {
				results[idx] = fn(idx, items[idx])
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}

// ForEach runs fn once per item using at most workers goroutines,
// discarding return values; a thin convenience wrapper over Map for
// side-effecting fan-outs that don't need per-item results.
func ForEach[T any](workers int, items []T, fn func(index int, item T)) {
	Map(workers, items, func(idx int, item T) struct{} {
		fn(idx, item)
		return struct{}{}
	})
}
