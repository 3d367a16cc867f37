// File: pkg/combine/worker.go
package combine

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// resolveWorkers returns n, or the number of CPUs when n is not positive.
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// forEach runs task for every index in [0, n) with at most workers tasks in
// flight and returns once all have finished. Each task must only write state
// owned by its own index.
func forEach(n, workers int, task func(i int)) {
	if n == 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(resolveWorkers(workers))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			task(i)
			return nil
		})
	}
	_ = g.Wait()
}
