// Package parallel provides a chunked parallel-for used to render noise
// fields row by row. The noise generator itself is read-only during
// evaluation, so workers need no synchronization beyond the final wait.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default worker count for field rendering.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For executes fn for indices [start, end) across n workers. With n <= 1 it
// runs inline, which also makes single-worker runs deterministic in order.
func For(start, end, n int, fn func(i int)) {
	if n <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	total := end - start
	if total <= 0 {
		return
	}
	if n > total {
		n = total
	}

	var wg sync.WaitGroup
	chunkSize := (total + n - 1) / n

	for w := 0; w < n; w++ {
		chunkStart := start + w*chunkSize
		chunkEnd := chunkStart + chunkSize
		if chunkEnd > end {
			chunkEnd = end
		}
		if chunkStart >= chunkEnd {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(chunkStart, chunkEnd)
	}

	wg.Wait()
}
