package notedata

import (
	"context"
	"runtime"
	"sync"
)

// Job carries one note's inputs through DecodeBatch.
type Job struct {
	Raw   []byte
	Title string
}

// DecodeBatch decodes many note bodies concurrently.
//
// Each job is independent, so the fan-out needs no locking: workers pull
// job indexes from a channel and write into their own result slot.
// Result order matches job order regardless of which worker finished
// first.
//
// Parameters:
//   - ctx: cancels dispatch; jobs already picked up still finish
//   - jobs: the bodies to decode
//   - workers: goroutine count; values <= 0 use runtime.GOMAXPROCS(0)
//   - opts: decode options applied to every job
//
// Returns:
//   - []Extraction: one result per job, index-aligned with jobs
//   - error: ctx.Err() when cancelled before all jobs were dispatched;
//     undispatched slots are left as StatusAbsent with empty content
func DecodeBatch(ctx context.Context, jobs []Job, workers int, opts ...Option) ([]Extraction, error) {
	results := make([]Extraction, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	indexes := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = Decode(jobs[i].Raw, jobs[i].Title, opts...)
			}
		}()
	}

	var err error
dispatch:
	for i := range jobs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case indexes <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		}
	}
	close(indexes)
	wg.Wait()

	return results, err
}
