// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// workFn is the type-erased work item. The argument is the participant's
// thread index: 0 for the caller, 1..workers for background goroutines.
type workFn func(thread int)

// stopWork is the terminal work item. Workers compare the fetched work
// pointer against &stopWork and exit their loop on a match; as a published
// item it is a no-op, so resetting the cell to it after a drain is safe even
// if a late worker re-reads the cell.
var stopWork workFn = func(int) {}

// state is the coordination state shared between one Run invocation and its
// workers. It lives exactly as long as that invocation: Run publishes the
// stop item and joins every worker before returning.
type state struct {
	workers int

	// work is a plain pointer cell, not an atomic. The caller writes it
	// before the generation release-increment and workers read it only
	// after observing the new generation via an acquire load, so the
	// counter carries the ordering (see doc.go, Memory Ordering).
	work *workFn

	// pending is the number of workers that have not finished the current
	// item; generation increments once per published item. Padded so the
	// caller draining pending and workers polling generation do not
	// invalidate each other's cache line.
	pending    Aligned[atomix.Uint64]
	generation Aligned[atomix.Uint64]

	// active guards against overlapping broadcasts, done against use of a
	// Scope after Run has returned.
	active atomix.Uint32
	done   atomix.Uint32
}

// worker is the loop each background goroutine runs until the stop item is
// published. A worker executes every published item exactly once: the local
// generation copy is the sole signal that a new item exists.
func (st *state) worker(thread int) {
	var last uint64

	for {
		var bo iox.Backoff
		for {
			curr := st.generation.Value.Load()
			if curr != last {
				last = curr
				break
			}
			bo.Wait()
		}

		work := st.work
		if work == &stopWork {
			return
		}

		(*work)(thread)

		st.pending.Value.Add(^uint64(0))
	}
}
