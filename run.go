// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl

import (
	"runtime"
	"sync"
)

// Run creates a fork-join scope with the given total parallelism (caller
// included), runs f on the calling goroutine, and returns its result.
// parallelism <= 0 selects the available parallelism, runtime.GOMAXPROCS(0);
// parallelism 1 spawns no workers and every broadcast runs inline.
//
// The stop item is published and every worker is joined before Run returns,
// on the panic path as well, so no goroutine outlives the scope.
func Run[R any](parallelism int, f func(*Scope) R) R {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	st := &state{
		workers: parallelism - 1,
		work:    &stopWork,
	}

	var wg sync.WaitGroup
	for thread := 1; thread < parallelism; thread++ {
		wg.Go(func() {
			st.worker(thread)
		})
	}

	defer func() {
		st.done.Store(1)

		// Publish the stop item through the same handshake. No pending
		// drain is needed: any broadcast has already drained before
		// returning, so workers are all polling the generation.
		st.work = &stopWork
		st.generation.Value.Add(1)

		wg.Wait()
	}()

	return f(&Scope{state: st})
}
