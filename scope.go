// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl

import "code.hybscloud.com/iox"

// Scope is the handle for issuing broadcasts on one Run invocation. It is
// valid only inside the callback Run invoked with it and only on the calling
// goroutine; capturing it in a work item or retaining it after Run returns
// panics on the next use.
type Scope struct {
	state *state
}

// Threads returns the number of participants, workers plus the caller.
// Fold accumulator slices are sized to this.
func (s *Scope) Threads() int {
	return s.state.workers + 1
}

// Broadcast executes f exactly once per participant, passing each its thread
// index (0 for the caller, which runs f inline), and returns only after every
// participant has finished. Participants run concurrently with no mutual
// ordering.
//
// If f panics on thread 0 the panic propagates, but only after all workers
// have finished the item; a panic on a worker is fatal to the process.
func (s *Scope) Broadcast(f func(thread int)) {
	st := s.state

	if st.done.Load() != 0 {
		panic("parl: Scope used after Run returned")
	}
	if !st.active.CompareAndSwap(0, 1) {
		panic("parl: Broadcast re-entered during an in-flight broadcast")
	}

	work := workFn(f)
	st.work = &work
	st.pending.Value.Store(uint64(st.workers))
	st.generation.Value.Add(1)

	// Drain before returning, even if f(0) unwinds: the work item borrows
	// f from this call's stack, so no worker may observe the cell after
	// Broadcast returns.
	defer func() {
		var bo iox.Backoff
		for st.pending.Value.Load() != 0 {
			bo.Wait()
		}
		st.work = &stopWork
		st.active.Store(0)
	}()

	f(0)
}
