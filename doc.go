// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parl provides a fork-join scope: a fixed set of worker goroutines
// that execute one work item at a time in lock-step with the calling
// goroutine, coordinated by a lock-free publish/drain handshake.
//
// [Run] spawns the workers, hands the caller a [Scope], and joins the workers
// before returning. [Scope.Broadcast] runs a work item exactly once per
// participant (the caller is thread 0) and blocks until all have finished.
// The partitioning layer ([Scope.IterStatic], [Scope.IterDynamic],
// [ForEachStatic], [FoldStatic], [ForEachDynamic], [FoldDynamic]) is built
// entirely on Broadcast plus, for the dynamic variants, one shared claim
// counter.
//
// # Architecture
//
//   - Coordination: One shared state per [Run] — a work cell, a pending
//     counter, and a generation counter ([code.hybscloud.com/atomix]).
//     No locks, no channels, no park/wake syscalls.
//   - Waiting: Workers poll the generation counter and the caller drains the
//     pending counter with adaptive backoff ([code.hybscloud.com/iox.Backoff]).
//   - Partitioning: Static variants precompute contiguous, disjoint,
//     deterministic chunks; dynamic variants claim one index per atomic
//     fetch-add, adapting to skewed per-item cost.
//   - Accumulation: Fold variants write one cache-line padded [Aligned] slot
//     per participant; the caller combines slots after the call returns.
//
// # Memory Ordering
//
// The work cell is a plain pointer. The caller writes it and resets the
// pending counter before incrementing the generation counter; workers read it
// only after a load observes the new generation. The counter operations carry
// the release/acquire edge, so the cell never needs to be atomic itself. The
// caller never returns from Broadcast before the pending counter drains to
// zero, and only then resets the cell to the stop sentinel, so a work item is
// never observable after its broadcast has returned.
//
// Within one broadcast the participants run concurrently with no mutual
// ordering. Across broadcasts on the same scope ordering is total: item N
// drains before item N+1 is published.
//
// # Panics
//
// Contract violations panic: re-entering Broadcast from a work item (which
// would deadlock a worker waiting on itself) and using a Scope after Run has
// returned. A panic raised by a work item on the caller (thread 0) propagates
// out of Broadcast and Run, but only after the drain completes and the workers
// are joined. A panic raised by a work item on a worker goroutine is fatal to
// the process; the engine does not recover it.
//
// # Example
//
//	nums := make([]int, 1_000)
//	for i := range nums {
//		nums[i] = i
//	}
//	var sums []parl.Aligned[int]
//	total := parl.Run(0, func(s *parl.Scope) int {
//		parl.FoldStatic(s, nums, &sums, func(sum *int, chunk []int) {
//			for _, n := range chunk {
//				*sum += n
//			}
//		})
//		total := 0
//		for i := range sums {
//			total += sums[i].Value
//		}
//		return total
//	})
package parl
