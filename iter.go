// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl

import (
	"slices"

	"code.hybscloud.com/atomix"
)

// IterStatic partitions the half-open range [start, end) into one contiguous
// chunk per participant and broadcasts f with each participant's sub-range
// [low, high). Chunks are deterministic, pairwise disjoint, and cover the
// range exactly; overhanging participants receive an empty chunk. A range
// with end <= start is empty.
//
// Static partitioning has zero per-index coordination cost; prefer
// [Scope.IterDynamic] when per-index cost is skewed.
func (s *Scope) IterStatic(start, end int, f func(thread, low, high int)) {
	if end < start {
		end = start
	}

	threads := s.state.workers + 1
	per := (end - start + threads - 1) / threads

	s.Broadcast(func(thread int) {
		low := min(start+per*thread, end)
		high := min(low+per, end)

		f(thread, low, high)
	})
}

// IterDynamic broadcasts f so that every index in [start, end) is claimed by
// exactly one participant, one atomic fetch-add per index. Which participant
// claims which index beyond each one's initial claim is nondeterministic:
// participants that finish cheap indices early claim more, adapting to skewed
// per-index cost.
func (s *Scope) IterDynamic(start, end int, f func(thread, index int)) {
	threads := s.state.workers + 1

	// next holds the offset from start of the next unclaimed index.
	// Offsets 0..threads-1 are the participants' one-shot initial claims,
	// so no participant touches the counter before doing any work.
	var next atomix.Uint64
	next.Store(uint64(threads))

	s.Broadcast(func(thread int) {
		index := start + thread
		for index < end {
			f(thread, index)

			index = start + int(next.Add(1)-1)
		}
	})
}

// ForEachStatic gives each participant a contiguous disjoint sub-slice of
// work, covering every element exactly once. Empty chunks are passed as
// empty slices.
func ForEachStatic[T any](s *Scope, work []T, f func(chunk []T)) {
	s.IterStatic(0, len(work), func(_, low, high int) {
		f(work[low:high])
	})
}

// FoldStatic reduces work into one accumulator slot per participant: each
// participant's slot and contiguous disjoint chunk are passed to f, and only
// that participant writes the slot. The caller owns accum across calls so
// repeated folds reuse its allocation; it is cleared and resized to
// [Scope.Threads] slots on entry, and the caller combines the slots after
// FoldStatic returns.
func FoldStatic[T, A any](s *Scope, work []T, accum *[]Aligned[A], f func(acc *A, chunk []T)) {
	slots := resetAccum(accum, s.Threads())

	s.IterStatic(0, len(work), func(thread, low, high int) {
		f(&slots[thread].Value, work[low:high])
	})
}

// ForEachDynamic visits every element of work exactly once, claiming one
// element per atomic fetch-add. Element-to-participant assignment is
// nondeterministic.
func ForEachDynamic[T any](s *Scope, work []T, f func(item *T)) {
	s.IterDynamic(0, len(work), func(_, index int) {
		f(&work[index])
	})
}

// FoldDynamic reduces work element-wise into one accumulator slot per
// participant, claiming elements dynamically. Accumulator ownership and
// reuse follow [FoldStatic].
func FoldDynamic[T, A any](s *Scope, work []T, accum *[]Aligned[A], f func(acc *A, item *T)) {
	slots := resetAccum(accum, s.Threads())

	s.IterDynamic(0, len(work), func(thread, index int) {
		f(&slots[thread].Value, &work[index])
	})
}

// resetAccum clears and default-fills one slot per participant, reusing the
// caller-owned backing array when it is large enough.
func resetAccum[A any](accum *[]Aligned[A], threads int) []Aligned[A] {
	slots := slices.Grow((*accum)[:0], threads)[:threads]
	clear(slots)
	*accum = slots
	return slots
}
