// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl

import "golang.org/x/sys/cpu"

// Aligned pads T so that adjacent slots in a slice never share a cache line,
// preventing false sharing between fields written by different threads.
// Two pads keep slots a spatial-prefetcher pair (128 bytes on amd64) apart.
//
// Fold accumulator slices use one Aligned slot per participant; the engine
// uses it internally for the pending and generation counters.
type Aligned[T any] struct {
	Value T

	_ cpu.CacheLinePad
	_ cpu.CacheLinePad
}
