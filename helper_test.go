// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parl_test

import (
	"runtime"
	"testing"
	"time"
)

// parallelisms and lengths are the grid every coverage test runs over.
var (
	parallelisms = []int{1, 2, 10}
	lengths      = []int{0, 1, 7, 1_000}
)

// awaitGoroutines fails the test if the goroutine count does not return to
// at most baseline. Workers are joined before Run returns, but an exiting
// goroutine may be counted for a moment after its WaitGroup.Done.
func awaitGoroutines(t *testing.T, baseline int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		n := runtime.NumGoroutine()
		if n <= baseline {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("%d goroutines alive, want <= %d", n, baseline)
		}
		time.Sleep(time.Millisecond)
	}
}
