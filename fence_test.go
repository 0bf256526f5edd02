// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar_test

import (
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/membar"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Store-Buffer Litmus
// =============================================================================

// runStoreBuffer runs the classic two-flag store-buffer race for the given
// number of rounds and returns how many rounds ended in the outcome a full
// fence forbids: both sides storing 1 and then reading 0.
//
//	A: x = 1; fence?; ra = y        B: y = 1; fence?; rb = x
//
// With sequentially consistent or fenced execution at least one side must
// observe the other's store; (ra, rb) = (0, 0) requires a store to be
// delayed past a younger load.
func runStoreBuffer(rounds uint64, fenced bool) uint64 {
	var shared struct {
		x membar.Uint32
		_ membar.CacheLinePad
		y membar.Uint32
		_ membar.CacheLinePad
	}
	var start membar.Uint64
	var doneA, doneB membar.Uint64 // round<<1 | observed bit

	var wg sync.WaitGroup
	worker := func(mine, other *membar.Uint32, done *membar.Uint64) {
		defer wg.Done()
		sw := spin.Wait{}
		for r := uint64(1); r <= rounds; r++ {
			for start.LoadAcquire() < r {
				sw.Once()
			}
			mine.StoreRelaxed(1)
			if fenced {
				membar.Fence()
			}
			v := other.LoadRelaxed()
			done.StoreRelease(r<<1 | uint64(v&1))
		}
	}
	wg.Add(2)
	go worker(&shared.x, &shared.y, &doneA)
	go worker(&shared.y, &shared.x, &doneB)

	var forbidden uint64
	sw := spin.Wait{}
	for r := uint64(1); r <= rounds; r++ {
		shared.x.StoreRelaxed(0)
		shared.y.StoreRelaxed(0)
		start.StoreRelease(r) // publishes the reset to both workers
		for doneA.LoadAcquire()>>1 < r {
			sw.Once()
		}
		for doneB.LoadAcquire()>>1 < r {
			sw.Once()
		}
		if doneA.LoadRelaxed()&1 == 0 && doneB.LoadRelaxed()&1 == 0 {
			forbidden++
		}
	}
	wg.Wait()
	return forbidden
}

func litmusRounds() uint64 {
	if testing.Short() || membar.RaceEnabled {
		return 10_000
	}
	return 200_000
}

// TestFenceForbidsStoreBufferReordering asserts the historically forbidden
// (0, 0) outcome never occurs when both sides fence between their store
// and their load.
func TestFenceForbidsStoreBufferReordering(t *testing.T) {
	rounds := litmusRounds()
	if forbidden := runStoreBuffer(rounds, true); forbidden != 0 {
		t.Fatalf("store-buffer litmus with Fence: forbidden (0,0) outcome in %d of %d rounds", forbidden, rounds)
	}
}

// TestStoreBufferReorderingWithoutFence validates the fence has real
// effect: with the fences removed, the (0, 0) outcome is expected to show
// up on hardware whose relaxed stores genuinely sit in a store buffer.
// The test reports the observed frequency; a machine that never exhibits
// the reordering (insufficient parallelism, conservative hardware) makes
// the run inconclusive, not failed.
func TestStoreBufferReorderingWithoutFence(t *testing.T) {
	if membar.SeqCstFallback {
		t.Skip("skip: fallback tier is sequentially consistent; relaxed stores cannot reorder")
	}
	if runtime.GOMAXPROCS(0) < 2 || runtime.NumCPU() < 2 {
		t.Skip("skip: store-buffer reordering needs true parallelism")
	}

	rounds := litmusRounds()
	observed := runStoreBuffer(rounds, false)
	if observed == 0 {
		t.Skip("skip: no reordering observed; inconclusive on this machine")
	}
	t.Logf("unfenced store-buffer reordering in %d of %d rounds", observed, rounds)
}
