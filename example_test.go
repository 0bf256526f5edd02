// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar_test

import (
	"fmt"

	"code.hybscloud.com/membar"
)

// Publication: the payload written before StoreRelease is guaranteed
// visible to whoever observes the flag through LoadAcquire.
func ExampleStoreRelease() {
	var payload [3]uint64
	var ready membar.Bool

	done := make(chan struct{})
	go func() {
		defer close(done)
		for !ready.LoadAcquire() {
			membar.Pause()
		}
		// The acquire above orders these reads after the publisher's
		// writes: the payload is complete.
		fmt.Println(payload[0], payload[1], payload[2])
	}()

	for i := range payload {
		membar.StoreRelaxed(&payload[i], uint64(i+1))
	}
	ready.StoreRelease(true)
	<-done

	// Output:
	// 1 2 3
}

// Ring-buffer index publication: the producer fills a slot, then releases
// the tail; the consumer acquires the tail before touching the slot. The
// cached-index trick keeps relaxed loads on the hot path.
func ExampleUint64() {
	const size = 8
	var (
		slots [size]uint64
		tail  membar.Uint64 // producer publishes here
		head  membar.Uint64 // consumer publishes here
	)

	// Producer: write the slot, then publish the new tail.
	t := tail.LoadRelaxed()
	slots[t%size] = 42
	tail.StoreRelease(t + 1)

	// Consumer: observe the tail, then read the slot it covers.
	h := head.LoadRelaxed()
	if h < tail.LoadAcquire() {
		fmt.Println(slots[h%size])
		head.StoreRelease(h + 1)
	}

	// Output:
	// 42
}

// Relaxed access is for words that need indivisibility but no cross-word
// ordering, such as a statistics counter sampled by another goroutine.
func ExampleLoadRelaxed() {
	var processed uint64

	membar.StoreRelaxed(&processed, 128)
	fmt.Println(membar.LoadRelaxed(&processed))

	// Output:
	// 128
}
