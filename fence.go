// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar

// Fence is a full bidirectional memory barrier: no memory access issued
// before the fence can be observed, by any other goroutine or process
// sharing the memory, as occurring after an access issued after it.
//
// Fence is required only where a protocol cannot be expressed as a single
// release/acquire pair — classically, publishing one word and then reading
// another to check for a concurrent publication (the store-buffer pattern).
// Plain publication needs StoreRelease/LoadAcquire, not a fence.
func Fence() {
	fullFence()
}

// FenceLoads orders all loads issued before the fence against all loads
// and stores issued after it. It is the weaker, read-side directional
// variant of Fence; use Fence unless the specific ordering requirement and
// target architecture have been verified to need only this.
func FenceLoads() {
	loadFence()
}

// FenceStores orders all stores issued before the fence against all stores
// issued after it. It is the weaker, write-side directional variant of
// Fence; use Fence unless the specific ordering requirement and target
// architecture have been verified to need only this.
func FenceStores() {
	storeFence()
}

// Pause hints to the CPU that the caller is in a spin-wait loop, allowing
// the core to back off without yielding the thread. It has no ordering
// effect and is a no-op on targets without such a hint.
//
// Place it in loops that spin on LoadAcquire or LoadRelaxed:
//
//	for membar.LoadAcquire(&flag) == 0 {
//		membar.Pause()
//	}
func Pause() {
	procPause()
}
