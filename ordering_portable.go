// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build purego || race || (!amd64 && !arm64)

package membar

import (
	"encoding/binary"
	"sync/atomic"
	"unsafe"
)

// Portable tier: delegate to sync/atomic. Go's atomic operations are
// sequentially consistent, a strict superset of relaxed, acquire and
// release, so every contract in this package holds; relaxed operations
// simply carry more ordering than they promise. Race builds use this tier
// so the detector sees the happens-before edges.

// SeqCstFallback is true when the primitives fall back to sequentially
// consistent sync/atomic operations (purego builds, race builds, or targets
// without a hand-validated instruction sequence).
const SeqCstFallback = true

func load32(addr *uint32) uint32 { return atomic.LoadUint32(addr) }

func load64(addr *uint64) uint64 { return atomic.LoadUint64(addr) }

func store32(addr *uint32, val uint32) { atomic.StoreUint32(addr, val) }

func store64(addr *uint64, val uint64) { atomic.StoreUint64(addr, val) }

func loadAcq32(addr *uint32) uint32 { return atomic.LoadUint32(addr) }

func loadAcq64(addr *uint64) uint64 { return atomic.LoadUint64(addr) }

func storeRel32(addr *uint32, val uint32) { atomic.StoreUint32(addr, val) }

func storeRel64(addr *uint64, val uint64) { atomic.StoreUint64(addr, val) }

// Sub-word widths have no sync/atomic operations. They are emulated over
// the naturally aligned 32-bit word containing the address: loads extract
// the sub-word from an atomic 32-bit load; stores CAS the containing word,
// preserving the neighboring bytes. A store is therefore lock-free rather
// than wait-free on this tier, and neighboring bytes must not be mutated
// through plain stores concurrently (a racing CAS would write stale
// neighbors back).

var isLittleEndian = binary.NativeEndian.Uint16([]byte{0x34, 0x12}) == 0x1234

// container returns the aligned 32-bit word holding the size-byte sub-word
// at addr, and the sub-word's bit shift within it.
func container(addr unsafe.Pointer, size uintptr) (*uint32, uint) {
	w := (*uint32)(unsafe.Pointer(uintptr(addr) &^ 3))
	off := uintptr(addr) & 3
	if !isLittleEndian {
		off = 4 - size - off
	}
	return w, uint(off) * 8
}

func subLoad(addr unsafe.Pointer, size uintptr) uint32 {
	w, shift := container(addr, size)
	return atomic.LoadUint32(w) >> shift
}

func subStore(addr unsafe.Pointer, size uintptr, val uint32) {
	w, shift := container(addr, size)
	mask := (uint32(1)<<(size*8) - 1) << shift
	for {
		old := atomic.LoadUint32(w)
		if atomic.CompareAndSwapUint32(w, old, old&^mask|val<<shift) {
			return
		}
	}
}

func load8(addr *uint8) uint8 { return uint8(subLoad(unsafe.Pointer(addr), 1)) }

func load16(addr *uint16) uint16 { return uint16(subLoad(unsafe.Pointer(addr), 2)) }

func store8(addr *uint8, val uint8) { subStore(unsafe.Pointer(addr), 1, uint32(val)) }

func store16(addr *uint16, val uint16) { subStore(unsafe.Pointer(addr), 2, uint32(val)) }

func loadAcq8(addr *uint8) uint8 { return load8(addr) }

func loadAcq16(addr *uint16) uint16 { return load16(addr) }

func storeRel8(addr *uint8, val uint8) { store8(addr, val) }

func storeRel16(addr *uint16, val uint16) { store16(addr, val) }

// fenceWord is private scratch for fullFence, padded so fence traffic does
// not contend with anything else.
var fenceWord struct {
	_ CacheLinePad
	v uint32
	_ CacheLinePad
}

// fullFence: an atomic read-modify-write compiles to a full memory barrier
// on every architecture the Go toolchain supports (LOCK XADD, LDADDAL,
// amoadd.w.aqrl, sync, ...), and sync/atomic forbids the compiler from
// reordering memory operations across it.
func fullFence() { atomic.AddUint32(&fenceWord.v, 0) }

// Directional fences fall back to the full fence; the split only pays off
// where a validated per-architecture sequence exists.
func loadFence() { fullFence() }

func storeFence() { fullFence() }

// procPause: no spin-wait hint without architecture support.
func procPause() {}
