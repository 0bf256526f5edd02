// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !purego && !race

package membar

// x86-TSO: a naturally aligned load or store is single-copy atomic, loads
// are not reordered with older loads, and stores are not reordered with
// older stores. A plain access behind a non-inlinable call is therefore
// both the relaxed primitive (the opaque call is the compiler barrier) and
// a correct acquire/release. Only the full fence needs an instruction.

//go:nosplit
//go:noinline
func load8(addr *uint8) uint8 { return *addr }

//go:nosplit
//go:noinline
func load16(addr *uint16) uint16 { return *addr }

//go:nosplit
//go:noinline
func load32(addr *uint32) uint32 { return *addr }

//go:nosplit
//go:noinline
func load64(addr *uint64) uint64 { return *addr }

//go:nosplit
//go:noinline
func store8(addr *uint8, val uint8) { *addr = val }

//go:nosplit
//go:noinline
func store16(addr *uint16, val uint16) { *addr = val }

//go:nosplit
//go:noinline
func store32(addr *uint32, val uint32) { *addr = val }

//go:nosplit
//go:noinline
func store64(addr *uint64, val uint64) { *addr = val }

//go:nosplit
//go:noinline
func loadAcq8(addr *uint8) uint8 { return *addr }

//go:nosplit
//go:noinline
func loadAcq16(addr *uint16) uint16 { return *addr }

//go:nosplit
//go:noinline
func loadAcq32(addr *uint32) uint32 { return *addr }

//go:nosplit
//go:noinline
func loadAcq64(addr *uint64) uint64 { return *addr }

//go:nosplit
//go:noinline
func storeRel8(addr *uint8, val uint8) { *addr = val }

//go:nosplit
//go:noinline
func storeRel16(addr *uint16, val uint16) { *addr = val }

//go:nosplit
//go:noinline
func storeRel32(addr *uint32, val uint32) { *addr = val }

//go:nosplit
//go:noinline
func storeRel64(addr *uint64, val uint64) { *addr = val }

// Implemented in ordering_amd64.s.

func fullFence()

func loadFence()

func storeFence()

func procPause()
