// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !purego && !race

package membar

// arm64 is weakly ordered: acquire/release must use the LDAR/STLR
// instruction families and cannot be composed from a barrier plus a plain
// access the way a total-store-order target allows. Relaxed accesses are
// plain loads and stores, which are single-copy atomic when naturally
// aligned. All implementations live in ordering_arm64.s.

//go:noescape
func load8(addr *uint8) uint8

//go:noescape
func load16(addr *uint16) uint16

//go:noescape
func load32(addr *uint32) uint32

//go:noescape
func load64(addr *uint64) uint64

//go:noescape
func store8(addr *uint8, val uint8)

//go:noescape
func store16(addr *uint16, val uint16)

//go:noescape
func store32(addr *uint32, val uint32)

//go:noescape
func store64(addr *uint64, val uint64)

//go:noescape
func loadAcq8(addr *uint8) uint8

//go:noescape
func loadAcq16(addr *uint16) uint16

//go:noescape
func loadAcq32(addr *uint32) uint32

//go:noescape
func loadAcq64(addr *uint64) uint64

//go:noescape
func storeRel8(addr *uint8, val uint8)

//go:noescape
func storeRel16(addr *uint16, val uint16)

//go:noescape
func storeRel32(addr *uint32, val uint32)

//go:noescape
func storeRel64(addr *uint64, val uint64)

func fullFence()

func loadFence()

func storeFence()

func procPause()
