// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package membar provides the memory-ordering vocabulary for single-word
// publisher/observer protocols.
//
// The package covers exactly four access primitives plus fences:
//
//   - LoadRelaxed / StoreRelaxed: indivisible word access with no ordering
//   - LoadAcquire / StoreRelease: one-directional ordering for publication
//   - Fence / FenceLoads / FenceStores: explicit barriers
//
// It intentionally provides nothing else: no compare-and-swap, no
// fetch-and-add, no multi-word transactions. Higher layers (ring buffers,
// index queues, shared-memory transports) compose their protocols from
// these primitives.
//
// # Quick Start
//
// Package-level generics for a word embedded in caller-owned memory:
//
//	var head uint64 // field inside a shared control block
//
//	membar.StoreRelease(&head, next) // publisher
//	h := membar.LoadAcquire(&head)   // observer
//
// Typed words when the location itself is owned by Go code:
//
//	type control struct {
//		head membar.Uint64
//		_    membar.CacheLinePad
//		tail membar.Uint64
//	}
//
//	c.tail.StoreRelease(t + 1)
//	t := c.tail.LoadAcquire()
//
// # The Ordering Contract
//
// A shared word is written by exactly one logical publisher and read by one
// or more observers, without mutual exclusion. Every write to it must go
// through StoreRelaxed or StoreRelease, and every read through LoadRelaxed
// or LoadAcquire. An ordinary, unguarded access is not an option: the
// compiler may cache the value in a register across loop iterations, merge
// or split accesses, and the CPU may reorder them — failures that never
// show up in sequential testing. A polling loop written with an unguarded
// read can legally be compiled into a single load followed by an infinite
// loop on the stale register value.
//
// LoadRelaxed and StoreRelaxed guarantee a single, indivisible access and
// nothing more. They defeat compiler-level elision and tearing but impose
// no ordering against neighboring memory operations.
//
// StoreRelease(p, v) additionally guarantees that every memory write issued
// before the call becomes visible to any goroutine (or process sharing the
// mapping) whose LoadAcquire(p) observes v or a later value. The matching
// LoadAcquire guarantees that the observer's subsequent reads and writes
// are ordered after the observed release. This pairing is the entire
// publication protocol:
//
//	// publisher                      // observer
//	fill(payload)                     for membar.LoadAcquire(&flag) == 0 {
//	membar.StoreRelease(&flag, 1)     	membar.Pause()
//	                                  }
//	                                  consume(payload) // fully visible
//
// Release/acquire order exactly one word. Observers may see updates to two
// different shared words in either order unless a full Fence is used.
// Fence orders all prior memory operations against all later ones, in both
// directions; it is needed only for protocols not expressible as a single
// release/acquire pair, such as the store-buffer pattern where each side
// must publish and then check for the other's publication:
//
//	membar.StoreRelaxed(&mine, 1)
//	membar.Fence()
//	theirs := membar.LoadRelaxed(&other)
//
// FenceLoads and FenceStores are weaker directional variants. Default to
// Fence unless a measured hot path and a verified target architecture
// justify the weaker one.
//
// # Implementation Tiers
//
// The implementation is selected at build time, never at runtime:
//
//   - On amd64 and arm64 the primitives compile to the exact instruction
//     sequences the architecture requires: plain single-copy-atomic accesses
//     behind non-inlinable calls on amd64 (whose total store order makes
//     them acquire/release already), LDAR/STLR and DMB on arm64.
//   - Everywhere else — and under the purego build tag or the race
//     detector — the primitives delegate to sync/atomic, whose sequentially
//     consistent operations are a strict superset of every ordering
//     promised here. The SeqCstFallback constant reports this tier.
//
// On the fallback tier, 8- and 16-bit words are emulated over the aligned
// containing 32-bit word; a sub-word store read-modify-writes that word, so
// bytes adjacent to a sub-word shared word must not be concurrently
// mutated through plain stores. Full-width words have no such restriction.
//
// # Misuse
//
// Alignment is the caller's obligation: words must be naturally aligned,
// and 64-bit words must be 8-byte aligned even on 32-bit hosts (place them
// first in the struct, as with sync/atomic). Two uncoordinated publishers
// on one word, unaligned words, and mixing guarded with unguarded accesses
// are undefined behavior; this layer neither detects nor reports them.
//
// Pointer-typed words are deliberately absent. A store performed behind the
// compiler's back also bypasses the garbage collector's write barrier;
// publish indices or handles as uintptr instead, and keep the referenced
// objects alive through ordinary Go references.
package membar
