// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar

import "unsafe"

// Word is the set of types a shared word may have: fixed-width integers of
// 8, 16, 32 and 64 bits, plus the platform-width int, uint and uintptr.
//
// Pointer types are excluded; see the package documentation.
type Word interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// LoadRelaxed performs a single, indivisible load of *addr with no ordering
// guarantee relative to other memory accesses by the caller.
//
// It returns a value *addr held at some point no earlier than program order
// allows: never a torn value, never a register-cached stale value. Use it
// for shared words whose observation needs no cross-word ordering, such as
// an index the caller only compares against a cached bound.
func LoadRelaxed[T Word](addr *T) T {
	switch unsafe.Sizeof(*addr) {
	case 1:
		return T(load8((*uint8)(unsafe.Pointer(addr))))
	case 2:
		return T(load16((*uint16)(unsafe.Pointer(addr))))
	case 4:
		return T(load32((*uint32)(unsafe.Pointer(addr))))
	default:
		return T(load64((*uint64)(unsafe.Pointer(addr))))
	}
}

// StoreRelaxed performs a single, indivisible store of val to *addr with no
// ordering guarantee relative to other memory accesses by the caller.
//
// Concurrent LoadRelaxed callers observe either the previous value or val,
// never a mix. On the sync/atomic fallback tier a sub-word (8- or 16-bit)
// store read-modify-writes the containing aligned 32-bit word; see the
// package documentation for the adjacency restriction that implies.
func StoreRelaxed[T Word](addr *T, val T) {
	switch unsafe.Sizeof(val) {
	case 1:
		store8((*uint8)(unsafe.Pointer(addr)), uint8(val))
	case 2:
		store16((*uint16)(unsafe.Pointer(addr)), uint16(val))
	case 4:
		store32((*uint32)(unsafe.Pointer(addr)), uint32(val))
	default:
		store64((*uint64)(unsafe.Pointer(addr)), uint64(val))
	}
}

// LoadAcquire loads *addr such that every read and write the caller issues
// after the call is ordered after the observed value's matching release.
//
// If LoadAcquire returns a value v that some goroutine published with
// StoreRelease, every write that goroutine performed before its release is
// visible to the caller from this point on.
func LoadAcquire[T Word](addr *T) T {
	switch unsafe.Sizeof(*addr) {
	case 1:
		return T(loadAcq8((*uint8)(unsafe.Pointer(addr))))
	case 2:
		return T(loadAcq16((*uint16)(unsafe.Pointer(addr))))
	case 4:
		return T(loadAcq32((*uint32)(unsafe.Pointer(addr))))
	default:
		return T(loadAcq64((*uint64)(unsafe.Pointer(addr))))
	}
}

// StoreRelease stores val to *addr such that every write the caller issued
// before the call becomes visible to any goroutine whose LoadAcquire of the
// same word observes val or a later value in the word's modification order.
//
// The store itself is indivisible, exactly as with StoreRelaxed.
func StoreRelease[T Word](addr *T, val T) {
	switch unsafe.Sizeof(val) {
	case 1:
		storeRel8((*uint8)(unsafe.Pointer(addr)), uint8(val))
	case 2:
		storeRel16((*uint16)(unsafe.Pointer(addr)), uint16(val))
	case 4:
		storeRel32((*uint32)(unsafe.Pointer(addr)), uint32(val))
	default:
		storeRel64((*uint64)(unsafe.Pointer(addr)), uint64(val))
	}
}
