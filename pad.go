// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLinePad separates shared words touched by different roles so that a
// publisher hammering one word does not invalidate the cache line holding
// its neighbor (false sharing). Insert it between a head written by the
// consumer and a tail written by the producer:
//
//	type control struct {
//		head membar.Uint64
//		_    membar.CacheLinePad
//		tail membar.Uint64
//	}
type CacheLinePad = cpu.CacheLinePad

// CacheLineSize is the padding size used by CacheLinePad on this target.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
