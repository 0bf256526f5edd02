// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membar

// Typed shared words.
//
// Each type owns exactly one word and exposes exactly the four ordering
// primitives, so a control structure built from them cannot accidentally
// touch a shared word through an unguarded access. The zero value is ready
// to use and holds zero.
//
// On 32-bit hosts, Uint64 and Int64 require 8-byte alignment: place them at
// the start of an allocation, as with sync/atomic.

// Uint32 is a 32-bit shared word.
type Uint32 struct {
	_ noCopy
	v uint32
}

// LoadRelaxed performs an indivisible, unordered load of the word.
func (u *Uint32) LoadRelaxed() uint32 { return LoadRelaxed(&u.v) }

// StoreRelaxed performs an indivisible, unordered store to the word.
func (u *Uint32) StoreRelaxed(v uint32) { StoreRelaxed(&u.v, v) }

// LoadAcquire loads the word with acquire ordering.
func (u *Uint32) LoadAcquire() uint32 { return LoadAcquire(&u.v) }

// StoreRelease stores v to the word with release ordering.
func (u *Uint32) StoreRelease(v uint32) { StoreRelease(&u.v, v) }

// Uint64 is a 64-bit shared word.
type Uint64 struct {
	_ noCopy
	v uint64
}

// LoadRelaxed performs an indivisible, unordered load of the word.
func (u *Uint64) LoadRelaxed() uint64 { return LoadRelaxed(&u.v) }

// StoreRelaxed performs an indivisible, unordered store to the word.
func (u *Uint64) StoreRelaxed(v uint64) { StoreRelaxed(&u.v, v) }

// LoadAcquire loads the word with acquire ordering.
func (u *Uint64) LoadAcquire() uint64 { return LoadAcquire(&u.v) }

// StoreRelease stores v to the word with release ordering.
func (u *Uint64) StoreRelease(v uint64) { StoreRelease(&u.v, v) }

// Int32 is a 32-bit signed shared word.
type Int32 struct {
	_ noCopy
	v int32
}

// LoadRelaxed performs an indivisible, unordered load of the word.
func (i *Int32) LoadRelaxed() int32 { return LoadRelaxed(&i.v) }

// StoreRelaxed performs an indivisible, unordered store to the word.
func (i *Int32) StoreRelaxed(v int32) { StoreRelaxed(&i.v, v) }

// LoadAcquire loads the word with acquire ordering.
func (i *Int32) LoadAcquire() int32 { return LoadAcquire(&i.v) }

// StoreRelease stores v to the word with release ordering.
func (i *Int32) StoreRelease(v int32) { StoreRelease(&i.v, v) }

// Int64 is a 64-bit signed shared word.
type Int64 struct {
	_ noCopy
	v int64
}

// LoadRelaxed performs an indivisible, unordered load of the word.
func (i *Int64) LoadRelaxed() int64 { return LoadRelaxed(&i.v) }

// StoreRelaxed performs an indivisible, unordered store to the word.
func (i *Int64) StoreRelaxed(v int64) { StoreRelaxed(&i.v, v) }

// LoadAcquire loads the word with acquire ordering.
func (i *Int64) LoadAcquire() int64 { return LoadAcquire(&i.v) }

// StoreRelease stores v to the word with release ordering.
func (i *Int64) StoreRelease(v int64) { StoreRelease(&i.v, v) }

// Uintptr is a pointer-width shared word for indices and handles.
//
// It does not keep a referenced object alive; see the package documentation
// on why reference-typed words are not provided.
type Uintptr struct {
	_ noCopy
	v uintptr
}

// LoadRelaxed performs an indivisible, unordered load of the word.
func (u *Uintptr) LoadRelaxed() uintptr { return LoadRelaxed(&u.v) }

// StoreRelaxed performs an indivisible, unordered store to the word.
func (u *Uintptr) StoreRelaxed(v uintptr) { StoreRelaxed(&u.v, v) }

// LoadAcquire loads the word with acquire ordering.
func (u *Uintptr) LoadAcquire() uintptr { return LoadAcquire(&u.v) }

// StoreRelease stores v to the word with release ordering.
func (u *Uintptr) StoreRelease(v uintptr) { StoreRelease(&u.v, v) }

// Bool is a boolean shared word, backed by a full 32-bit location so every
// tier accesses it with a plain word operation.
type Bool struct {
	_ noCopy
	v uint32
}

// LoadRelaxed performs an indivisible, unordered load of the flag.
func (b *Bool) LoadRelaxed() bool { return LoadRelaxed(&b.v) != 0 }

// StoreRelaxed performs an indivisible, unordered store to the flag.
func (b *Bool) StoreRelaxed(v bool) { StoreRelaxed(&b.v, b32(v)) }

// LoadAcquire loads the flag with acquire ordering.
func (b *Bool) LoadAcquire() bool { return LoadAcquire(&b.v) != 0 }

// StoreRelease stores v to the flag with release ordering.
func (b *Bool) StoreRelease(v bool) { StoreRelease(&b.v, b32(v)) }

func b32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// noCopy triggers `go vet -copylocks` on values copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
