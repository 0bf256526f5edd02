// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build (amd64 || arm64) && !purego && !race

package membar

// SeqCstFallback is false when the primitives are backed by per-architecture
// code with genuinely relaxed semantics. Litmus tests that depend on relaxed
// operations actually reordering are only meaningful on this tier.
const SeqCstFallback = false
