// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package membar

// RaceEnabled is true when the race detector is active.
// Race builds always use the sync/atomic fallback tier so the detector
// observes real happens-before edges instead of opaque architecture code;
// stress tests use this constant to scale iteration counts down.
const RaceEnabled = true
