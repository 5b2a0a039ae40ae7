// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"math"
	"math/bits"
)

// rent scale
const (
	OneUnit          = 1000000000 // smallest denomination per whole fee unit
	SecondsPerPeriod = 86400      // custody time that earns one whole fee unit
)

// Fee - rent earned by an asset held in custody for duration seconds
//
// floor(duration × OneUnit / SecondsPerPeriod), zero for a
// non-positive duration, saturating at the maximum uint64
func Fee(duration int64) uint64 {
	if duration <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(duration), OneUnit)
	if hi >= SecondsPerPeriod {
		return math.MaxUint64
	}
	fee, _ := bits.Div64(hi, lo, SecondsPerPeriod)
	return fee
}
