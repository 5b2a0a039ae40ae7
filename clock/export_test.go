// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"time"
)

// NewWithSource - clock reading an arbitrary time source
func NewWithSource(now func() time.Time) Clock {
	return &systemClock{
		now: now,
	}
}
