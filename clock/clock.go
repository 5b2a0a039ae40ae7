// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"sync"
	"time"
)

// Clock - source of the current time in unix seconds
type Clock interface {
	Now() int64
}

// system clock that never goes backwards
type systemClock struct {
	sync.Mutex
	last int64
	now  func() time.Time
}

// New - a clock reading the system time
//
// if the system time is stepped back the previous value is
// returned until the system catches up
func New() Clock {
	return &systemClock{
		now: time.Now,
	}
}

// Now - current unix seconds, never less than an earlier result
func (c *systemClock) Now() int64 {
	seconds := c.now().UTC().Unix()

	c.Lock()
	defer c.Unlock()

	if seconds < c.last {
		return c.last
	}
	c.last = seconds
	return seconds
}
