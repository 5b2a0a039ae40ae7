// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/chain"
	"github.com/bitmark-inc/nftvault/fault"
)

// Mode - type to hold the mode
type Mode int

// all possible modes
const (
	Stopped  Mode = iota
	ReadOnly      // queries only, e.g. while starting up
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	mode    Mode
	testing bool
	chain   string

	// set once during initialise
	initialised bool
}

// Initialise - set up the mode system
func Initialise(chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if !chain.Valid(chainName) {
		return fault.ErrInvalidChain
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	globalData.chain = chainName
	globalData.testing = chain.IsTesting(chainName)
	globalData.mode = ReadOnly

	globalData.initialised = true

	return nil
}

// Finalise - shutdown mode handling
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Set - change mode
func Set(mode Mode) {

	if mode >= Stopped && mode < maximum {
		globalData.Lock()
		globalData.mode = mode
		globalData.Unlock()

		globalData.log.Infof("set: %s", mode)
	} else {
		globalData.log.Errorf("ignore invalid set: %d", mode)
	}
}

// Is - detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// CheckWritable - error unless state changing requests can be served
func CheckWritable() error {
	globalData.RLock()
	defer globalData.RUnlock()
	switch globalData.mode {
	case Normal:
		return nil
	case ReadOnly:
		return fault.ErrNotAvailableInReadOnlyMode
	default:
		return fault.ErrNotAvailableWhenStopped
	}
}

// CheckReadable - error unless queries can be served
func CheckReadable() error {
	globalData.RLock()
	defer globalData.RUnlock()
	if Stopped == globalData.mode {
		return fault.ErrNotAvailableWhenStopped
	}
	return nil
}

// IsTesting - true for any chain except the live one
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// ChainName - name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}

// String - current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case ReadOnly:
		return "ReadOnly"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
