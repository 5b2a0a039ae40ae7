// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/vault"
)

const monitorInterval = time.Minute

type poolReader interface {
	Address() *account.Account
	State() (*vault.State, error)
}

type supplyReader interface {
	Supply(digest.Digest) uint64
	Balance(digest.Digest, *account.Account) uint64
}

// periodic log of the pool
type monitor struct {
	log      *logger.L
	pool     poolReader
	ledger   supplyReader
	interval time.Duration
}

func (m *monitor) Run(args interface{}, shutdown <-chan struct{}) {
	m.log.Info("starting…")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			m.report()
		}
	}

	m.log.Info("stopped")
}

func (m *monitor) report() bool {
	state, err := m.pool.State()
	if nil != err {
		m.log.Debugf("pool: %s  state: %s", m.pool.Address(), err)
		return false
	}

	m.log.Infof("pool: %s  custody: %d  accrued fee: %d  native: %d  native supply: %d",
		m.pool.Address(),
		state.CustodyCount,
		state.AccruedFee,
		m.ledger.Balance(ledger.NativeCurrency, m.pool.Address()),
		m.ledger.Supply(ledger.NativeCurrency),
	)
	return true
}
