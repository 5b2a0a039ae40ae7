// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/storage"
)

// apply the configured native currency grants
//
// only runs against a ledger with no native currency in circulation so
// that restarting a node does not mint the same grants again
func fundLedger(log *logger.L, l *ledger.Ledger, funds []FundType) error {
	if 0 == len(funds) {
		return nil
	}

	if supply := l.Supply(ledger.NativeCurrency); 0 != supply {
		log.Infof("fund: skipped, native supply: %d", supply)
		return nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, f := range funds {
		to, err := account.AccountFromBase58(f.Account)
		if nil != err {
			trx.Abort()
			return err
		}
		err = l.Fund(trx, to, f.Amount)
		if nil != err {
			trx.Abort()
			return err
		}
		log.Infof("fund: %s  amount: %d", to, f.Amount)
	}

	return trx.Commit()
}
