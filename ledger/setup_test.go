// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/storage"
)

func setupTestLedger(t *testing.T) (*ledger.Ledger, func()) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "nftvault-ledger")
	if nil != err {
		t.Fatalf("create temp dir error: %s", err)
	}

	err = storage.Initialise(filepath.Join(dir, "ledger.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	l := ledger.New(true, ledger.Handles{
		Units:    storage.Pool.Units,
		Supply:   storage.Pool.Supply,
		Balances: storage.Pool.Balances,
	})

	return l, func() {
		storage.Finalise()
		os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func newAccount(t *testing.T) *account.Account {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return privateKey.Account()
}

// run f in a transaction, commit on success
func inTransaction(t *testing.T, f func(storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}
