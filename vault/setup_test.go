// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/clock/mocks"
	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/storage"
	"github.com/bitmark-inc/nftvault/vault"
)

type testEnv struct {
	ledger *ledger.Ledger
	vault  *vault.Vault
	clock  *mocks.MockClock
	ctl    *gomock.Controller
}

// vault backed by a real ledger in a scratch database
func setupTestVault(t *testing.T) (*testEnv, func()) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "nftvault-vault")
	if nil != err {
		t.Fatalf("create temp dir error: %s", err)
	}

	err = storage.Initialise(filepath.Join(dir, "vault.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	l := ledger.New(true, ledger.Handles{
		Units:    storage.Pool.Units,
		Supply:   storage.Pool.Supply,
		Balances: storage.Pool.Balances,
	})

	delegate, err := l.Register(vault.ProgramName)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	ctl := gomock.NewController(t)
	c := mocks.NewMockClock(ctl)

	v := vault.New("test-pool", vault.Handles{
		Vaults:   storage.Pool.Vaults,
		Assets:   storage.Pool.Assets,
		Requests: storage.Pool.Requests,
	}, l, delegate, c)

	env := &testEnv{
		ledger: l,
		vault:  v,
		clock:  c,
		ctl:    ctl,
	}
	return env, func() {
		ctl.Finish()
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

// give an account native currency
func fund(t *testing.T, l *ledger.Ledger, to *account.Account, amount uint64) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	err = l.Fund(trx, to, amount)
	if nil != err {
		trx.Abort()
		t.Fatalf("fund error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
