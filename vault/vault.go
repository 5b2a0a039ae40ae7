// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/clock"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/storage"
)

// ProgramName - the name the vault registers with the ledger
const ProgramName = "nft-vault"

// Handles - storage pools used by the vault
type Handles struct {
	Vaults   *storage.PoolHandle
	Assets   *storage.PoolHandle
	Requests *storage.PoolHandle
}

// Transferer - the ledger operations the vault needs
type Transferer interface {
	CreateUnit(storage.Transaction, digest.Digest, *account.Account, uint64) error
	MintTo(storage.Transaction, digest.Digest, *account.Account, uint64, ledger.Authority) error
	Transfer(storage.Transaction, digest.Digest, *account.Account, *account.Account, uint64, ledger.Authority) error
}

// Vault - handle to one pool
type Vault struct {
	sync.Mutex
	log            *logger.L
	pools          Handles
	transferer     Transferer
	clock          clock.Clock
	delegate       *ledger.Delegate
	seed           []byte
	address        *account.Account
	newTransaction func() (storage.Transaction, error)
}

// New - handle to the pool named by seed
//
// delegate is the ledger capability registered for ProgramName; it
// signs for the pool account and is never exposed outside the vault
func New(seed string, pools Handles, transferer Transferer, delegate *ledger.Delegate, c clock.Clock) *Vault {
	log := logger.New("vault")
	address := delegate.Account([]byte(seed))
	log.Infof("pool: %q  address: %s", seed, address)

	return &Vault{
		log:            log,
		pools:          pools,
		transferer:     transferer,
		clock:          c,
		delegate:       delegate,
		seed:           []byte(seed),
		address:        address,
		newTransaction: storage.NewDBTransaction,
	}
}

// Address - the pool account holding custodied assets and swap payments
func (v *Vault) Address() *account.Account {
	return v.address
}

// State - committed state of the pool
func (v *Vault) State() (*State, error) {
	packed := v.pools.Vaults.Get(v.address.Bytes())
	if nil == packed {
		return nil, fault.ErrNotInitialised
	}
	return UnpackState(packed)
}

// Asset - committed metadata of a minted asset
func (v *Vault) Asset(assetId digest.Digest) (*AssetRecord, error) {
	packed := v.pools.Assets.Get(assetId[:])
	if nil == packed {
		return nil, fault.ErrAssetRecordNotFound
	}
	return UnpackAssetRecord(assetId, packed)
}

// run one operation in a single storage transaction under the vault lock
//
// a non-nil request is rejected if already stored and is stored
// together with the operation's writes
func (v *Vault) update(request *digest.Digest, operation string, f func(trx storage.Transaction) error) error {
	v.Lock()
	defer v.Unlock()

	trx, err := v.newTransaction()
	if nil != err {
		v.log.Errorf("%s: begin transaction error: %s", operation, err)
		return err
	}

	if nil != request && trx.Has(v.pools.Requests, request[:]) {
		trx.Abort()
		v.log.Warnf("%s: request: %s  already processed", operation, request)
		return fault.ErrRequestAlreadyProcessed
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		v.log.Warnf("%s: failed: %s", operation, err)
		return err
	}

	if nil != request {
		trx.Put(v.pools.Requests, request[:], []byte(operation))
	}

	err = trx.Commit()
	if nil != err {
		v.log.Criticalf("%s: commit error: %s", operation, err)
		return err
	}
	return nil
}

func (v *Vault) getState(trx storage.Transaction) (*State, error) {
	packed := trx.Get(v.pools.Vaults, v.address.Bytes())
	if nil == packed {
		return nil, fault.ErrNotInitialised
	}
	return UnpackState(packed)
}

func (v *Vault) putState(trx storage.Transaction, state *State) {
	trx.Put(v.pools.Vaults, v.address.Bytes(), state.Pack())
}
