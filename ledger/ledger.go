// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/storage"
	"github.com/bitmark-inc/nftvault/util"
)

// NativeCurrency - the unit paid in by swaps
var NativeCurrency = digest.New([]byte("native-currency"))

// program that owns the native currency mint
const treasuryProgram = "ledger-treasury"

// Handles - storage pools used by the ledger
type Handles struct {
	Units    *storage.PoolHandle
	Supply   *storage.PoolHandle
	Balances *storage.PoolHandle
}

// Ledger - unit definitions and balances
type Ledger struct {
	sync.Mutex
	log      *logger.L
	test     bool
	programs map[string]struct{}
	pools    Handles
	treasury *Delegate
}

// Unit - definition of a unit
type Unit struct {
	MintAuthority *account.Account `json:"mintAuthority"`
	MaximumSupply uint64           `json:"maximumSupply"`
}

// Holding - amount of one unit held by an account
type Holding struct {
	Unit   digest.Digest `json:"unit"`
	Amount uint64        `json:"amount"`
}

// New - create a ledger over the given pools
//
// test selects the network flag of derived accounts
func New(test bool, pools Handles) *Ledger {
	l := &Ledger{
		log:      logger.New("ledger"),
		test:     test,
		programs: make(map[string]struct{}),
		pools:    pools,
	}
	l.treasury, _ = l.Register(treasuryProgram)
	return l
}

// CreateUnit - define a new unit
//
// maximumSupply of zero means unlimited
func (l *Ledger) CreateUnit(trx storage.Transaction, unit digest.Digest, mintAuthority *account.Account, maximumSupply uint64) error {
	if nil == mintAuthority || nil == mintAuthority.AccountInterface {
		return fault.ErrUnauthorised
	}

	if trx.Has(l.pools.Units, unit[:]) {
		return fault.ErrUnitAlreadyExists
	}

	packed := util.AppendUint64(nil, maximumSupply)
	packed = util.AppendBytes(packed, mintAuthority.Bytes())
	trx.Put(l.pools.Units, unit[:], packed)

	l.log.Infof("create unit: %s  mint authority: %s  maximum supply: %d", unit, mintAuthority, maximumSupply)
	return nil
}

// MintTo - create new units in an account
func (l *Ledger) MintTo(trx storage.Transaction, unit digest.Digest, to *account.Account, amount uint64, authority Authority) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	if nil == to || nil == to.AccountInterface {
		return fault.ErrInvalidItem
	}

	u, err := l.getUnit(trx, unit)
	if nil != err {
		return err
	}

	err = authorise(authority, u.MintAuthority)
	if nil != err {
		l.log.Warnf("mint unit: %s  rejected: %s", unit, err)
		return err
	}

	supply, _ := trx.GetN(l.pools.Supply, unit[:])
	newSupply := supply + amount
	if newSupply < supply || (0 != u.MaximumSupply && newSupply > u.MaximumSupply) {
		return fault.ErrSupplyExceeded
	}

	key := balanceKey(to, unit)
	balance, _ := trx.GetN(l.pools.Balances, key)
	newBalance := balance + amount
	if newBalance < balance {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(l.pools.Supply, unit[:], newSupply)
	trx.PutN(l.pools.Balances, key, newBalance)

	l.log.Debugf("mint unit: %s  to: %s  amount: %d", unit, to, amount)
	return nil
}

// Transfer - move units between two accounts
//
// authority must act as the sending account
func (l *Ledger) Transfer(trx storage.Transaction, unit digest.Digest, from *account.Account, to *account.Account, amount uint64, authority Authority) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	if nil == to || nil == to.AccountInterface {
		return fault.ErrInvalidItem
	}

	if !trx.Has(l.pools.Units, unit[:]) {
		return fault.ErrUnitNotFound
	}

	err := authorise(authority, from)
	if nil != err {
		l.log.Warnf("transfer unit: %s  from: %s  rejected: %s", unit, from, err)
		return err
	}

	fromKey := balanceKey(from, unit)
	fromBalance, _ := trx.GetN(l.pools.Balances, fromKey)
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}

	if from.Equal(to) {
		return nil
	}

	toKey := balanceKey(to, unit)
	toBalance, _ := trx.GetN(l.pools.Balances, toKey)
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	if fromBalance == amount {
		trx.Delete(l.pools.Balances, fromKey)
	} else {
		trx.PutN(l.pools.Balances, fromKey, fromBalance-amount)
	}
	trx.PutN(l.pools.Balances, toKey, toBalance+amount)

	l.log.Debugf("transfer unit: %s  from: %s  to: %s  amount: %d", unit, from, to, amount)
	return nil
}

// Fund - mint native currency into an account
func (l *Ledger) Fund(trx storage.Transaction, to *account.Account, amount uint64) error {
	if !trx.Has(l.pools.Units, NativeCurrency[:]) {
		err := l.CreateUnit(trx, NativeCurrency, l.treasury.Account(), 0)
		if nil != err {
			return err
		}
	}
	return l.MintTo(trx, NativeCurrency, to, amount, l.treasury.Authority())
}

// Unit - committed definition of a unit
func (l *Ledger) Unit(unit digest.Digest) (*Unit, error) {
	packed := l.pools.Units.Get(unit[:])
	if nil == packed {
		return nil, fault.ErrUnitNotFound
	}
	return unpackUnit(packed)
}

// Balance - committed amount of unit held by owner
func (l *Ledger) Balance(unit digest.Digest, owner *account.Account) uint64 {
	balance, _ := l.pools.Balances.GetN(balanceKey(owner, unit))
	return balance
}

// Supply - committed total of unit in circulation
func (l *Ledger) Supply(unit digest.Digest) uint64 {
	supply, _ := l.pools.Supply.GetN(unit[:])
	return supply
}

// Holdings - all non-zero committed balances of an account
func (l *Ledger) Holdings(owner *account.Account) ([]Holding, error) {
	holdings := []Holding{}
	prefix := owner.Bytes()
	err := l.pools.Balances.NewFetchCursor().Prefix(prefix).Map(func(key []byte, value []byte) error {
		var h Holding
		err := digest.FromBytes(&h.Unit, key[len(prefix):])
		if nil != err {
			return err
		}
		if 8 == len(value) {
			h.Amount = binary.BigEndian.Uint64(value)
		}
		if 0 != h.Amount {
			holdings = append(holdings, h)
		}
		return nil
	})
	return holdings, err
}

func (l *Ledger) getUnit(trx storage.Transaction, unit digest.Digest) (*Unit, error) {
	packed := trx.Get(l.pools.Units, unit[:])
	if nil == packed {
		return nil, fault.ErrUnitNotFound
	}
	return unpackUnit(packed)
}

func unpackUnit(packed []byte) (*Unit, error) {
	maximumSupply, n, err := util.ReadUint64(packed, 0)
	if nil != err {
		return nil, err
	}
	authorityBytes, _, err := util.ReadBytes(packed, n)
	if nil != err {
		return nil, err
	}
	mintAuthority, err := account.AccountFromBytes(authorityBytes)
	if nil != err {
		return nil, err
	}
	return &Unit{
		MintAuthority: mintAuthority,
		MaximumSupply: maximumSupply,
	}, nil
}

// owner ++ unit
func balanceKey(owner *account.Account, unit digest.Digest) []byte {
	return append(owner.Bytes(), unit[:]...)
}
