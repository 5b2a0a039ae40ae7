// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/mode"
	"github.com/bitmark-inc/nftvault/rpc/mocks"
	rpcvault "github.com/bitmark-inc/nftvault/rpc/vault"
	"github.com/bitmark-inc/nftvault/vault"
	vaultmocks "github.com/bitmark-inc/nftvault/vault/mocks"
)

// matches an account by its encoded bytes
type sameAccount struct {
	a *account.Account
}

func (m sameAccount) Matches(x interface{}) bool {
	other, ok := x.(*account.Account)
	return ok && m.a.Equal(other)
}

func (m sameAccount) String() string {
	return "is account " + m.a.String()
}

func setupClient(t *testing.T, operator rpcvault.Operator, balancer rpcvault.Balancer) (*Client, *bytes.Buffer, func()) {
	fixtures.SetupTestLogger()

	server := rpc.NewServer()
	handler := rpcvault.New(
		logger.New(fixtures.LogCategory),
		func(m mode.Mode) bool { return mode.Normal == m },
		func() bool { return true },
		operator,
		balancer,
	)
	err := server.Register(handler)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	verbose := &bytes.Buffer{}
	client := newClient(clientConn, true, true, verbose)

	return client, verbose, func() {
		client.Close()
		fixtures.TeardownTestLogger()
	}
}

func newKey(t *testing.T, testnet bool) *account.PrivateKey {
	key, err := account.NewPrivateKey(testnet)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func TestSignedCalls(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator := mocks.NewMockOperator(ctl)
	operations := vaultmocks.NewMockOperations(ctl)
	balancer := mocks.NewMockBalancer(ctl)

	client, verbose, teardown := setupClient(t, operator, balancer)
	defer teardown()

	key := newKey(t, true)
	me := sameAccount{key.Account()}
	pool := account.Derive(vault.ProgramName, true, []byte("pool"))
	asset := digest.New([]byte("asset"))
	unit := digest.New([]byte("reward"))

	operator.EXPECT().Request(gomock.Any()).Return(operations).Times(7)
	gomock.InOrder(
		operations.EXPECT().InitialiseVault(me).Return(nil).Times(1),
		operator.EXPECT().Address().Return(pool).Times(1),
		operations.EXPECT().InitialiseRewardUnit(me, unit).Return(nil).Times(1),
		operations.EXPECT().MintAsset(me, "Sunset", "SUN", "ipfs://sunset").Return(asset, nil).Times(1),
		operations.EXPECT().LockAsset(me, asset).Return(nil).Times(1),
		operator.EXPECT().State().Return(&vault.State{CustodyCount: 1}, nil).Times(1),
		operations.EXPECT().UnlockAsset(me, asset).Return(nil).Times(1),
		operator.EXPECT().State().Return(&vault.State{CustodyCount: 0}, nil).Times(1),
		operations.EXPECT().ClaimFee(me, unit).Return(uint64(1000000000), nil).Times(1),
		operations.EXPECT().SwapForAsset(me, asset, uint64(25)).Return(nil).Times(1),
	)

	initialised, err := client.Initialise(key)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, pool.String(), initialised.Address.String(), "wrong pool")

	bound, err := client.RewardUnit(key, unit)
	assert.Nil(t, err, "reward unit")
	assert.Equal(t, unit, bound.Unit, "wrong unit")

	minted, err := client.Mint(key, "Sunset", "SUN", "ipfs://sunset")
	assert.Nil(t, err, "mint")
	assert.Equal(t, asset, minted.AssetId, "wrong asset")

	locked, err := client.Lock(key, asset)
	assert.Nil(t, err, "lock")
	assert.Equal(t, uint64(1), locked.CustodyCount, "wrong lock count")

	unlocked, err := client.Unlock(key, asset)
	assert.Nil(t, err, "unlock")
	assert.Equal(t, uint64(0), unlocked.CustodyCount, "wrong unlock count")

	claimed, err := client.Claim(key, unit)
	assert.Nil(t, err, "claim")
	assert.Equal(t, uint64(1000000000), claimed.Amount, "wrong claim")

	swapped, err := client.Swap(key, asset, 25)
	assert.Nil(t, err, "swap")
	assert.Equal(t, uint64(25), swapped.Paid, "wrong paid")

	assert.Contains(t, verbose.String(), "Vault.Swap Request", "no verbose output")
}

func TestRepeatedCallsAreDistinctRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator := mocks.NewMockOperator(ctl)
	operations := vaultmocks.NewMockOperations(ctl)
	client, _, teardown := setupClient(t, operator, mocks.NewMockBalancer(ctl))
	defer teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))

	ids := make(map[digest.Digest]int)
	operator.EXPECT().
		Request(gomock.Any()).
		DoAndReturn(func(id digest.Digest) vault.Operations {
			ids[id] += 1
			return operations
		}).
		Times(2)
	operations.EXPECT().LockAsset(sameAccount{key.Account()}, asset).Return(nil).Times(2)
	operator.EXPECT().State().Return(&vault.State{CustodyCount: 1}, nil).Times(2)

	_, err := client.Lock(key, asset)
	assert.Nil(t, err, "first lock")
	_, err = client.Lock(key, asset)
	assert.Nil(t, err, "second lock")

	assert.Equal(t, 2, len(ids), "same request id for separate calls")
}

func TestSignedCallWrongNetwork(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client, _, teardown := setupClient(t, mocks.NewMockOperator(ctl), mocks.NewMockBalancer(ctl))
	defer teardown()

	_, err := client.Initialise(newKey(t, false))
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "live key accepted on test client")
}

func TestOperatorErrorReturned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator := mocks.NewMockOperator(ctl)
	operations := vaultmocks.NewMockOperations(ctl)
	client, _, teardown := setupClient(t, operator, mocks.NewMockBalancer(ctl))
	defer teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))
	operator.EXPECT().Request(gomock.Any()).Return(operations).Times(1)
	operations.EXPECT().SwapForAsset(sameAccount{key.Account()}, asset, uint64(1)).Return(fault.ErrNoAssetsAvailable).Times(1)

	_, err := client.Swap(key, asset, 1)
	if assert.NotNil(t, err, "swap on empty pool") {
		assert.Equal(t, fault.ErrNoAssetsAvailable.Error(), err.Error(), "wrong error")
	}
}

func TestQueries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator := mocks.NewMockOperator(ctl)
	balancer := mocks.NewMockBalancer(ctl)
	client, _, teardown := setupClient(t, operator, balancer)
	defer teardown()

	owner := newKey(t, true).Account()
	pool := account.Derive(vault.ProgramName, true, []byte("pool"))
	unit := digest.New([]byte("reward"))

	operator.EXPECT().State().Return(&vault.State{CustodyCount: 3}, nil).Times(1)
	operator.EXPECT().Address().Return(pool).Times(1)
	balancer.EXPECT().Holdings(sameAccount{owner}).Return([]ledger.Holding{{Unit: unit, Amount: 12}}, nil).Times(1)
	balancer.EXPECT().Balance(unit, sameAccount{owner}).Return(uint64(12)).Times(1)

	status, err := client.Status()
	assert.Nil(t, err, "status")
	assert.Equal(t, uint64(3), status.State.CustodyCount, "wrong custody count")

	holdings, err := client.Balance(owner, nil)
	assert.Nil(t, err, "holdings")
	assert.Equal(t, []ledger.Holding{{Unit: unit, Amount: 12}}, holdings, "wrong holdings")

	holdings, err = client.Balance(owner, &unit)
	assert.Nil(t, err, "balance")
	assert.Equal(t, []ledger.Holding{{Unit: unit, Amount: 12}}, holdings, "wrong balance")
}
