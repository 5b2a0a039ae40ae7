// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

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
	"github.com/bitmark-inc/nftvault/vaultrecord"
)

type testHandler struct {
	handler    *rpcvault.Vault
	operator   *mocks.MockOperator
	operations *vaultmocks.MockOperations
	balancer   *mocks.MockBalancer
	ctl        *gomock.Controller
}

func setupHandler(t *testing.T, normal bool) *testHandler {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	operator := mocks.NewMockOperator(ctl)
	balancer := mocks.NewMockBalancer(ctl)

	h := rpcvault.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return normal },
		func() bool { return true },
		operator,
		balancer,
	)
	return &testHandler{
		handler:    h,
		operator:   operator,
		operations: vaultmocks.NewMockOperations(ctl),
		balancer:   balancer,
		ctl:        ctl,
	}
}

// the handler must bind each record to its own request id
func (h *testHandler) expectRequest(r vaultrecord.Record) *vaultmocks.MockOperationsMockRecorder {
	h.operator.EXPECT().Request(r.RequestId()).Return(h.operations).Times(1)
	return h.operations.EXPECT()
}

func (h *testHandler) teardown() {
	h.ctl.Finish()
	fixtures.TeardownTestLogger()
}

func newKey(t *testing.T, test bool) *account.PrivateKey {
	key, err := account.NewPrivateKey(test)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func signedLock(t *testing.T, key *account.PrivateKey, asset digest.Digest) *vaultrecord.Lock {
	lock := &vaultrecord.Lock{
		Owner: key.Account(),
		Asset: asset,
		Nonce: 1,
	}
	message, _ := lock.Pack(key.Account())
	lock.Signature = key.Sign(message)
	return lock
}

func TestLock(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))
	lock := signedLock(t, key, asset)

	h.expectRequest(lock).LockAsset(lock.Owner, asset).Return(nil).Times(1)
	h.operator.EXPECT().State().Return(&vault.State{CustodyCount: 3}, nil).Times(1)

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Nil(t, err, "lock")
	assert.Equal(t, asset, reply.AssetId, "wrong asset")
	assert.Equal(t, uint64(3), reply.CustodyCount, "wrong custody count")
}

func TestLockWhenBadSignature(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	lock := signedLock(t, key, digest.New([]byte("asset")))
	lock.Asset = digest.New([]byte("other"))

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered record accepted")
}

func TestLockWhenWrongNetwork(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, false)
	lock := signedLock(t, key, digest.New([]byte("asset")))

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "live key accepted on test chain")
}

func TestLockWhenReadOnly(t *testing.T) {
	h := setupHandler(t, false)
	defer h.teardown()

	key := newKey(t, true)
	lock := signedLock(t, key, digest.New([]byte("asset")))

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Equal(t, fault.ErrNotAvailableInReadOnlyMode, err, "write accepted in read only mode")
}

func TestLockWhenVaultFails(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))
	lock := signedLock(t, key, asset)

	h.expectRequest(lock).LockAsset(lock.Owner, asset).Return(fault.ErrInsufficientBalance).Times(1)

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "wrong error")
}

func TestLockRepeated(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))
	lock := signedLock(t, key, asset)

	gomock.InOrder(
		h.expectRequest(lock).LockAsset(lock.Owner, asset).Return(nil).Times(1),
		h.operator.EXPECT().State().Return(&vault.State{CustodyCount: 1}, nil).Times(1),
		h.expectRequest(lock).LockAsset(lock.Owner, asset).Return(fault.ErrRequestAlreadyProcessed).Times(1),
	)

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(lock, &reply)
	assert.Nil(t, err, "first lock")

	// anyone holding the signed record can send it again
	replayed := *lock
	err = h.handler.Lock(&replayed, &reply)
	assert.Equal(t, fault.ErrRequestAlreadyProcessed, err, "repeated lock accepted")
}

func TestLockNewNonce(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	asset := digest.New([]byte("asset"))
	first := signedLock(t, key, asset)

	second := &vaultrecord.Lock{
		Owner: key.Account(),
		Asset: asset,
		Nonce: 2,
	}
	message, _ := second.Pack(key.Account())
	second.Signature = key.Sign(message)
	assert.NotEqual(t, first.RequestId(), second.RequestId(), "nonce does not change the request")

	h.expectRequest(second).LockAsset(second.Owner, asset).Return(nil).Times(1)
	h.operator.EXPECT().State().Return(&vault.State{CustodyCount: 1}, nil).Times(1)

	var reply rpcvault.CustodyReply
	err := h.handler.Lock(second, &reply)
	assert.Nil(t, err, "lock with new nonce")
}

func TestMint(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	mint := &vaultrecord.Mint{
		Owner:  key.Account(),
		Name:   "Sunrise",
		Symbol: "SUN",
		URI:    "ipfs://sunrise",
	}
	message, _ := mint.Pack(key.Account())
	mint.Signature = key.Sign(message)

	assetId := vault.AssetIdentity(mint.Name, mint.Symbol, mint.URI, mint.Owner)
	h.expectRequest(mint).MintAsset(mint.Owner, mint.Name, mint.Symbol, mint.URI).Return(assetId, nil).Times(1)

	var reply rpcvault.MintReply
	err := h.handler.Mint(mint, &reply)
	assert.Nil(t, err, "mint")
	assert.Equal(t, assetId, reply.AssetId, "wrong asset id")
}

func TestClaim(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	claim := &vaultrecord.Claim{
		Claimant: key.Account(),
		Unit:     digest.New([]byte("reward")),
	}
	message, _ := claim.Pack(key.Account())
	claim.Signature = key.Sign(message)

	h.expectRequest(claim).ClaimFee(claim.Claimant, claim.Unit).Return(uint64(1000000000), nil).Times(1)

	var reply rpcvault.ClaimReply
	err := h.handler.Claim(claim, &reply)
	assert.Nil(t, err, "claim")
	assert.Equal(t, uint64(1000000000), reply.Amount, "wrong amount")
}

func TestSwap(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	key := newKey(t, true)
	swap := &vaultrecord.Swap{
		Buyer:  key.Account(),
		Asset:  digest.New([]byte("asset")),
		Amount: 500,
	}
	message, _ := swap.Pack(key.Account())
	swap.Signature = key.Sign(message)

	h.expectRequest(swap).SwapForAsset(swap.Buyer, swap.Asset, uint64(500)).Return(fault.ErrNoAssetsAvailable).Times(1)

	var reply rpcvault.SwapReply
	err := h.handler.Swap(swap, &reply)
	assert.Equal(t, fault.ErrNoAssetsAvailable, err, "wrong error")
}

func TestStatus(t *testing.T) {
	h := setupHandler(t, false)
	defer h.teardown()

	address := account.Derive(vault.ProgramName, true, []byte("pool"))
	state := &vault.State{CustodyCount: 1, AccruedFee: 5}

	h.operator.EXPECT().State().Return(state, nil).Times(1)
	h.operator.EXPECT().Address().Return(address).Times(1)

	var reply rpcvault.StatusReply
	err := h.handler.Status(&rpcvault.StatusArguments{}, &reply)
	assert.Nil(t, err, "status available in read only mode")
	assert.Equal(t, state, reply.State, "wrong state")
	assert.Equal(t, address, reply.Address, "wrong address")
}

func TestAsset(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	assetId := digest.New([]byte("asset"))
	record := &vault.AssetRecord{Name: "n", Symbol: "s", AssetId: assetId}
	state := &vault.State{
		CustodyCount: 2,
		LockedAssets: []vault.LockedAssetEntry{
			{AssetId: assetId, LockTime: 1},
			{AssetId: assetId, LockTime: 2},
		},
	}

	h.operator.EXPECT().Asset(assetId).Return(record, nil).Times(1)
	h.operator.EXPECT().State().Return(state, nil).Times(1)
	h.balancer.EXPECT().Supply(assetId).Return(uint64(4)).Times(1)

	var reply rpcvault.AssetReply
	err := h.handler.Asset(&rpcvault.AssetArguments{AssetId: assetId}, &reply)
	assert.Nil(t, err, "asset")
	assert.Equal(t, record, reply.Asset, "wrong record")
	assert.Equal(t, uint64(4), reply.Supply, "wrong supply")
	assert.Equal(t, 2, reply.Locked, "wrong locked count")
}

func TestBalance(t *testing.T) {
	h := setupHandler(t, true)
	defer h.teardown()

	owner := newKey(t, true).Account()
	holdings := []ledger.Holding{
		{Unit: ledger.NativeCurrency, Amount: 10},
	}
	h.balancer.EXPECT().Holdings(owner).Return(holdings, nil).Times(1)

	var reply rpcvault.BalanceReply
	err := h.handler.Balance(&rpcvault.BalanceArguments{Owner: owner}, &reply)
	assert.Nil(t, err, "balance")
	assert.Equal(t, holdings, reply.Holdings, "wrong holdings")

	unit := ledger.NativeCurrency
	h.balancer.EXPECT().Balance(unit, owner).Return(uint64(7)).Times(1)
	err = h.handler.Balance(&rpcvault.BalanceArguments{Owner: owner, Unit: &unit}, &reply)
	assert.Nil(t, err, "single balance")
	assert.Equal(t, []ledger.Holding{{Unit: unit, Amount: 7}}, reply.Holdings, "wrong single holding")

	err = h.handler.Balance(&rpcvault.BalanceArguments{}, &reply)
	assert.Equal(t, fault.ErrInvalidItem, err, "missing owner accepted")
}
