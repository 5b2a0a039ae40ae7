// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
)

func TestEndToEnd(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	claimant := newAccount(t)
	reward := digest.New([]byte("reward"))

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	assert.Nil(t, env.vault.InitialiseRewardUnit(authority, reward), "reward unit")

	a, err := env.vault.MintAsset(owner, "Asset A", "A", "https://example.com/a.json")
	assert.Nil(t, err, "mint")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, owner), "owner does not hold the asset")

	env.clock.EXPECT().Now().Return(int64(1000)).Times(1)
	assert.Nil(t, env.vault.LockAsset(owner, a), "lock")
	assert.Equal(t, uint64(0), env.ledger.Balance(a, owner), "asset still with owner")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, env.vault.Address()), "asset not in pool")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(1), state.CustodyCount, "wrong count after lock")
	assert.Equal(t, 1, state.Locked(a), "no registry entry after lock")
	assert.Equal(t, int64(1000), state.LockedAssets[0].LockTime, "wrong lock time")

	env.clock.EXPECT().Now().Return(int64(87400)).Times(1)
	assert.Nil(t, env.vault.UnlockAsset(owner, a), "unlock")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, owner), "asset not returned")

	state, err = env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(1000000000), state.AccruedFee, "wrong fee")
	assert.Equal(t, uint64(0), state.CustodyCount, "wrong count after unlock")
	assert.Equal(t, 0, state.Locked(a), "registry entry remains")

	amount, err := env.vault.ClaimFee(claimant, reward)
	assert.Nil(t, err, "claim")
	assert.Equal(t, uint64(1000000000), amount, "wrong claimed amount")
	assert.Equal(t, uint64(1000000000), env.ledger.Balance(reward, claimant), "reward not minted")

	state, err = env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(0), state.AccruedFee, "fee not zeroed")

	_, err = env.vault.ClaimFee(claimant, reward)
	assert.Equal(t, fault.ErrNoFeeToClaim, err, "second claim")
	assert.Equal(t, uint64(1000000000), env.ledger.Balance(reward, claimant), "second claim paid out")
}

func TestInitialise(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	other := newAccount(t)
	reward := digest.New([]byte("reward"))

	_, err := env.vault.State()
	assert.Equal(t, fault.ErrNotInitialised, err, "state before initialise")
	assert.Equal(t, fault.ErrNotInitialised, env.vault.InitialiseRewardUnit(authority, reward), "reward unit before initialise")

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, env.vault.InitialiseVault(other), "initialised twice")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.True(t, authority.Equal(state.Authority), "authority replaced")
	assert.Equal(t, uint64(0), state.CustodyCount, "non-zero count")
	assert.Equal(t, uint64(0), state.AccruedFee, "non-zero fee")
	assert.Equal(t, 0, len(state.LockedAssets), "non-empty registry")
	assert.False(t, state.RewardUnitBound, "reward unit bound")

	assert.Equal(t, fault.ErrUnauthorised, env.vault.InitialiseRewardUnit(other, reward), "reward unit by non-authority")
	assert.Nil(t, env.vault.InitialiseRewardUnit(authority, reward), "reward unit")
	assert.Equal(t, fault.ErrAlreadyInitialised, env.vault.InitialiseRewardUnit(authority, digest.New([]byte("other"))), "reward unit bound twice")

	unit, err := env.ledger.Unit(reward)
	assert.Nil(t, err, "reward unit not created")
	assert.True(t, env.vault.Address().Equal(unit.MintAuthority), "pool is not the mint authority")
}

func TestMintAsset(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	owner := newAccount(t)

	a, err := env.vault.MintAsset(owner, "Name", "SYM", "")
	assert.Nil(t, err, "mint without initialised pool")

	record, err := env.vault.Asset(a)
	assert.Nil(t, err, "asset record")
	assert.Equal(t, "Name", record.Name, "wrong name")
	assert.Equal(t, "SYM", record.Symbol, "wrong symbol")
	assert.True(t, owner.Equal(record.Owner), "wrong owner")
	assert.Equal(t, uint64(1), env.ledger.Supply(a), "wrong supply")

	_, err = env.vault.MintAsset(owner, "Name", "SYM", "")
	assert.Equal(t, fault.ErrAssetAlreadyExists, err, "minted twice")

	_, err = env.vault.MintAsset(owner, "", "SYM", "")
	assert.Equal(t, fault.ErrNameTooShort, err, "empty name")

	_, err = env.vault.MintAsset(owner, "Name", "THIS-SYMBOL-IS-TOO-LONG", "")
	assert.Equal(t, fault.ErrSymbolTooLong, err, "long symbol")

	_, err = env.vault.Asset(digest.New([]byte("missing")))
	assert.Equal(t, fault.ErrAssetRecordNotFound, err, "missing record")

	_, err = env.vault.MintAsset(env.vault.Address(), "Name", "SYM", "")
	assert.Equal(t, fault.ErrDelegateRequired, err, "mint to pool account")
}

func TestLockWithoutAsset(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	thief := newAccount(t)

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	env.clock.EXPECT().Now().Return(int64(1000)).Times(1)
	err = env.vault.LockAsset(thief, a)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "locked an asset not held")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(0), state.CustodyCount, "count changed by failed lock")
	assert.Equal(t, 0, len(state.LockedAssets), "registry changed by failed lock")
}

func TestLockBeforeInitialise(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	owner := newAccount(t)
	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	err = env.vault.LockAsset(owner, a)
	assert.Equal(t, fault.ErrNotInitialised, err, "lock before initialise")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, owner), "asset moved")
}

func TestUnlock(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	stranger := newAccount(t)

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	err = env.vault.UnlockAsset(owner, a)
	assert.Equal(t, fault.ErrAssetNotFound, err, "unlock of asset never locked")

	env.clock.EXPECT().Now().Return(int64(5000)).Times(1)
	assert.Nil(t, env.vault.LockAsset(owner, a), "lock")

	// open pool: the depositor is not recorded
	env.clock.EXPECT().Now().Return(int64(5000 + 43200)).Times(1)
	assert.Nil(t, env.vault.UnlockAsset(stranger, a), "unlock by stranger")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, stranger), "asset not delivered to caller")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(500000000), state.AccruedFee, "wrong half period fee")

	err = env.vault.UnlockAsset(owner, a)
	assert.Equal(t, fault.ErrAssetNotFound, err, "unlocked twice")
}

func TestUnlockClockBehind(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	env.clock.EXPECT().Now().Return(int64(2000)).Times(1)
	assert.Nil(t, env.vault.LockAsset(owner, a), "lock")

	env.clock.EXPECT().Now().Return(int64(1000)).Times(1)
	assert.Nil(t, env.vault.UnlockAsset(owner, a), "unlock")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(0), state.AccruedFee, "fee for negative duration")
}

func TestClaim(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	claimant := newAccount(t)
	reward := digest.New([]byte("reward"))

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")

	_, err := env.vault.ClaimFee(claimant, reward)
	assert.Equal(t, fault.ErrRewardUnitNotInitialised, err, "claim before reward unit")

	assert.Nil(t, env.vault.InitialiseRewardUnit(authority, reward), "reward unit")

	_, err = env.vault.ClaimFee(claimant, digest.New([]byte("fake")))
	assert.Equal(t, fault.ErrRewardUnitMismatch, err, "claim of other unit")

	_, err = env.vault.ClaimFee(claimant, reward)
	assert.Equal(t, fault.ErrNoFeeToClaim, err, "claim of zero fee")
}

func TestSwap(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	buyer := newAccount(t)

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	fund(t, env.ledger, buyer, 100)

	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	err = env.vault.SwapForAsset(buyer, a, 50)
	assert.Equal(t, fault.ErrNoAssetsAvailable, err, "swap from empty pool")
	assert.Equal(t, uint64(100), env.ledger.Balance(ledger.NativeCurrency, buyer), "payment taken by failed swap")

	env.clock.EXPECT().Now().Return(int64(1000)).Times(1)
	assert.Nil(t, env.vault.LockAsset(owner, a), "lock")

	err = env.vault.SwapForAsset(buyer, a, 500)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "swap without funds")

	assert.Nil(t, env.vault.SwapForAsset(buyer, a, 50), "swap")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, buyer), "asset not delivered")
	assert.Equal(t, uint64(50), env.ledger.Balance(ledger.NativeCurrency, buyer), "wrong buyer change")
	assert.Equal(t, uint64(50), env.ledger.Balance(ledger.NativeCurrency, env.vault.Address()), "payment not in pool")

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(0), state.CustodyCount, "count not decremented")
	assert.Equal(t, 1, state.Locked(a), "swap touched the registry")

	err = env.vault.SwapForAsset(buyer, a, 50)
	assert.Equal(t, fault.ErrNoAssetsAvailable, err, "swap after pool emptied")
}

func TestSwapOfUnitThatIsNotAnAsset(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	buyer := newAccount(t)
	reward := digest.New([]byte("reward"))

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	assert.Nil(t, env.vault.InitialiseRewardUnit(authority, reward), "reward unit")
	fund(t, env.ledger, buyer, 1)

	a, err := env.vault.MintAsset(owner, "Asset", "A", "")
	assert.Nil(t, err, "mint")

	env.clock.EXPECT().Now().Return(int64(1000)).Times(1)
	assert.Nil(t, env.vault.LockAsset(owner, a), "lock")

	for _, unit := range []digest.Digest{ledger.NativeCurrency, reward, digest.New([]byte("never minted"))} {
		err = env.vault.SwapForAsset(buyer, unit, 1)
		assert.Equal(t, fault.ErrAssetNotFound, err, "swap of unit: %s", unit)
	}

	state, err := env.vault.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, uint64(1), state.CustodyCount, "count changed by rejected swap")
	assert.Equal(t, uint64(1), env.ledger.Balance(ledger.NativeCurrency, buyer), "payment taken by rejected swap")
	assert.Equal(t, uint64(0), env.ledger.Balance(ledger.NativeCurrency, env.vault.Address()), "pool paid by rejected swap")

	env.clock.EXPECT().Now().Return(int64(2000)).Times(1)
	assert.Nil(t, env.vault.UnlockAsset(owner, a), "owner unlock after rejected swap")
	assert.Equal(t, uint64(1), env.ledger.Balance(a, owner), "asset not returned")
}

func TestConservation(t *testing.T) {
	env, teardown := setupTestVault(t)
	defer teardown()

	authority := newAccount(t)
	owner := newAccount(t)
	buyer := newAccount(t)

	assert.Nil(t, env.vault.InitialiseVault(authority), "initialise")
	fund(t, env.ledger, buyer, 1000)

	env.clock.EXPECT().Now().Return(int64(100)).AnyTimes()

	assets := []digest.Digest{}
	for _, name := range []string{"one", "two", "three", "four"} {
		a, err := env.vault.MintAsset(owner, name, "N", "")
		assert.Nil(t, err, "mint: %s", name)
		assets = append(assets, a)
	}

	locks := 0
	unlocks := 0
	swaps := 0
	check := func(step string) {
		state, err := env.vault.State()
		assert.Nil(t, err, "%s: state", step)
		assert.Equal(t, uint64(locks-unlocks-swaps), state.CustodyCount, "%s: count not conserved", step)
	}

	for _, a := range assets {
		assert.Nil(t, env.vault.LockAsset(owner, a), "lock")
		locks += 1
	}
	check("after locks")

	assert.Nil(t, env.vault.UnlockAsset(owner, assets[0]), "unlock")
	unlocks += 1
	check("after unlock")

	assert.Equal(t, fault.ErrAssetNotFound, env.vault.UnlockAsset(owner, assets[0]), "repeat unlock")
	check("after failed unlock")

	assert.Nil(t, env.vault.SwapForAsset(buyer, assets[1], 10), "swap")
	swaps += 1
	check("after swap")

	assert.Equal(t, fault.ErrInsufficientBalance, env.vault.SwapForAsset(buyer, assets[0], 10), "swap of asset not in pool")
	check("after failed swap")

	assert.Nil(t, env.vault.UnlockAsset(owner, assets[2]), "unlock")
	unlocks += 1
	assert.Nil(t, env.vault.UnlockAsset(owner, assets[3]), "unlock")
	unlocks += 1
	check("after all unlocks")

	// the swapped asset's entry is still registered but nothing is in custody
	assert.Equal(t, fault.ErrCustodyCountUnderflow, env.vault.UnlockAsset(owner, assets[1]), "unlock of swapped asset")
	check("final")
}
