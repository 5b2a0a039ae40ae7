// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/storage"
)

// InitialiseVault - create the pool state with caller as administrator
func (v *Vault) InitialiseVault(authority *account.Account) error {
	return v.initialiseVault(nil, authority)
}

func (v *Vault) initialiseVault(request *digest.Digest, authority *account.Account) error {
	return v.update(request, "initialise", func(trx storage.Transaction) error {
		err := requireSigner(authority)
		if nil != err {
			return err
		}
		if trx.Has(v.pools.Vaults, v.address.Bytes()) {
			return fault.ErrAlreadyInitialised
		}

		v.putState(trx, &State{
			Authority:    authority,
			LockedAssets: []LockedAssetEntry{},
		})

		v.log.Infof("initialised by: %s", authority)
		return nil
	})
}

// InitialiseRewardUnit - create and bind the unit paid out by claims
//
// the pool account is the mint authority of the new unit
func (v *Vault) InitialiseRewardUnit(caller *account.Account, unit digest.Digest) error {
	return v.initialiseRewardUnit(nil, caller, unit)
}

func (v *Vault) initialiseRewardUnit(request *digest.Digest, caller *account.Account, unit digest.Digest) error {
	return v.update(request, "reward unit", func(trx storage.Transaction) error {
		state, err := v.getState(trx)
		if nil != err {
			return err
		}
		err = requireAuthority(state, caller)
		if nil != err {
			return err
		}
		if state.RewardUnitBound {
			return fault.ErrAlreadyInitialised
		}

		err = v.transferer.CreateUnit(trx, unit, v.address, 0)
		if nil != err {
			return err
		}

		state.RewardUnit = unit
		state.RewardUnitBound = true
		v.putState(trx, state)

		v.log.Infof("reward unit: %s", unit)
		return nil
	})
}

// MintAsset - create a new asset held by caller
//
// the pool does not need to be initialised
func (v *Vault) MintAsset(caller *account.Account, name string, symbol string, uri string) (digest.Digest, error) {
	return v.mintAsset(nil, caller, name, symbol, uri)
}

func (v *Vault) mintAsset(request *digest.Digest, caller *account.Account, name string, symbol string, uri string) (digest.Digest, error) {
	var assetId digest.Digest
	err := v.update(request, "mint", func(trx storage.Transaction) error {
		err := requireSigner(caller)
		if nil != err {
			return err
		}
		err = validateMetadata(name, symbol, uri)
		if nil != err {
			return err
		}

		assetId = AssetIdentity(name, symbol, uri, caller)
		if trx.Has(v.pools.Assets, assetId[:]) {
			return fault.ErrAssetAlreadyExists
		}

		err = v.transferer.CreateUnit(trx, assetId, caller, 1)
		if nil != err {
			return err
		}
		err = v.transferer.MintTo(trx, assetId, caller, 1, callerAuthority(caller))
		if nil != err {
			return err
		}

		record := &AssetRecord{
			Name:    name,
			Symbol:  symbol,
			URI:     uri,
			AssetId: assetId,
			Owner:   caller,
		}
		trx.Put(v.pools.Assets, assetId[:], record.Pack())

		v.log.Infof("mint: %s  name: %q  owner: %s", assetId, name, caller)
		return nil
	})
	return assetId, err
}

// LockAsset - move one asset from caller into custody
func (v *Vault) LockAsset(caller *account.Account, asset digest.Digest) error {
	return v.lockAsset(nil, caller, asset)
}

func (v *Vault) lockAsset(request *digest.Digest, caller *account.Account, asset digest.Digest) error {
	return v.update(request, "lock", func(trx storage.Transaction) error {
		state, err := v.getState(trx)
		if nil != err {
			return err
		}

		err = state.lock(asset, v.clock.Now())
		if nil != err {
			return err
		}

		err = v.transferer.Transfer(trx, asset, caller, v.address, 1, callerAuthority(caller))
		if nil != err {
			return err
		}

		v.putState(trx, state)

		v.log.Infof("lock: %s  by: %s  count: %d", asset, caller, state.CustodyCount)
		return nil
	})
}

// UnlockAsset - return one asset from custody to caller and accrue its rent
func (v *Vault) UnlockAsset(caller *account.Account, asset digest.Digest) error {
	return v.unlockAsset(nil, caller, asset)
}

func (v *Vault) unlockAsset(request *digest.Digest, caller *account.Account, asset digest.Digest) error {
	return v.update(request, "unlock", func(trx storage.Transaction) error {
		state, err := v.getState(trx)
		if nil != err {
			return err
		}

		entry, err := state.unlock(asset)
		if nil != err {
			return err
		}

		duration := v.clock.Now() - entry.LockTime
		fee := Fee(duration)
		err = state.accrue(fee)
		if nil != err {
			return err
		}

		err = v.transferer.Transfer(trx, asset, v.address, caller, 1, v.poolAuthority())
		if nil != err {
			return err
		}

		v.putState(trx, state)

		v.log.Infof("unlock: %s  to: %s  duration: %ds  fee: %d  count: %d", asset, caller, duration, fee, state.CustodyCount)
		return nil
	})
}

// ClaimFee - mint all accrued rent as reward units to claimant
//
// any caller may claim; unit must be the bound reward unit
func (v *Vault) ClaimFee(claimant *account.Account, unit digest.Digest) (uint64, error) {
	return v.claimFee(nil, claimant, unit)
}

func (v *Vault) claimFee(request *digest.Digest, claimant *account.Account, unit digest.Digest) (uint64, error) {
	amount := uint64(0)
	err := v.update(request, "claim", func(trx storage.Transaction) error {
		state, err := v.getState(trx)
		if nil != err {
			return err
		}
		if !state.RewardUnitBound {
			return fault.ErrRewardUnitNotInitialised
		}
		if state.RewardUnit != unit {
			return fault.ErrRewardUnitMismatch
		}
		if 0 == state.AccruedFee {
			return fault.ErrNoFeeToClaim
		}

		amount = state.AccruedFee
		state.AccruedFee = 0
		v.putState(trx, state)

		err = v.transferer.MintTo(trx, unit, claimant, amount, v.poolAuthority())
		if nil != err {
			return err
		}

		v.log.Infof("claim: %d  by: %s", amount, claimant)
		return nil
	})
	if nil != err {
		return 0, err
	}
	return amount, nil
}

// SwapForAsset - pay native currency into the pool and take asset out
//
// asset must be a minted asset; the registry is not consulted and no
// price is enforced
func (v *Vault) SwapForAsset(caller *account.Account, asset digest.Digest, amount uint64) error {
	return v.swapForAsset(nil, caller, asset, amount)
}

func (v *Vault) swapForAsset(request *digest.Digest, caller *account.Account, asset digest.Digest, amount uint64) error {
	return v.update(request, "swap", func(trx storage.Transaction) error {
		state, err := v.getState(trx)
		if nil != err {
			return err
		}
		if 0 == state.CustodyCount {
			return fault.ErrNoAssetsAvailable
		}

		// only minted assets are custodied
		if !trx.Has(v.pools.Assets, asset[:]) {
			return fault.ErrAssetNotFound
		}

		err = v.transferer.Transfer(trx, ledger.NativeCurrency, caller, v.address, amount, callerAuthority(caller))
		if nil != err {
			return err
		}

		err = v.transferer.Transfer(trx, asset, v.address, caller, 1, v.poolAuthority())
		if nil != err {
			return err
		}

		err = state.release()
		if nil != err {
			return err
		}
		v.putState(trx, state)

		v.log.Infof("swap: %s  to: %s  paid: %d  count: %d", asset, caller, amount, state.CustodyCount)
		return nil
	})
}
