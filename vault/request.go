// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
)

// Operations - the state changing pool operations
type Operations interface {
	InitialiseVault(*account.Account) error
	InitialiseRewardUnit(*account.Account, digest.Digest) error
	MintAsset(*account.Account, string, string, string) (digest.Digest, error)
	LockAsset(*account.Account, digest.Digest) error
	UnlockAsset(*account.Account, digest.Digest) error
	ClaimFee(*account.Account, digest.Digest) (uint64, error)
	SwapForAsset(*account.Account, digest.Digest, uint64) error
}

// Request - pool operations bound to one signed request
//
// the id is stored by a successful operation, any later operation
// with the same id fails with fault.ErrRequestAlreadyProcessed
type Request struct {
	vault *Vault
	id    digest.Digest
}

// Request - operations that succeed at most once for id
func (v *Vault) Request(id digest.Digest) Operations {
	return &Request{
		vault: v,
		id:    id,
	}
}

// Processed - true if a request with id has succeeded
func (v *Vault) Processed(id digest.Digest) bool {
	return nil != v.pools.Requests.Get(id[:])
}

// InitialiseVault - see Vault.InitialiseVault
func (r *Request) InitialiseVault(authority *account.Account) error {
	return r.vault.initialiseVault(&r.id, authority)
}

// InitialiseRewardUnit - see Vault.InitialiseRewardUnit
func (r *Request) InitialiseRewardUnit(caller *account.Account, unit digest.Digest) error {
	return r.vault.initialiseRewardUnit(&r.id, caller, unit)
}

// MintAsset - see Vault.MintAsset
func (r *Request) MintAsset(caller *account.Account, name string, symbol string, uri string) (digest.Digest, error) {
	return r.vault.mintAsset(&r.id, caller, name, symbol, uri)
}

// LockAsset - see Vault.LockAsset
func (r *Request) LockAsset(caller *account.Account, asset digest.Digest) error {
	return r.vault.lockAsset(&r.id, caller, asset)
}

// UnlockAsset - see Vault.UnlockAsset
func (r *Request) UnlockAsset(caller *account.Account, asset digest.Digest) error {
	return r.vault.unlockAsset(&r.id, caller, asset)
}

// ClaimFee - see Vault.ClaimFee
func (r *Request) ClaimFee(claimant *account.Account, unit digest.Digest) (uint64, error) {
	return r.vault.claimFee(&r.id, claimant, unit)
}

// SwapForAsset - see Vault.SwapForAsset
func (r *Request) SwapForAsset(caller *account.Account, asset digest.Digest, amount uint64) error {
	return r.vault.swapForAsset(&r.id, caller, asset, amount)
}
