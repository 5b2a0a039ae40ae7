// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/mode"
	"github.com/bitmark-inc/nftvault/rpc/ratelimit"
	"github.com/bitmark-inc/nftvault/vault"
	"github.com/bitmark-inc/nftvault/vaultrecord"
)

const (
	rateLimitVault = 100
	rateBurstVault = 50

	maximumHoldings = 100
)

// Operator - the vault operations exposed over RPC
//
// state changes go through Request so that a signed record is
// processed at most once
type Operator interface {
	Address() *account.Account
	State() (*vault.State, error)
	Asset(digest.Digest) (*vault.AssetRecord, error)
	Request(digest.Digest) vault.Operations
}

// Balancer - ledger queries exposed over RPC
type Balancer interface {
	Balance(digest.Digest, *account.Account) uint64
	Supply(digest.Digest) uint64
	Holdings(*account.Account) ([]ledger.Holding, error)
}

// Vault - type for the RPC
type Vault struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Operator       Operator
	Balancer       Balancer
}

// New - create the RPC handler
func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	operator Operator,
	balancer Balancer,
) *Vault {
	return &Vault{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitVault, rateBurstVault),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Operator:       operator,
		Balancer:       balancer,
	}
}

// checks common to every state changing call
func (v *Vault) accept(record vaultrecord.Record) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if !v.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableInReadOnlyMode
	}

	if nil == record || nil == record.Signer() {
		return fault.ErrInvalidItem
	}

	if record.Signer().IsTesting() != v.IsTestingChain() {
		return fault.ErrWrongNetworkForPublicKey
	}

	_, err := record.Pack(record.Signer())
	return err
}

// Initialise a pool
// -----------------

// InitialiseReply - result from initialise RPC
type InitialiseReply struct {
	Address *account.Account `json:"address"`
}

// Initialise - create the pool state with the signer as authority
func (v *Vault) Initialise(arguments *vaultrecord.Initialise, reply *InitialiseReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Initialise: authority: %s", arguments.Authority)

	err := v.Operator.Request(arguments.RequestId()).InitialiseVault(arguments.Authority)
	if nil != err {
		return err
	}
	reply.Address = v.Operator.Address()
	return nil
}

// RewardUnitReply - result from reward unit RPC
type RewardUnitReply struct {
	Unit digest.Digest `json:"unit"`
}

// InitialiseRewardUnit - bind the unit paid out by claims
func (v *Vault) InitialiseRewardUnit(arguments *vaultrecord.RewardUnit, reply *RewardUnitReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.InitialiseRewardUnit: %+v", arguments)

	err := v.Operator.Request(arguments.RequestId()).InitialiseRewardUnit(arguments.Authority, arguments.Unit)
	if nil != err {
		return err
	}
	reply.Unit = arguments.Unit
	return nil
}

// Mint an asset
// -------------

// MintReply - result from mint RPC
type MintReply struct {
	AssetId digest.Digest `json:"assetId"`
}

// Mint - create a new asset owned by the signer
func (v *Vault) Mint(arguments *vaultrecord.Mint, reply *MintReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Mint: name: %q  symbol: %q  uri: %q", arguments.Name, arguments.Symbol, arguments.URI)

	assetId, err := v.Operator.Request(arguments.RequestId()).MintAsset(arguments.Owner, arguments.Name, arguments.Symbol, arguments.URI)
	if nil != err {
		return err
	}

	v.Log.Debugf("asset id: %v", assetId)
	reply.AssetId = assetId
	return nil
}

// Custody
// -------

// CustodyReply - result from lock and unlock RPCs
type CustodyReply struct {
	AssetId      digest.Digest `json:"assetId"`
	CustodyCount uint64        `json:"custodyCount"`
}

// Lock - move one unit of an asset into the pool
func (v *Vault) Lock(arguments *vaultrecord.Lock, reply *CustodyReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Lock: %+v", arguments)

	err := v.Operator.Request(arguments.RequestId()).LockAsset(arguments.Owner, arguments.Asset)
	if nil != err {
		return err
	}
	return v.custodyReply(arguments.Asset, reply)
}

// Unlock - return one unit of an asset from the pool and accrue rent
func (v *Vault) Unlock(arguments *vaultrecord.Unlock, reply *CustodyReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Unlock: %+v", arguments)

	err := v.Operator.Request(arguments.RequestId()).UnlockAsset(arguments.Owner, arguments.Asset)
	if nil != err {
		return err
	}
	return v.custodyReply(arguments.Asset, reply)
}

func (v *Vault) custodyReply(asset digest.Digest, reply *CustodyReply) error {
	state, err := v.Operator.State()
	if nil != err {
		return err
	}
	reply.AssetId = asset
	reply.CustodyCount = state.CustodyCount
	return nil
}

// Rent
// ----

// ClaimReply - result from claim RPC
type ClaimReply struct {
	Unit   digest.Digest `json:"unit"`
	Amount uint64        `json:"amount,string"`
}

// Claim - pay the accrued rent to the signer
func (v *Vault) Claim(arguments *vaultrecord.Claim, reply *ClaimReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Claim: %+v", arguments)

	amount, err := v.Operator.Request(arguments.RequestId()).ClaimFee(arguments.Claimant, arguments.Unit)
	if nil != err {
		return err
	}
	reply.Unit = arguments.Unit
	reply.Amount = amount
	return nil
}

// Swap
// ----

// SwapReply - result from swap RPC
type SwapReply struct {
	AssetId digest.Digest `json:"assetId"`
	Paid    uint64        `json:"paid,string"`
}

// Swap - pay native currency to the pool for one unit of an asset
func (v *Vault) Swap(arguments *vaultrecord.Swap, reply *SwapReply) error {
	if err := v.accept(arguments); nil != err {
		return err
	}

	v.Log.Infof("Vault.Swap: %+v", arguments)

	err := v.Operator.Request(arguments.RequestId()).SwapForAsset(arguments.Buyer, arguments.Asset, arguments.Amount)
	if nil != err {
		return err
	}
	reply.AssetId = arguments.Asset
	reply.Paid = arguments.Amount
	return nil
}

// Queries
// -------

// StatusArguments - empty arguments for status request
type StatusArguments struct{}

// StatusReply - committed pool state
type StatusReply struct {
	Address *account.Account `json:"address"`
	State   *vault.State     `json:"state"`
}

// Status - return the pool state
func (v *Vault) Status(_ *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	state, err := v.Operator.State()
	if nil != err {
		return err
	}
	reply.Address = v.Operator.Address()
	reply.State = state
	return nil
}

// AssetArguments - asset to look up
type AssetArguments struct {
	AssetId digest.Digest `json:"assetId"`
}

// AssetReply - asset metadata and supply
type AssetReply struct {
	Asset  *vault.AssetRecord `json:"asset"`
	Supply uint64             `json:"supply,string"`
	Locked int                `json:"locked"`
}

// Asset - return the metadata of a minted asset
func (v *Vault) Asset(arguments *AssetArguments, reply *AssetReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrInvalidItem
	}

	v.Log.Infof("Vault.Asset: %v", arguments.AssetId)

	record, err := v.Operator.Asset(arguments.AssetId)
	if nil != err {
		return err
	}
	reply.Asset = record
	reply.Supply = v.Balancer.Supply(arguments.AssetId)

	// an uninitialised pool has nothing locked
	state, err := v.Operator.State()
	if nil == err {
		reply.Locked = state.Locked(arguments.AssetId)
	}
	return nil
}

// BalanceArguments - account to report
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
	Unit  *digest.Digest   `json:"unit,omitempty"`
}

// BalanceReply - holdings of an account
type BalanceReply struct {
	Holdings []ledger.Holding `json:"holdings"`
}

// Balance - list the units held by an account, or a single unit
func (v *Vault) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.ErrInvalidItem
	}
	if arguments.Owner.IsTesting() != v.IsTestingChain() {
		return fault.ErrWrongNetworkForPublicKey
	}

	if nil != arguments.Unit {
		reply.Holdings = []ledger.Holding{
			{
				Unit:   *arguments.Unit,
				Amount: v.Balancer.Balance(*arguments.Unit, arguments.Owner),
			},
		}
		return nil
	}

	holdings, err := v.Balancer.Holdings(arguments.Owner)
	if nil != err {
		return err
	}
	if len(holdings) > maximumHoldings {
		holdings = holdings[:maximumHoldings]
	}
	reply.Holdings = holdings
	return nil
}
