// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/util"
)

// TagType - type code for requests
type TagType uint64

// enumerate the possible request record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	InitialiseTag = TagType(iota) // create the pool state
	RewardUnitTag = TagType(iota) // bind the reward unit
	MintTag       = TagType(iota) // mint a new asset
	LockTag       = TagType(iota) // move an asset into custody
	UnlockTag     = TagType(iota) // take an asset out of custody
	ClaimTag      = TagType(iota) // claim accrued rent
	SwapTag       = TagType(iota) // buy an asset from the pool

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic request interface
type Record interface {
	Pack(signer *account.Account) (Packed, error)
	Signer() *account.Account
	RequestId() digest.Digest
}

// byte sizes for various fields
const (
	maxSignatureLength = 1024
)

// Initialise - create the pool with the signer as administrator
type Initialise struct {
	Authority *account.Account  `json:"authority"`    // base58
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// RewardUnit - bind the unit minted by claims
type RewardUnit struct {
	Authority *account.Account  `json:"authority"`    // base58
	Unit      digest.Digest     `json:"unit"`         // hex
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// Mint - create an asset owned by the signer
type Mint struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Name      string            `json:"name"`         // utf-8
	Symbol    string            `json:"symbol"`       // utf-8
	URI       string            `json:"uri"`          // utf-8
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// Lock - deposit an asset into custody
type Lock struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Asset     digest.Digest     `json:"asset"`        // hex
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// Unlock - withdraw an asset from custody to the signer
type Unlock struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Asset     digest.Digest     `json:"asset"`        // hex
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// Claim - claim the accrued rent as reward units
type Claim struct {
	Claimant  *account.Account  `json:"claimant"`     // base58
	Unit      digest.Digest     `json:"unit"`         // hex
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated requests
	Signature account.Signature `json:"signature"`    // hex
}

// Swap - pay native currency for an asset in custody
type Swap struct {
	Buyer     *account.Account  `json:"buyer"`         // base58
	Asset     digest.Digest     `json:"asset"`         // hex
	Amount    uint64            `json:"amount,string"` // native currency
	Nonce     uint64            `json:"nonce,string"`  // distinguishes repeated requests
	Signature account.Signature `json:"signature"`     // hex
}

// Signer - the account that must sign the record
func (r *Initialise) Signer() *account.Account { return r.Authority }

// Signer - the account that must sign the record
func (r *RewardUnit) Signer() *account.Account { return r.Authority }

// Signer - the account that must sign the record
func (r *Mint) Signer() *account.Account { return r.Owner }

// Signer - the account that must sign the record
func (r *Lock) Signer() *account.Account { return r.Owner }

// Signer - the account that must sign the record
func (r *Unlock) Signer() *account.Account { return r.Owner }

// Signer - the account that must sign the record
func (r *Claim) Signer() *account.Account { return r.Claimant }

// Signer - the account that must sign the record
func (r *Swap) Signer() *account.Account { return r.Buyer }

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a request record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Initialise, Initialise:
		return "Initialise", true
	case *RewardUnit, RewardUnit:
		return "RewardUnit", true
	case *Mint, Mint:
		return "Mint", true
	case *Lock, Lock:
		return "Lock", true
	case *Unlock, Unlock:
		return "Unlock", true
	case *Claim, Claim:
		return "Claim", true
	case *Swap, Swap:
		return "Swap", true
	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
