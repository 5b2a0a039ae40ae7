// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

import (
	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/util"
)

// Unpack - turn a byte slice into a record
//
// the signature is verified against the record's own account and the
// account must belong to the selected network; n is the number of
// bytes consumed
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *vaultrecord.Lock:
func (record Packed) Unpack(testnet bool) (r Record, n int, e error) {

	recordType, n, err := util.ReadUint64(record, 0)
	if nil != err {
		return nil, 0, fault.ErrNotRecordPack
	}

	signer, n, err := readAccount(record, n, testnet)
	if nil != err {
		return nil, 0, err
	}

	switch TagType(recordType) {

	case InitialiseTag:
		r = &Initialise{
			Authority: signer,
		}

	case RewardUnitTag:
		unit, next, err := readDigest(record, n)
		if nil != err {
			return nil, 0, err
		}
		n = next
		r = &RewardUnit{
			Authority: signer,
			Unit:      unit,
		}

	case MintTag:
		m := &Mint{
			Owner: signer,
		}
		m.Name, n, err = util.ReadString(record, n)
		if nil != err {
			return nil, 0, err
		}
		m.Symbol, n, err = util.ReadString(record, n)
		if nil != err {
			return nil, 0, err
		}
		m.URI, n, err = util.ReadString(record, n)
		if nil != err {
			return nil, 0, err
		}
		r = m

	case LockTag, UnlockTag:
		asset, next, err := readDigest(record, n)
		if nil != err {
			return nil, 0, err
		}
		n = next
		if LockTag == TagType(recordType) {
			r = &Lock{
				Owner: signer,
				Asset: asset,
			}
		} else {
			r = &Unlock{
				Owner: signer,
				Asset: asset,
			}
		}

	case ClaimTag:
		unit, next, err := readDigest(record, n)
		if nil != err {
			return nil, 0, err
		}
		n = next
		r = &Claim{
			Claimant: signer,
			Unit:     unit,
		}

	case SwapTag:
		asset, next, err := readDigest(record, n)
		if nil != err {
			return nil, 0, err
		}
		amount, next, err := util.ReadUint64(record, next)
		if nil != err {
			return nil, 0, err
		}
		n = next
		r = &Swap{
			Buyer:  signer,
			Asset:  asset,
			Amount: amount,
		}

	default:
		return nil, 0, fault.ErrUnknownRecord
	}

	nonce, n, err := util.ReadUint64(record, n)
	if nil != err {
		return nil, 0, err
	}

	// signature is over everything before it
	message := record[:n]
	signature, n, err := util.ReadBytes(record, n)
	if nil != err {
		return nil, 0, err
	}
	err = signer.CheckSignature(message, signature)
	if nil != err {
		return nil, 0, err
	}
	setNonceAndSignature(r, nonce, signature)

	return r, n, nil
}

func setNonceAndSignature(r Record, nonce uint64, signature account.Signature) {
	switch record := r.(type) {
	case *Initialise:
		record.Nonce = nonce
		record.Signature = signature
	case *RewardUnit:
		record.Nonce = nonce
		record.Signature = signature
	case *Mint:
		record.Nonce = nonce
		record.Signature = signature
	case *Lock:
		record.Nonce = nonce
		record.Signature = signature
	case *Unlock:
		record.Nonce = nonce
		record.Signature = signature
	case *Claim:
		record.Nonce = nonce
		record.Signature = signature
	case *Swap:
		record.Nonce = nonce
		record.Signature = signature
	}
}

func readAccount(record []byte, n int, testnet bool) (*account.Account, int, error) {
	accountBytes, n, err := util.ReadBytes(record, n)
	if nil != err {
		return nil, 0, err
	}
	a, err := account.AccountFromBytes(accountBytes)
	if nil != err {
		return nil, 0, err
	}
	if a.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	return a, n, nil
}

func readDigest(record []byte, n int) (digest.Digest, int, error) {
	var d digest.Digest
	if n+digest.Length > len(record) {
		return d, 0, fault.ErrNotRecordPack
	}
	copy(d[:], record[n:n+digest.Length])
	return d, n + digest.Length, nil
}
