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

// Pack - Varint64(tag) followed by the fields in struct order with the signature last
//
// NOTE: every Pack returns the "unsigned" message on signature
//       failure so that a client can sign it
func (r *Initialise) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Authority, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *RewardUnit) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Authority, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *Mint) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Owner, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *Lock) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Owner, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *Unlock) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Owner, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *Claim) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Claimant, signer, r.Signature); nil != err {
		return nil, err
	}
	return sign(r.message(), signer, r.Signature)
}

// Pack - see Initialise.Pack
func (r *Swap) Pack(signer *account.Account) (Packed, error) {
	if err := checkSigner(r.Buyer, signer, r.Signature); nil != err {
		return nil, err
	}
	if 0 == r.Amount {
		return nil, fault.ErrInvalidAmount
	}
	return sign(r.message(), signer, r.Signature)
}

// RequestId - digest of the unsigned message
//
// the signature is excluded so a request keeps its identity however
// it is signed
func (r *Initialise) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *RewardUnit) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *Mint) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *Lock) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *Unlock) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *Claim) RequestId() digest.Digest { return digest.New(r.message()) }

// RequestId - see Initialise.RequestId
func (r *Swap) RequestId() digest.Digest { return digest.New(r.message()) }

func (r *Initialise) message() Packed {
	message := newMessage(InitialiseTag)
	message = appendAccount(message, r.Authority)
	return appendNonce(message, r.Nonce)
}

func (r *RewardUnit) message() Packed {
	message := newMessage(RewardUnitTag)
	message = appendAccount(message, r.Authority)
	message = appendDigest(message, r.Unit)
	return appendNonce(message, r.Nonce)
}

func (r *Mint) message() Packed {
	message := newMessage(MintTag)
	message = appendAccount(message, r.Owner)
	message = Packed(util.AppendString(message, r.Name))
	message = Packed(util.AppendString(message, r.Symbol))
	message = Packed(util.AppendString(message, r.URI))
	return appendNonce(message, r.Nonce)
}

func (r *Lock) message() Packed {
	message := newMessage(LockTag)
	message = appendAccount(message, r.Owner)
	message = appendDigest(message, r.Asset)
	return appendNonce(message, r.Nonce)
}

func (r *Unlock) message() Packed {
	message := newMessage(UnlockTag)
	message = appendAccount(message, r.Owner)
	message = appendDigest(message, r.Asset)
	return appendNonce(message, r.Nonce)
}

func (r *Claim) message() Packed {
	message := newMessage(ClaimTag)
	message = appendAccount(message, r.Claimant)
	message = appendDigest(message, r.Unit)
	return appendNonce(message, r.Nonce)
}

func (r *Swap) message() Packed {
	message := newMessage(SwapTag)
	message = appendAccount(message, r.Buyer)
	message = appendDigest(message, r.Asset)
	message = Packed(util.AppendUint64(message, r.Amount))
	return appendNonce(message, r.Nonce)
}

// the record's own account must be present and be the signer
func checkSigner(owner *account.Account, signer *account.Account, signature account.Signature) error {
	if len(signature) > maxSignatureLength {
		return fault.ErrSignatureTooLong
	}
	if nil == owner || nil == owner.AccountInterface || nil == signer {
		return fault.ErrMissingParameters
	}
	if !owner.Equal(signer) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// verify then append the signature
func sign(message Packed, signer *account.Account, signature account.Signature) (Packed, error) {
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return Packed(util.AppendBytes(message, signature)), nil
}

func newMessage(tag TagType) Packed {
	return Packed(util.AppendUint64(nil, uint64(tag)))
}

func appendAccount(buffer Packed, address *account.Account) Packed {
	return Packed(util.AppendBytes(buffer, address.Bytes()))
}

func appendDigest(buffer Packed, d digest.Digest) Packed {
	return append(buffer, d[:]...)
}

func appendNonce(buffer Packed, nonce uint64) Packed {
	return Packed(util.AppendUint64(buffer, nonce))
}
