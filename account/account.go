// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	ED25519 = iota + 1 // signing keys held by people
	Derived            // keyless accounts owned by a program
	// end of list (one greater than last item)
	algorithmLimit
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	derivedKeySize = 32
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - methods for accounts
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// DerivedAccount - an address computed from a program name and seeds
//
// there is no private key, so no signature can ever verify;
// only the program holding the ledger delegate can move its funds
type DerivedAccount struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - convert a Base58 encoded string and returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrNotPublicKey
	}

	checksumStart := len(accountDecoded) - checksumLength
	account, err := AccountFromBytes(accountDecoded[:checksumStart])
	if nil != err {
		return nil, err
	}

	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return account, nil
}

// AccountFromBytes - convert a byte encoded buffer and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm < ED25519 || keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	publicKey := make([]byte, len(accountBytes)-keyVariantLength)
	copy(publicKey, accountBytes[keyVariantLength:])

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	case Derived:
		if derivedKeySize != len(publicKey) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &Account{
			AccountInterface: &DerivedAccount{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// Derive - compute the keyless account owned by program for the given seeds
func Derive(program string, test bool, seeds ...[]byte) *Account {
	buffer := util.AppendString(nil, "derived")
	buffer = util.AppendString(buffer, program)
	for _, seed := range seeds {
		buffer = util.AppendBytes(buffer, seed)
	}
	key := sha3.Sum256(buffer)
	return &Account{
		AccountInterface: &DerivedAccount{
			Test:      test,
			PublicKey: key[:],
		},
	}
}

// UnmarshalText - convert string to account structure
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// IsZero - detect an unset account or one whose public key is all zeros
func (account *Account) IsZero() bool {
	if nil == account || nil == account.AccountInterface {
		return true
	}
	for _, b := range account.PublicKeyBytes() {
		if 0 != b {
			return false
		}
	}
	return true
}

// IsDerived - true for program owned accounts
func (account *Account) IsDerived() bool {
	return nil != account && nil != account.AccountInterface && Derived == account.KeyType()
}

// Equal - compare the encoded form of two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// encode key variant and key then append checksum
func toBase58(algorithm int, public bool, test bool, key []byte) string {
	buffer := variantBytes(algorithm, public, test, key)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

func variantBytes(algorithm int, public bool, test bool, key []byte) []byte {
	keyVariant := byte(algorithm << algorithmShift)
	if public {
		keyVariant |= publicKeyCode
	}
	if test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, key...)
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	return variantBytes(ED25519, true, account.Test, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	return toBase58(ED25519, true, account.Test, account.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// Derived
// -------

// KeyType - key type code (see enumeration above)
func (account *DerivedAccount) KeyType() int {
	return Derived
}

// PublicKeyBytes - the derived address bytes
func (account *DerivedAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - always fails
func (account *DerivedAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.ErrInvalidSignature
}

// Bytes - byte slice for encoded key
func (account *DerivedAccount) Bytes() []byte {
	return variantBytes(Derived, true, account.Test, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *DerivedAccount) String() string {
	return toBase58(Derived, true, account.Test, account.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account DerivedAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the address is in test mode or not
func (account DerivedAccount) IsTesting() bool {
	return account.Test
}
