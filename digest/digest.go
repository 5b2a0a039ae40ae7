// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftvault/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - SHA3-256 identity of an asset or unit
//
// represented as hex text in byte order for print and JSON
// to convert to bytes just use d[:]
type Digest [Length]byte

// New - create a digest from a byte slice
func New(record []byte) Digest {
	return sha3.Sum256(record)
}

// IsZero - true if no byte of the digest is set
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String - hex representation for use by the fmt package (for %s)
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - hex representation for use by the fmt package (for %#v)
func (d Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(d[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (d *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return d.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (d Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (d *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrNotDigest
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrNotDigest
	}
	copy(d[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(d *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrNotDigest
	}
	copy(d[:], buffer)
	return nil
}

// FromString - parse a hex string to a digest
func FromString(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}
