// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"unicode/utf8"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/util"
)

// metadata limits in characters
const (
	minNameLength   = 1
	maxNameLength   = 64
	minSymbolLength = 1
	maxSymbolLength = 16
	maxURILength    = 256
)

// AssetRecord - metadata of a minted asset
//
// owner is the minting account and is not updated by later transfers
type AssetRecord struct {
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
	URI     string           `json:"uri"`
	AssetId digest.Digest    `json:"assetId"`
	Owner   *account.Account `json:"owner"`
}

// AssetIdentity - identity of the asset minted by owner with this metadata
func AssetIdentity(name string, symbol string, uri string, owner *account.Account) digest.Digest {
	return digest.New(packMetadata(nil, name, symbol, uri, owner))
}

func packMetadata(buffer []byte, name string, symbol string, uri string, owner *account.Account) []byte {
	buffer = util.AppendString(buffer, name)
	buffer = util.AppendString(buffer, symbol)
	buffer = util.AppendString(buffer, uri)
	return util.AppendBytes(buffer, owner.Bytes())
}

// check metadata lengths
func validateMetadata(name string, symbol string, uri string) error {
	n := utf8.RuneCountInString(name)
	if n < minNameLength {
		return fault.ErrNameTooShort
	}
	if n > maxNameLength {
		return fault.ErrNameTooLong
	}

	n = utf8.RuneCountInString(symbol)
	if n < minSymbolLength {
		return fault.ErrSymbolTooShort
	}
	if n > maxSymbolLength {
		return fault.ErrSymbolTooLong
	}

	if utf8.RuneCountInString(uri) > maxURILength {
		return fault.ErrURITooLong
	}
	return nil
}

// Pack - binary form of the record; the asset id is the storage key
func (record *AssetRecord) Pack() []byte {
	buffer := util.AppendUint64(nil, assetRecordTag)
	return packMetadata(buffer, record.Name, record.Symbol, record.URI, record.Owner)
}

// UnpackAssetRecord - decode a packed record stored under assetId
func UnpackAssetRecord(assetId digest.Digest, packed []byte) (*AssetRecord, error) {
	tag, n, err := util.ReadUint64(packed, 0)
	if nil != err {
		return nil, err
	}
	if assetRecordTag != tag {
		return nil, fault.ErrUnknownRecord
	}

	record := &AssetRecord{
		AssetId: assetId,
	}
	record.Name, n, err = util.ReadString(packed, n)
	if nil != err {
		return nil, err
	}
	record.Symbol, n, err = util.ReadString(packed, n)
	if nil != err {
		return nil, err
	}
	record.URI, n, err = util.ReadString(packed, n)
	if nil != err {
		return nil, err
	}
	ownerBytes, _, err := util.ReadBytes(packed, n)
	if nil != err {
		return nil, err
	}
	record.Owner, err = account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}
	return record, nil
}
