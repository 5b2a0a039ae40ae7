// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/util"
)

// record tags
const (
	stateTag       = 0x01
	assetRecordTag = 0x02
)

// State - the pool's single shared record
type State struct {
	Authority       *account.Account   `json:"authority"`
	CustodyCount    uint64             `json:"custodyCount"`
	AccruedFee      uint64             `json:"accruedFee"`
	RewardUnitBound bool               `json:"rewardUnitBound"`
	RewardUnit      digest.Digest      `json:"rewardUnit"`
	LockedAssets    []LockedAssetEntry `json:"lockedAssets"`
}

// LockedAssetEntry - one asset in custody
type LockedAssetEntry struct {
	AssetId  digest.Digest `json:"assetId"`
	LockTime int64         `json:"lockTime"`
}

// size of a packed entry: asset id ++ big endian lock time
const entrySize = digest.Length + 8

// lock - append an entry in custody order
func (state *State) lock(asset digest.Digest, now int64) error {
	if state.CustodyCount+1 < state.CustodyCount {
		return fault.ErrCustodyCountOverflow
	}
	state.LockedAssets = append(state.LockedAssets, LockedAssetEntry{
		AssetId:  asset,
		LockTime: now,
	})
	state.CustodyCount += 1
	return nil
}

// unlock - remove the first entry for asset
func (state *State) unlock(asset digest.Digest) (LockedAssetEntry, error) {
	for i, entry := range state.LockedAssets {
		if entry.AssetId != asset {
			continue
		}
		if 0 == state.CustodyCount {
			return LockedAssetEntry{}, fault.ErrCustodyCountUnderflow
		}
		state.LockedAssets = append(state.LockedAssets[:i], state.LockedAssets[i+1:]...)
		state.CustodyCount -= 1
		return entry, nil
	}
	return LockedAssetEntry{}, fault.ErrAssetNotFound
}

// release - count one asset out of custody without touching the registry
func (state *State) release() error {
	if 0 == state.CustodyCount {
		return fault.ErrNoAssetsAvailable
	}
	state.CustodyCount -= 1
	return nil
}

// accrue - add rent to the fee ledger
func (state *State) accrue(fee uint64) error {
	total := state.AccruedFee + fee
	if total < state.AccruedFee {
		return fault.ErrFeeOverflow
	}
	state.AccruedFee = total
	return nil
}

// Locked - number of registry entries for an asset
func (state *State) Locked(asset digest.Digest) int {
	n := 0
	for _, entry := range state.LockedAssets {
		if entry.AssetId == asset {
			n += 1
		}
	}
	return n
}

// Pack - binary form of the state
func (state *State) Pack() []byte {
	buffer := util.AppendUint64(nil, stateTag)
	buffer = util.AppendBytes(buffer, state.Authority.Bytes())
	buffer = util.AppendUint64(buffer, state.CustodyCount)
	buffer = util.AppendUint64(buffer, state.AccruedFee)
	if state.RewardUnitBound {
		buffer = append(buffer, 1)
	} else {
		buffer = append(buffer, 0)
	}
	buffer = append(buffer, state.RewardUnit[:]...)
	buffer = util.AppendUint64(buffer, uint64(len(state.LockedAssets)))
	for _, entry := range state.LockedAssets {
		buffer = append(buffer, entry.AssetId[:]...)
		t := make([]byte, 8)
		binary.BigEndian.PutUint64(t, uint64(entry.LockTime))
		buffer = append(buffer, t...)
	}
	return buffer
}

// UnpackState - decode a packed state
func UnpackState(record []byte) (*State, error) {
	tag, n, err := util.ReadUint64(record, 0)
	if nil != err {
		return nil, err
	}
	if stateTag != tag {
		return nil, fault.ErrInvalidStateRecord
	}

	authorityBytes, n, err := util.ReadBytes(record, n)
	if nil != err {
		return nil, err
	}
	authority, err := account.AccountFromBytes(authorityBytes)
	if nil != err {
		return nil, err
	}

	state := &State{
		Authority: authority,
	}

	state.CustodyCount, n, err = util.ReadUint64(record, n)
	if nil != err {
		return nil, err
	}
	state.AccruedFee, n, err = util.ReadUint64(record, n)
	if nil != err {
		return nil, err
	}

	if n+1+digest.Length > len(record) {
		return nil, fault.ErrInvalidStateRecord
	}
	switch record[n] {
	case 0:
	case 1:
		state.RewardUnitBound = true
	default:
		return nil, fault.ErrInvalidStateRecord
	}
	n += 1
	copy(state.RewardUnit[:], record[n:n+digest.Length])
	n += digest.Length

	count, n, err := util.ReadUint64(record, n)
	if nil != err {
		return nil, err
	}
	if count > uint64(len(record)-n)/entrySize || uint64(len(record)-n) != count*entrySize {
		return nil, fault.ErrInvalidStateRecord
	}

	state.LockedAssets = make([]LockedAssetEntry, count)
	for i := range state.LockedAssets {
		copy(state.LockedAssets[i].AssetId[:], record[n:n+digest.Length])
		n += digest.Length
		state.LockedAssets[i].LockTime = int64(binary.BigEndian.Uint64(record[n : n+8]))
		n += 8
	}
	return state, nil
}
