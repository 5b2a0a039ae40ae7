// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single Transaction that accumulates a
// LevelDB batch; nothing reaches the disk until Commit and Abort
// discards the whole batch.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. pool     = derived vault account bytes
// 4. asset    = asset identity as 32 byte SHA3-256(data)
// 5. unit     = unit identity as 32 byte SHA3-256(data)
// 6. owner    = account bytes (key variant ++ public key)
// 7. amount   = big endian uint64 (8 bytes)
//
// Vaults:
//
//   V ++ pool            - vault state
//                          data: packed vault state
//
// Assets:
//
//   A ++ asset           - asset metadata written at mint time
//                          data: packed asset record
//
// Ledger:
//
//   U ++ unit            - unit definition
//                          data: maximum supply(varint) ++ mint authority(varint length ++ bytes)
//   S ++ unit            - circulating supply
//                          data: amount
//   B ++ owner ++ unit   - sub-account balance
//                          data: amount
//
// Testing:
//   Z ++ key             - testing data
package storage
