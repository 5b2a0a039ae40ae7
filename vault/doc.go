// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - custody of unique assets in a shared pool
//
// The pool is a derived ledger account owned by this program. Owners
// lock an asset into the pool and any holder may unlock it again; rent
// accrues for the time spent in custody and is settled at unlock.
// Accrued rent is claimed as reward units minted by the pool. A buyer
// may take any asset out of the pool by paying native currency.
//
// Every operation runs under the vault lock inside a single storage
// transaction, so the state record and the one ledger transfer of the
// operation are committed together or not at all.
//
// Operations reached through Request are tied to the id of a signed
// request; the id is stored with the operation and a repeat is refused.
//
// Open pool: a locked entry does not record who deposited it, so any
// caller may unlock any locked asset.
package vault
