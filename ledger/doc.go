// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - units and sub-account balances
//
// A unit is a kind of token identified by a digest. Each unit has a
// mint authority and an optional maximum supply; an asset is a unit
// with a maximum supply of one. A sub-account is the balance of one
// unit held by one account.
//
// Every change is written through a storage.Transaction supplied by
// the caller, so a failure anywhere in a caller's operation leaves
// balances untouched once the transaction is aborted.
//
// Authorities:
//
//   Direct(signer)            - a person whose signature the caller has verified;
//                               never accepted for a derived account
//   Delegate.Authority(seeds) - the account derived from the registered
//                               program and seeds; only the program holding
//                               the Delegate can produce it
package ledger
