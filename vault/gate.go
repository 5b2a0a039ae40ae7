// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
)

// caller must be the pool administrator
func requireAuthority(state *State, caller *account.Account) error {
	if !state.Authority.Equal(caller) {
		return fault.ErrUnauthorised
	}
	return nil
}

// a person acting on their own account
func requireSigner(caller *account.Account) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.ErrUnauthorised
	}
	if caller.IsDerived() {
		return fault.ErrDelegateRequired
	}
	return nil
}

// authority of the caller over their own sub-accounts
func callerAuthority(caller *account.Account) ledger.Authority {
	return ledger.Direct(caller)
}

// authority of the pool over its own sub-accounts
func (v *Vault) poolAuthority() ledger.Authority {
	return v.delegate.Authority(v.seed)
}
