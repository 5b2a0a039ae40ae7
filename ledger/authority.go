// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/fault"
)

// Authority - proof that a change to an account is permitted
//
// the zero value authorises nothing
type Authority struct {
	signer    *account.Account
	delegated bool
}

// Direct - authority of a signer whose ownership proof has been checked
func Direct(signer *account.Account) Authority {
	return Authority{
		signer:    signer,
		delegated: false,
	}
}

// Signer - the account this authority acts as
func (a Authority) Signer() *account.Account {
	return a.signer
}

// Delegate - capability to act for the accounts derived from one program
type Delegate struct {
	program string
	test    bool
}

// Register - obtain the delegate for a program
//
// each program name can be registered only once per ledger
func (l *Ledger) Register(program string) (*Delegate, error) {
	if "" == program {
		return nil, fault.ErrInvalidProgramName
	}

	l.Lock()
	defer l.Unlock()

	if _, ok := l.programs[program]; ok {
		return nil, fault.ErrProgramAlreadyRegistered
	}
	l.programs[program] = struct{}{}

	l.log.Infof("registered program: %q", program)

	return &Delegate{
		program: program,
		test:    l.test,
	}, nil
}

// Program - name the delegate was registered under
func (d *Delegate) Program() string {
	return d.program
}

// Account - derived account for the seeds
func (d *Delegate) Account(seeds ...[]byte) *account.Account {
	return account.Derive(d.program, d.test, seeds...)
}

// Authority - authority to act as the derived account for the seeds
func (d *Delegate) Authority(seeds ...[]byte) Authority {
	if nil == d || "" == d.program {
		return Authority{}
	}
	return Authority{
		signer:    d.Account(seeds...),
		delegated: true,
	}
}

// check an authority may act as required
func authorise(authority Authority, required *account.Account) error {
	if nil == authority.signer || nil == required {
		return fault.ErrUnauthorised
	}
	if authority.signer.IsDerived() && !authority.delegated {
		return fault.ErrDelegateRequired
	}
	if !authority.signer.Equal(required) {
		return fault.ErrUnauthorised
	}
	return nil
}
