// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/nftvault/fault"
)

const minimumPasswordLength = 8

func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fmt.Fprintf(tty, "nftvault-cli: %s", prompt)
	password, err := terminal.ReadPassword(int(tty.Fd()))
	fmt.Fprintf(tty, "\n")
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// new password entered twice
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if err := checkPasswordLength(password); nil != err {
		return "", err
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", fault.ErrPasswordMismatch
	}
	return password, nil
}

func checkPasswordLength(password string) error {
	if len(password) < minimumPasswordLength {
		return fault.ErrInvalidPasswordLength
	}
	return nil
}

// flag value if given, otherwise ask
func getPassword(flagValue string, create bool) (string, error) {
	if "" != flagValue {
		if create {
			if err := checkPasswordLength(flagValue); nil != err {
				return "", err
			}
		}
		return flagValue, nil
	}
	if create {
		return promptNewPassword()
	}
	return readPassword("password: ")
}
