// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/command/nftvault-cli/rpccalls"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

func runSetup(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	connect := c.String("connect")
	if "" == connect {
		return fmt.Errorf("connect cannot be blank")
	}
	m.config.Connect = connect
	m.save = true

	printJson(m.w, m.config)
	return nil
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return fmt.Errorf("identity name cannot be blank")
	}

	password, err := getPassword(c.GlobalString("password"), true)
	if nil != err {
		return err
	}

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	err = m.config.AddIdentity(name, c.String("description"), privateKey, password)
	if nil != err {
		return err
	}
	m.save = true

	printJson(m.w, struct {
		Name    string           `json:"name"`
		Account *account.Account `json:"account"`
	}{
		Name:    name,
		Account: privateKey.Account(),
	})
	return nil
}

// decrypt the selected identity
func signingKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	password, err := getPassword(c.GlobalString("password"), false)
	if nil != err {
		return nil, err
	}
	private, err := m.config.Private(password, c.GlobalString("identity"))
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", private.Account)
	}
	return private.PrivateKey, nil
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if "" == m.config.Connect {
		return nil, fmt.Errorf("no connection configured, run setup")
	}
	return rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
}

func digestFlag(c *cli.Context, name string) (digest.Digest, error) {
	s := c.String(name)
	if "" == s {
		return digest.Digest{}, fmt.Errorf("%s cannot be blank", name)
	}
	return digest.FromString(s)
}

// run a signed operation with the decrypted identity
func signed(c *cli.Context, f func(*rpccalls.Client, *account.PrivateKey) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := f(client, key)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

// run a query
func query(c *cli.Context, f func(*rpccalls.Client) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := f(client)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runInitialise(c *cli.Context) error {
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Initialise(key)
	})
}

func runRewardUnit(c *cli.Context) error {
	unit, err := digestFlag(c, "unit")
	if nil != err {
		return err
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.RewardUnit(key, unit)
	})
}

func runMint(c *cli.Context) error {
	name := c.String("name")
	symbol := c.String("symbol")
	if "" == name || "" == symbol {
		return fault.ErrMissingParameters
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Mint(key, name, symbol, c.String("uri"))
	})
}

func runLock(c *cli.Context) error {
	asset, err := digestFlag(c, "asset")
	if nil != err {
		return err
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Lock(key, asset)
	})
}

func runUnlock(c *cli.Context) error {
	asset, err := digestFlag(c, "asset")
	if nil != err {
		return err
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Unlock(key, asset)
	})
}

func runClaim(c *cli.Context) error {
	unit, err := digestFlag(c, "unit")
	if nil != err {
		return err
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Claim(key, unit)
	})
}

func runSwap(c *cli.Context) error {
	asset, err := digestFlag(c, "asset")
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fault.ErrInvalidAmount
	}
	return signed(c, func(client *rpccalls.Client, key *account.PrivateKey) (interface{}, error) {
		return client.Swap(key, asset, amount)
	})
}

func runStatus(c *cli.Context) error {
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Status()
	})
}

func runAsset(c *cli.Context) error {
	asset, err := digestFlag(c, "asset")
	if nil != err {
		return err
	}
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Asset(asset)
	})
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerAccount(c.String("owner"), c.GlobalString("identity"), m)
	if nil != err {
		return err
	}

	var unit *digest.Digest
	if "" != c.String("unit") {
		u, err := digestFlag(c, "unit")
		if nil != err {
			return err
		}
		unit = &u
	}

	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Balance(owner, unit)
	})
}

func runInfo(c *cli.Context) error {
	return query(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.Info()
	})
}

// an identity name from the configuration or a base58 account
func ownerAccount(owner string, identity string, m *metadata) (*account.Account, error) {
	if "" == owner {
		return m.config.Account(identity)
	}
	if a, err := m.config.Account(owner); nil == err {
		return a, nil
	}
	a, err := account.AccountFromBase58(owner)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}
