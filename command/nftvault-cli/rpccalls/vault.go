// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/digest"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/ledger"
	"github.com/bitmark-inc/nftvault/rpc/node"
	"github.com/bitmark-inc/nftvault/rpc/vault"
	"github.com/bitmark-inc/nftvault/vaultrecord"
)

// sign a record in place
//
// the first pack returns the unsigned message together with
// ErrInvalidSignature, the second confirms the signature verifies
func sign(record vaultrecord.Record, setSignature func(account.Signature), key *account.PrivateKey) error {
	message, err := record.Pack(key.Account())
	if fault.ErrInvalidSignature != err {
		return err
	}

	setSignature(key.Sign(message))

	_, err = record.Pack(key.Account())
	return err
}

// distinct for every request sent by this client
func makeNonce() uint64 {
	return uint64(time.Now().UTC().UnixNano())
}

// call sign then send the record
func (client *Client) signedCall(method string, record vaultrecord.Record, setSignature func(account.Signature), key *account.PrivateKey, reply interface{}) error {
	if key.IsTesting() != client.testnet {
		return fault.ErrWrongNetworkForPublicKey
	}

	err := sign(record, setSignature, key)
	if nil != err {
		return err
	}

	client.printJson(method+" Request", record)

	err = client.client.Call(method, record, reply)
	if nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

// Initialise - create the pool with key as its authority
func (client *Client) Initialise(key *account.PrivateKey) (*vault.InitialiseReply, error) {
	r := &vaultrecord.Initialise{
		Authority: key.Account(),
		Nonce:     makeNonce(),
	}
	reply := &vault.InitialiseReply{}
	err := client.signedCall("Vault.Initialise", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// RewardUnit - bind the unit paid out by claims
func (client *Client) RewardUnit(key *account.PrivateKey, unit digest.Digest) (*vault.RewardUnitReply, error) {
	r := &vaultrecord.RewardUnit{
		Authority: key.Account(),
		Unit:      unit,
		Nonce:     makeNonce(),
	}
	reply := &vault.RewardUnitReply{}
	err := client.signedCall("Vault.InitialiseRewardUnit", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Mint - create a new asset owned by key
func (client *Client) Mint(key *account.PrivateKey, name string, symbol string, uri string) (*vault.MintReply, error) {
	r := &vaultrecord.Mint{
		Owner:  key.Account(),
		Name:   name,
		Symbol: symbol,
		URI:    uri,
		Nonce:  makeNonce(),
	}
	reply := &vault.MintReply{}
	err := client.signedCall("Vault.Mint", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Lock - move one unit of an asset into the pool
func (client *Client) Lock(key *account.PrivateKey, asset digest.Digest) (*vault.CustodyReply, error) {
	r := &vaultrecord.Lock{
		Owner: key.Account(),
		Asset: asset,
		Nonce: makeNonce(),
	}
	reply := &vault.CustodyReply{}
	err := client.signedCall("Vault.Lock", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Unlock - take one unit of an asset out of the pool
func (client *Client) Unlock(key *account.PrivateKey, asset digest.Digest) (*vault.CustodyReply, error) {
	r := &vaultrecord.Unlock{
		Owner: key.Account(),
		Asset: asset,
		Nonce: makeNonce(),
	}
	reply := &vault.CustodyReply{}
	err := client.signedCall("Vault.Unlock", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Claim - collect the accrued fee in reward units
func (client *Client) Claim(key *account.PrivateKey, unit digest.Digest) (*vault.ClaimReply, error) {
	r := &vaultrecord.Claim{
		Claimant: key.Account(),
		Unit:     unit,
		Nonce:    makeNonce(),
	}
	reply := &vault.ClaimReply{}
	err := client.signedCall("Vault.Claim", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Swap - pay native currency for one unit of a locked asset
func (client *Client) Swap(key *account.PrivateKey, asset digest.Digest, amount uint64) (*vault.SwapReply, error) {
	r := &vaultrecord.Swap{
		Buyer:  key.Account(),
		Asset:  asset,
		Amount: amount,
		Nonce:  makeNonce(),
	}
	reply := &vault.SwapReply{}
	err := client.signedCall("Vault.Swap", r, func(s account.Signature) { r.Signature = s }, key, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Status - committed pool state
func (client *Client) Status() (*vault.StatusReply, error) {
	reply := &vault.StatusReply{}
	err := client.client.Call("Vault.Status", vault.StatusArguments{}, reply)
	if nil != err {
		return nil, err
	}
	client.printJson("Status Reply", reply)
	return reply, nil
}

// Asset - metadata of one asset
func (client *Client) Asset(asset digest.Digest) (*vault.AssetReply, error) {
	args := vault.AssetArguments{
		AssetId: asset,
	}
	client.printJson("Asset Request", args)

	reply := &vault.AssetReply{}
	err := client.client.Call("Vault.Asset", args, reply)
	if nil != err {
		return nil, err
	}
	client.printJson("Asset Reply", reply)
	return reply, nil
}

// Balance - holdings of an account, or one unit if given
func (client *Client) Balance(owner *account.Account, unit *digest.Digest) ([]ledger.Holding, error) {
	args := vault.BalanceArguments{
		Owner: owner,
		Unit:  unit,
	}
	client.printJson("Balance Request", args)

	reply := &vault.BalanceReply{}
	err := client.client.Call("Vault.Balance", args, reply)
	if nil != err {
		return nil, err
	}
	client.printJson("Balance Reply", reply)
	return reply.Holdings, nil
}

// Info - node information
func (client *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.client.Call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
