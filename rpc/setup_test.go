// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/rpc"
	"github.com/bitmark-inc/nftvault/rpc/certificate"
	"github.com/bitmark-inc/nftvault/rpc/listeners"
	"github.com/bitmark-inc/nftvault/rpc/mocks"
	"github.com/bitmark-inc/nftvault/vault"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "rpc")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err = certificate.Generate("rpc", certFile, keyFile, false, nil)
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	operator := mocks.NewMockOperator(ctl)
	balancer := mocks.NewMockBalancer(ctl)
	operator.EXPECT().Address().Return(account.Derive(vault.ProgramName, true, []byte("pool"))).Times(1)

	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "finalise before initialise")

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)},
		Certificate:        certFile,
		PrivateKey:         keyFile,
	}

	err = rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", operator, balancer)
	assert.Nil(t, err, "initialise")

	err = rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", operator, balancer)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	assert.Nil(t, rpc.Finalise(), "finalise")
}

func TestInitialiseWhenMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{"127.0.0.1:2130"},
		Certificate:        "/nonexistent/rpc.crt",
		PrivateKey:         "/nonexistent/rpc.key",
	}

	err := rpc.Initialise(&rpcConfiguration, &listeners.HTTPSConfiguration{}, "1.0", mocks.NewMockOperator(ctl), mocks.NewMockBalancer(ctl))
	assert.NotNil(t, err, "missing certificate accepted")
}
