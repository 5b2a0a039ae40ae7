// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

func newClient() *http.Client {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	return &http.Client{
		Transport: customTransport,
	}
}

func setupHTTPS(t *testing.T) (string, *testHandler, listeners.Listener) {
	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000

	listen := fmt.Sprintf("127.0.0.1:%d", port)
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {allow},
		},
	}

	tlsConf, _ := testCertificate(t)

	hdlr := &testHandler{}
	h, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		tlsConf,
		hdlr,
	)
	if err != nil {
		t.Error("NewHTTPS with error: ", err)
		t.FailNow()
	}

	return fmt.Sprintf("https://%s/nftvault/", listen), hdlr, h
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	url, hdlr, h := setupHTTPS(t)

	assert.Equal(t, 1, len(hdlr.allow["details"]), "allow list not set")

	err := h.Serve()
	assert.Nil(t, err, "wrong Serve")

	client := newClient()
	for _, path := range []string{"rpc", "details"} {
		resp, err := client.Get(url + path)
		if err != nil {
			t.Error("client get with error: ", err)
			t.FailNow()
		}
		content, _ := ioutil.ReadAll(resp.Body)
		_ = resp.Body.Close()

		expected := map[string]string{"rpc": "RPC", "details": "Details"}[path]
		assert.Equal(t, expected, string(content), "wrong %s call", path)
	}
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Nil(t, err, "disabled listener error")
	assert.Nil(t, h, "listener created without addresses")
}

func TestHttpsListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			Listen: []string{"127.0.0.1:2131"},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestHttpsListenerWhenBadAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 1,
			Listen:             []string{"127.0.0.1:2131"},
			Allow: map[string][]string{
				"details": {"not-a-cidr"},
			},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.NotNil(t, err, "bad cidr accepted")
}
