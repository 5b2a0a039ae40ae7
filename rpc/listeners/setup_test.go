// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/fixtures"
	"github.com/bitmark-inc/nftvault/rpc/certificate"
)

// generate a throwaway self-signed certificate
func testCertificate(t *testing.T) (*tls.Config, [32]byte) {
	dir, err := ioutil.TempDir("", "listeners")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	certFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err = certificate.Generate("test", certFile, keyFile, false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}

	tlsConfig, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", certFile, keyFile)
	if nil != err {
		t.Fatalf("load certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}
