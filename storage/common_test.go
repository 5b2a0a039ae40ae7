// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/nftvault/storage"
)

// configure for testing, returns the cleanup function
func setup(t *testing.T) func() {
	dir, err := ioutil.TempDir("", "nftvault-storage")
	if nil != err {
		t.Fatalf("create temp dir error: %s", err)
	}

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}

	return func() {
		storage.Finalise()
		os.RemoveAll(dir)
	}
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// write items in a single committed transaction
func putItems(t *testing.T, items []stringElement) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, e := range items {
		trx.Put(storage.Pool.TestData, []byte(e.key), []byte(e.value))
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
