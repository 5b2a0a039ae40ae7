// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftvault/configuration"
	"github.com/bitmark-inc/nftvault/fault"
)

type fund struct {
	Account string `gluamapper:"account"`
	Amount  uint64 `gluamapper:"amount"`
}

type sample struct {
	Chain  string            `gluamapper:"chain"`
	Pool   string            `gluamapper:"pool"`
	Listen []string          `gluamapper:"listen"`
	Fund   []fund            `gluamapper:"fund"`
	Levels map[string]string `gluamapper:"levels"`
}

const script = `
local name = "vault-" .. suffix
return {
    chain = "testing",
    pool = name,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
    fund = {
        { account = "abc", amount = 1000000000 },
    },
    levels = { main = "info" },
}
`

func writeScript(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeScript(t, script)
	defer cleanup()

	var config sample
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"suffix": "one"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "testing", config.Chain, "wrong chain")
	assert.Equal(t, "vault-one", config.Pool, "variable not applied")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.Listen, "wrong listen")
	assert.Equal(t, []fund{{Account: "abc", Amount: 1000000000}}, config.Fund, "wrong fund")
	assert.Equal(t, "info", config.Levels["main"], "wrong level")
}

func TestParseNotTable(t *testing.T) {
	fileName, cleanup := writeScript(t, `return "text"`)
	defer cleanup()

	var config sample
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "non table accepted")
}

func TestParseScriptError(t *testing.T) {
	fileName, cleanup := writeScript(t, `return {`)
	defer cleanup()

	var config sample
	err := configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.NotNil(t, err, "broken script accepted")
}
