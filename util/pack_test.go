// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftvault/fault"
	"github.com/bitmark-inc/nftvault/util"
)

func TestReadFieldsInOrder(t *testing.T) {
	record := util.AppendUint64(nil, 300)
	record = util.AppendString(record, "vault")
	record = util.AppendBytes(record, []byte{})
	record = util.AppendUint64(record, 7)

	value, n, err := util.ReadUint64(record, 0)
	assert.Nil(t, err, "read first value")
	assert.Equal(t, uint64(300), value, "wrong first value")

	s, n, err := util.ReadString(record, n)
	assert.Nil(t, err, "read string")
	assert.Equal(t, "vault", s, "wrong string")

	b, n, err := util.ReadBytes(record, n)
	assert.Nil(t, err, "read empty bytes")
	assert.Equal(t, 0, len(b), "wrong empty bytes")

	value, n, err = util.ReadUint64(record, n)
	assert.Nil(t, err, "read last value")
	assert.Equal(t, uint64(7), value, "wrong last value")
	assert.Equal(t, len(record), n, "record not fully consumed")
}

func TestReadTruncated(t *testing.T) {
	record := util.AppendString(nil, "truncated")

	_, _, err := util.ReadString(record[:4], 0)
	assert.Equal(t, fault.ErrNotRecordPack, err, "truncated string accepted")

	_, _, err = util.ReadUint64(record, len(record))
	assert.Equal(t, fault.ErrNotRecordPack, err, "read past end accepted")
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x01, 0xfe, 0xff}
	s := util.ToBase58(data)
	assert.Equal(t, data, util.FromBase58(s), "base58 round trip")
	assert.Equal(t, 0, len(util.FromBase58("0OIl")), "invalid base58 decoded")
}
