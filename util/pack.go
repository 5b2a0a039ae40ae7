// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/nftvault/fault"
)

// record field limits
const (
	maximumFieldLength = 8192
)

// AppendUint64 - append a Varint64 to a record
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a count prefixed byte slice to a record
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a count prefixed string to a record
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// ReadUint64 - fetch a Varint64 at offset n
//
// returns the value and the offset of the next field
func ReadUint64(record []byte, n int) (uint64, int, error) {
	if n >= len(record) {
		return 0, 0, fault.ErrNotRecordPack
	}
	value, count := FromVarint64(record[n:])
	if 0 == count {
		return 0, 0, fault.ErrNotRecordPack
	}
	return value, n + count, nil
}

// ReadBytes - fetch a count prefixed byte slice at offset n
//
// the result is a copy and can be retained
func ReadBytes(record []byte, n int) ([]byte, int, error) {
	if n >= len(record) {
		return nil, 0, fault.ErrNotRecordPack
	}
	length, count := ClippedVarint64(record[n:], 0, maximumFieldLength)
	if 0 == count {
		return nil, 0, fault.ErrNotRecordPack
	}
	n += count
	if n+length > len(record) {
		return nil, 0, fault.ErrNotRecordPack
	}
	data := make([]byte, length)
	copy(data, record[n:n+length])
	return data, n + length, nil
}

// ReadString - fetch a count prefixed string at offset n
func ReadString(record []byte, n int) (string, int, error) {
	data, n, err := ReadBytes(record, n)
	if nil != err {
		return "", 0, err
	}
	return string(data), n, nil
}
