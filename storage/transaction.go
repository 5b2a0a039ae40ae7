// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single database write transaction
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

// TransactionImpl - implements Transaction over one Access
type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

// Begin - start a transaction
func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

// Put - queue a key/value write
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - queue a write of a big endian uint64
func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - queue a delete
func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value including uncommitted writes
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.get(key, true)
}

// GetN - read a big endian uint64 including uncommitted writes
func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.getN(key, true)
}

// Has - check a key including uncommitted writes
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return nil != handle.get(key, true)
}

// InUse - true while the transaction is open
func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}

// Commit - write all queued changes atomically
func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - drop all queued changes
func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}
