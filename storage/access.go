// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/nftvault/fault"
)

// Access - for Database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	GetPending([]byte) ([]byte, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - batch, pending writes and read cache over one database
type AccessData struct {
	sync.Mutex
	inUse   bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	cache   Cache
	pending Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache, pending Cache) Access {
	return &AccessData{
		inUse:   false,
		db:      db,
		batch:   batch,
		cache:   cache,
		pending: pending,
	}
}

// Begin - claim the batch
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - add a write to the batch
func (d *AccessData) Put(key []byte, value []byte) {
	d.pending.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - add a delete to the batch
func (d *AccessData) Delete(key []byte) {
	d.pending.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch to the database and release it
//
// on a write error the batch is discarded as for Abort
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrNotInitialised
	}

	err := d.db.Write(d.batch, nil)
	if nil == err {
		for key, data := range d.pending.Items() {
			d.cache.Set(data.Op, key, data.Value)
		}
	}

	d.reset()
	return err
}

// Abort - discard every write since Begin and release the batch
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.pending.Clear()
	d.inUse = false
}

// Get - committed value of a key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	value, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}

	// only commits fill the cache
	return d.db.Get(key, nil)
}

// GetPending - value of a key including writes not yet committed
func (d *AccessData) GetPending(key []byte) ([]byte, error) {
	value, op, found := d.pending.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.Get(key)
}

// Iterator - iterate over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// InUse - true between Begin and Commit or Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}
