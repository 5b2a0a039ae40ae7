// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - key/value overlay in front of the database
type Cache interface {
	Get(string) (value []byte, op int, found bool)
	Set(int, string, []byte)
	Items() map[string]CacheData
	Clear()
}

// cache operations
const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

// CacheData - an operation and the value it wrote
type CacheData struct {
	Op    int
	Value []byte
}

type dbCache struct {
	cache      *cache.Cache
	expiration time.Duration
}

// read cache of committed values, entries age out
func newCache() Cache {
	return &dbCache{
		cache:      cache.New(defaultTimeout, defaultExpiration),
		expiration: defaultExpiration,
	}
}

// uncommitted writes of the open transaction, kept until commit or abort
func newPending() Cache {
	return &dbCache{
		cache:      cache.New(cache.NoExpiration, 0),
		expiration: cache.NoExpiration,
	}
}

func (c *dbCache) Get(key string) ([]byte, int, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}
	data := obj.(CacheData)
	return data.Value, data.Op, true
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := CacheData{
		Op:    op,
		Value: value,
	}
	c.cache.Set(key, cached, c.expiration)
}

func (c *dbCache) Items() map[string]CacheData {
	items := c.cache.Items()
	result := make(map[string]CacheData, len(items))
	for key, item := range items {
		result[key] = item.Object.(CacheData)
	}
	return result
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
