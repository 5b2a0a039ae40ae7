// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/account"
	"github.com/bitmark-inc/nftvault/counter"
	"github.com/bitmark-inc/nftvault/mode"
	"github.com/bitmark-inc/nftvault/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Pool    *account.Account
	counter *counter.Counter
}

// New - create the node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, pool *account.Account) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Pool:    pool,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string           `json:"chain"`
	Mode    string           `json:"mode"`
	RPCs    uint64           `json:"rpcs"`
	Version string           `json:"version"`
	Uptime  string           `json:"uptime"`
	Pool    *account.Account `json:"pool"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Pool = node.Pool
	return nil
}
