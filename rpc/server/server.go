// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftvault/counter"
	"github.com/bitmark-inc/nftvault/mode"
	"github.com/bitmark-inc/nftvault/rpc/node"
	"github.com/bitmark-inc/nftvault/rpc/vault"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, operator vault.Operator, balancer vault.Balancer) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(vault.New(log, mode.Is, mode.IsTesting, operator, balancer))
	_ = server.Register(node.New(log, start, version, rpcCount, operator.Address()))

	return server
}
