// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every error is a single typed string value so callers compare with
// == and classify with the IsErr* functions, e.g. an RPC reply can
// map any NotFoundError to a not found status.
package fault
