// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactions

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txfactory/registry"
)

// Register - add the whole catalogue for a network
func Register(reg *registry.Registry, networkByte byte) error {
	for _, schema := range Schemas(networkByte) {
		if err := reg.Register(schema); nil != err {
			return err
		}
	}
	return nil
}

// NewRegistry - registry holding the catalogue for a network
func NewRegistry(log *logger.L, networkByte byte) (*registry.Registry, error) {
	reg := registry.New(log)
	if err := Register(reg, networkByte); nil != err {
		return nil, err
	}
	log.Infof("registered %d transaction schemas for network: %q", len(reg.Keys()), networkByte)
	return reg, nil
}
