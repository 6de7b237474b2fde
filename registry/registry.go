// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txfactory/fault"
	"github.com/bitmark-inc/txfactory/transactionrecord"
)

// Key - the lookup pair
type Key struct {
	Type    transactionrecord.TagType
	Version uint64
}

// String - for logs
func (key Key) String() string {
	return fmt.Sprintf("type: %d version: %d", key.Type, key.Version)
}

type entry struct {
	schema  *transactionrecord.Schema
	factory transactionrecord.Factory
}

// Registry - safe for concurrent use
type Registry struct {
	sync.RWMutex
	log     *logger.L
	entries map[Key]entry
}

// New - empty registry logging to the given channel
func New(log *logger.L) *Registry {
	return &Registry{
		log:     log,
		entries: make(map[Key]entry),
	}
}

// Register - add the factory of a schema
func (registry *Registry) Register(schema *transactionrecord.Schema) error {
	key := Key{
		Type:    schema.Type(),
		Version: schema.Version(),
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.entries[key]; ok {
		registry.log.Warnf("duplicate registration: %s", key)
		return fault.ErrTransactionAlreadyRegistered
	}

	registry.entries[key] = entry{
		schema:  schema,
		factory: transactionrecord.CreateFactory(schema),
	}
	registry.log.Debugf("registered: %s fields: %v", key, schema.Names())
	return nil
}

// Lookup - factory of a type and version
func (registry *Registry) Lookup(txType transactionrecord.TagType, version uint64) (transactionrecord.Factory, error) {
	e, err := registry.get(txType, version)
	if nil != err {
		return nil, err
	}
	return e.factory, nil
}

// Schema - schema of a type and version
func (registry *Registry) Schema(txType transactionrecord.TagType, version uint64) (*transactionrecord.Schema, error) {
	e, err := registry.get(txType, version)
	if nil != err {
		return nil, err
	}
	return e.schema, nil
}

func (registry *Registry) get(txType transactionrecord.TagType, version uint64) (entry, error) {
	key := Key{
		Type:    txType,
		Version: version,
	}

	registry.RLock()
	e, ok := registry.entries[key]
	registry.RUnlock()

	if !ok {
		registry.log.Debugf("lookup failed: %s", key)
		return entry{}, fault.NotFoundError(fmt.Sprintf("no such transaction type: %d and version: %d", txType, version))
	}

	registry.log.Debugf("lookup: %s", key)
	return e, nil
}

// Keys - all registered pairs sorted by type then version
func (registry *Registry) Keys() []Key {
	registry.RLock()
	keys := make([]Key, 0, len(registry.entries))
	for k := range registry.entries {
		keys = append(keys, k)
	}
	registry.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].Version < keys[j].Version
	})
	return keys
}
