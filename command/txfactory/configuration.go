// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txfactory/configuration"
	"github.com/bitmark-inc/txfactory/txid"
	"github.com/bitmark-inc/txfactory/util"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultNetworkByte = "V"
	defaultIdentifier  = txid.DefaultAlgorithm

	defaultLogDirectory = "log"
	defaultLogFile      = "txfactory.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	NetworkByte string               `gluamapper:"network_byte" json:"network_byte"`
	Identifier  txid.Algorithm       `gluamapper:"identifier" json:"identifier"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		NetworkByte: defaultNetworkByte,
		Identifier:  defaultIdentifier,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults with the log directory
// relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	dataDirectory := "."

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if _, err := parseNetworkByte(options.NetworkByte); nil != err {
		return nil, err
	}

	if !txid.ValidAlgorithm(options.Identifier) {
		return nil, fmt.Errorf("Identifier: %q is not supported", options.Identifier)
	}

	if "" == options.Logging.File || "." != filepath.Dir(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// a single character such as "T" or a decimal byte value such as "84"
func parseNetworkByte(s string) (byte, error) {
	if 1 == len(s) {
		return s[0], nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if nil != err {
		return 0, fmt.Errorf("Network byte: %q is not a character or byte value", s)
	}
	return byte(n), nil
}
