// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txfactory/transactions"
	"github.com/bitmark-inc/txfactory/txid"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "network-byte", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides the configuration file
	if 1 == len(options["network-byte"]) {
		theConfiguration.NetworkByte = options["network-byte"][0]
	}
	networkByte, err := parseNetworkByte(theConfiguration.NetworkByte)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	quiet := len(options["quiet"]) > 0

	// these commands require the configuration and
	// perform enquiries on the configuration
	if processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	reg, err := transactions.NewRegistry(logger.New("registry"), networkByte)
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}

	p := &processor{
		log:      log,
		registry: reg,
		hasher:   txid.Hasher{Algorithm: theConfiguration.Identifier},
		quiet:    quiet,
	}
	p.processDataCommand(arguments)
}
