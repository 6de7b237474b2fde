// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/txfactory/registry"
	"github.com/bitmark-inc/txfactory/transactions"
	"github.com/bitmark-inc/txfactory/txid"
)

// setup command handler
//
// commands that need neither the configuration nor the registry
func processSetupCommand(program string, arguments []string) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "types", "t", "validate", "check", "encode", "e", "bytes", "b", "id", "body":
		return false // defer processing until registry is loaded

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--network-byte=N] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  types                      (t)      - list the transaction types and versions\n")
		fmt.Printf("\n")

		fmt.Printf("  validate FILE              (check)  - list the field errors of a JSON transaction\n")
		fmt.Printf("\n")

		fmt.Printf("  encode FILE                (e)      - canonical bytes of a JSON transaction as hex\n")
		fmt.Printf("\n")

		fmt.Printf("  bytes FILE                 (b)      - canonical bytes as an array of signed bytes\n")
		fmt.Printf("\n")

		fmt.Printf("  id FILE                             - transaction id of a JSON transaction\n")
		fmt.Printf("\n")

		fmt.Printf("  body FILE                           - the record body of a JSON transaction\n")
		fmt.Printf("\n")

		fmt.Printf("  FILE of %q reads standard input\n", "-")
		fmt.Printf("\n")

		if "help" == command || "h" == command || "?" == command {
			return true
		}
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// state needed by the data commands
type processor struct {
	log      *logger.L
	registry *registry.Registry
	hasher   txid.Hasher
	quiet    bool
}

// data command handler
// the registry is loaded so these commands can create records
func (p *processor) processDataCommand(arguments []string) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	log := p.log
	ctx := context.Background()

	switch command {
	case "types", "t":
		for _, key := range p.registry.Keys() {
			schema, err := p.registry.Schema(key.Type, key.Version)
			if nil != err {
				exitwithstatus.Message("error: %s", err)
			}
			fmt.Printf("%4d %2d %-12s %v\n", key.Type, key.Version, transactions.Name(key.Type), schema.Names())
		}

	case "validate", "check":
		record := p.readRecord(arguments)
		errors := record.Errors()
		for _, e := range errors {
			fmt.Printf("%s\n", e)
		}
		if 0 != len(errors) {
			log.Warnf("invalid transaction type: %d", record.Type())
			exitwithstatus.Exit(1)
		}
		if !p.quiet {
			fmt.Printf("valid\n")
		}

	case "encode", "e":
		record := p.readRecord(arguments)
		packed, err := record.Encode(ctx)
		if nil != err {
			exitwithstatus.Message("encode error: %s", err)
		}
		s, _ := packed.MarshalText()
		fmt.Printf("%s\n", s)

	case "bytes", "b":
		record := p.readRecord(arguments)
		packed, err := record.Encode(ctx)
		if nil != err {
			exitwithstatus.Message("encode error: %s", err)
		}
		printJson(packed.Int8s())

	case "id":
		record := p.readRecord(arguments)
		id, err := record.MakeId(ctx, p.hasher.Identify)
		if nil != err {
			exitwithstatus.Message("id error: %s", err)
		}
		log.Infof("id: %s", id)
		fmt.Printf("%s\n", id)

	case "body":
		record := p.readRecord(arguments)
		printJson(record)

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJson(value interface{}) {
	b, err := json.MarshalIndent(value, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
