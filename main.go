// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for ddcloud.
//
// Usage:
//
//	go run . [command] [flags]
//	./ddcloud get-api-key --chain eth
//
// See --help for the list of commands.
package main

import (
	"fmt"
	"os"

	"github.com/developerdao/ddcloud/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, cli.ErrorMessage(err))
		os.Exit(1)
	}
}
