// SPDX-License-Identifier: MIT

// Command relclass classifies and transforms binary relations given as rows
// of 0/1 characters on the command line:
//
//	relclass classify --acyclic 110 011 001
//	relclass closure --kind transitive 010 001 000
//	relclass extremal --output yaml 1111 1011 0000 0000
//	relclass narrow --policy preserve --keep 1,3 111 111 111
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("relclass failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
