// Command snipvault stores, reads, and deletes named text snippets.
//
// main() stays minimal — build the command, run it, translate failure into
// a non-zero exit. Everything else (config, wiring, dispatch) lives in
// root.go and the internal packages, so the whole command surface is
// testable without spawning a process.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
