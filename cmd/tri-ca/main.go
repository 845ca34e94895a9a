// Command tri-ca evolves three-state, left-neighbor cellular automata and
// writes their lookup tables, spacetime fields and grayscale renderings.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("tri-ca failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
