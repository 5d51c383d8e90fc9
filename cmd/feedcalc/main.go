// Command feedcalc runs the feeding calculations from the command line.
//
// Usage:
//
//	feedcalc plan --weight 5 --birth-date 2025-03-15 --objective maintain --condition ideal --activity high
//	feedcalc --output yaml rer --weight 10
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
