package main

import (
	"os"

	// Import built-in actions so their init() registration runs
	_ "github.com/arthur-debert/switchcase/pkg/actions"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
