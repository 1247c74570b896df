// main is the entry point for the courier CLI.
package main

import (
	"os"

	"github.com/NSBTW/courier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
