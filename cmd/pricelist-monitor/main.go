// Package main is the entry point for the pricelist-monitor.
package main

import (
	"os"

	"github.com/donaldgifford/pricelist-monitor/cmd/pricelist-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
