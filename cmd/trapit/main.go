// Package main is the entry point for the TrapIT backend.
package main

import (
	"os"

	"github.com/trapit/trapit/internal/trapit/app"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = app.BuildVersion

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
