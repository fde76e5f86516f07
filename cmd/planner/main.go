// Package main is the entry point for the planner authentication service.
package main

import (
	"os"

	"github.com/aussiebroadwan/planner/internal/auth/app"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = app.BuildVersion

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
