// Package main provides the CLI entrypoint for pbconvert-generator.
//
// pbconvert-generator reads a pbconvert.yaml directive file next to a Go
// package and generates conversions between the package's structs and sealed
// interfaces and their protobuf messages.
package main

import (
	"context"
	"os"
	"os/signal"

	"pbconvert-generator/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
