// Package main is the entry point for the lantern-site CLI binary.
package main

import (
	"os"

	cli "lantern-site/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
