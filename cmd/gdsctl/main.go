// Package main is the entry point for the gdsctl binary.
package main

import (
	"os"

	"sharegov/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
