// Package main is the entry point for the charity CLI, a command-line client
// for the Charity fundraising contract.
package main

import (
	"charity/cli/cmd"
)

func main() {
	cmd.Execute()
}
