// Package main is the entry point for the trecsweep CLI.
package main

import "trecsweep.dev/pkg/trecsweep/cmd"

func main() {
	cmd.Execute()
}
