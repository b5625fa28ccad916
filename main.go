// Package main is the entry point for the neogoto CLI.
package main

import "neogoto.dev/pkg/neogoto/cmd"

func main() {
	cmd.Execute()
}
