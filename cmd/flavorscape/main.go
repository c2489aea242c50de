// Package main provides the flavorscape CLI.
package main

import "github.com/mesh-intelligence/flavorscape/internal/cli"

func main() {
	cli.Execute()
}
