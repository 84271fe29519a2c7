// forge-cli is a small command line client for a Forge control panel.
package main

import (
	"github.com/lexfrei/go-forge/internal/cli"
)

func main() {
	cli.Execute()
}
