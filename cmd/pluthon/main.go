// Command pluthon is a thin wrapper around pkg/cli, which holds the actual
// argument handling.
package main

import (
	"fmt"
	"os"

	"github.com/OpShin/pluthon-go/pkg/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pluthon: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}
