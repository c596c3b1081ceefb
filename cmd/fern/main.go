// Command fern renders Fern demo scenes and inspects project configuration.
package main

import (
	"fmt"
	"os"

	"github.com/go-fern/fern/cmd/fern/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
