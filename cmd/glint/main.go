// Command glint is the CLI for working with Glint blueprint documents.
package main

import (
	"fmt"
	"os"

	"github.com/glintui/glint/cmd/glint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
