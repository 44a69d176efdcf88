// main is the entry point for the skillscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/skillscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
