package main

import (
	"fmt"
	"os"

	"github.com/teranos/assocgen/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cli.IsStale(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
