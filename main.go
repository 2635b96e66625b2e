// file: main.go
// version: 2.0.0
// guid: 1d7e3a9c-5b2f-4e80-a6c4-9f0b8d2e7c35

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/book-lookup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
