package main

import (
	"fmt"
	"os"

	"github.com/evmchain/indexer/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("indexer run into an error: %s", err)
		os.Exit(1)
	}
}
