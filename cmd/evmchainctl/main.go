// Command evmchainctl is the maintenance CLI for the indexer: an
// operator-invoked rollback and a one-shot historical backfill, both
// run straight against the store and rpc transport rather than through
// the daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "evmchainctl",
		Short: "maintenance commands for the evmchain indexer",
	}

	root.AddCommand(rollbackCmd, backfillCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
