package main

import (
	"context"

	"github.com/evmchain/indexer/internal/config"
	"github.com/evmchain/indexer/internal/rollback"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/store"
	"github.com/evmchain/indexer/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var rollbackHash string

var rollbackCmd = &cobra.Command{
	Use:   "rollback <block_number>",
	Short: "rewind the store to a target block number",
	Args:  cobra.ExactArgs(1),
	RunE:  runRollback,
}

func init() {
	rollbackCmd.Flags().StringVar(&rollbackHash, "hash", "", "replacement block_hash for the new checkpoint head")
}

func runRollback(cmd *cobra.Command, args []string) error {
	target, err := parseBlockNumber(args[0])
	if err != nil {
		return err
	}

	logger := log.NewZapLogger("evmchainctl", zapcore.InfoLevel)

	cfg, warning, err := config.NewApp()
	if err != nil {
		return err
	}
	if warning != "" {
		logger.Warnw(warning)
	}

	gormStore, err := store.NewGormStore(cfg.DSN())
	if err != nil {
		return err
	}

	endpoints := make([]rpc.Endpoint, 0, len(cfg.RPCURLs))
	for _, url := range cfg.RPCURLs {
		client, err := ethclient.Dial(url)
		if err != nil {
			return err
		}
		endpoints = append(endpoints, rpc.Endpoint{URL: url, Client: client})
	}
	transport := rpc.New(logger, rpc.Config{}, endpoints)

	ctx := context.Background()
	outcome, err := rollback.Run(ctx, logger, gormStore, transport, target, rollbackHash)
	if err != nil {
		return err
	}

	cmd.Printf("rolled back from block %d to block %d\n", outcome.PreviousHead, outcome.NewHead)
	return nil
}
