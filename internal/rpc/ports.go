package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// EthClient is the subset of *ethclient.Client the transport drives.
// *ethclient.Client satisfies this directly, the same way the teacher's
// internal/ethereum.EthClient is satisfied by it.
//
//counterfeiter:generate -o fake -fake-name EthClient . EthClient
type EthClient interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	NetworkID(ctx context.Context) (*big.Int, error)
}
