package rpc

import "github.com/evmchain/indexer/internal/model"

// Header is the subset of a block header the ingestion loop needs to
// run the lineage check.
type Header struct {
	Number     int64
	Hash       string
	ParentHash string
	Timestamp  int64
}

// Block carries a header plus the validated-ready raw transactions it
// contains.
type Block struct {
	Header       Header
	Transactions []model.RawTransaction
}
