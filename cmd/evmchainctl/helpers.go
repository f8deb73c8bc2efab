package main

import (
	"fmt"
	"strconv"
)

func parseBlockNumber(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q: %w", raw, err)
	}
	return n, nil
}
