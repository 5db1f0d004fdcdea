package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
)

// ConfirmedClient reads a chain a fixed number of blocks behind its head so
// reorged logs are never observed.
type ConfirmedClient struct {
	client        events.ChainClient
	confirmations *big.Int
}

func NewConfirmedClient(client events.ChainClient, confirmations uint64) *ConfirmedClient {
	return &ConfirmedClient{
		client:        client,
		confirmations: new(big.Int).SetUint64(confirmations),
	}
}

// LatestBlock returns the latest confirmed block.
func (c *ConfirmedClient) LatestBlock() (*big.Int, error) {
	head, err := c.client.LatestBlock()
	if err != nil {
		return nil, err
	}

	latest := new(big.Int).Sub(head, c.confirmations)
	if latest.Sign() < 0 {
		return big.NewInt(0), nil
	}
	return latest, nil
}

func (c *ConfirmedClient) FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error) {
	return c.client.FetchEventLogs(ctx, contractAddress, event, startBlock, endBlock)
}
