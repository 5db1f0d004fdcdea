// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/across-dataworker/chains/evm/calls/consts"
)

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error)
	LatestBlock() (*big.Int, error)
}

type Listener struct {
	client    ChainClient
	spokePool abi.ABI
	hubPool   abi.ABI
}

func NewListener(client ChainClient) *Listener {
	return &Listener{
		client:    client,
		spokePool: consts.SpokePoolABI,
		hubPool:   consts.HubPoolABI,
	}
}

func (l *Listener) LatestBlock() (*big.Int, error) {
	return l.client.LatestBlock()
}

func (l *Listener) FetchFundsDeposited(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]FundsDeposited, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(FundsDepositedSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}

	deposits := make([]FundsDeposited, 0, len(logs))
	for _, dl := range logs {
		if dl.Removed {
			continue
		}

		d, err := l.UnpackFundsDeposited(dl)
		if err != nil {
			return nil, fmt.Errorf("failed unpacking deposit log %s:%d: %w", dl.TxHash.Hex(), dl.Index, err)
		}
		deposits = append(deposits, *d)
	}
	return deposits, nil
}

func (l *Listener) FetchFilledRelays(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]FilledRelay, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(FilledRelaySig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}

	fills := make([]FilledRelay, 0, len(logs))
	for _, fl := range logs {
		if fl.Removed {
			continue
		}

		f, err := l.UnpackFilledRelay(fl)
		if err != nil {
			return nil, fmt.Errorf("failed unpacking fill log %s:%d: %w", fl.TxHash.Hex(), fl.Index, err)
		}
		fills = append(fills, *f)
	}
	return fills, nil
}

func (l *Listener) FetchProposedRootBundles(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]ProposeRootBundle, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(ProposeRootBundleSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}

	bundles := make([]ProposeRootBundle, 0, len(logs))
	for _, bl := range logs {
		if bl.Removed {
			continue
		}

		b, err := l.UnpackProposeRootBundle(bl)
		if err != nil {
			return nil, fmt.Errorf("failed unpacking root bundle log %s:%d: %w", bl.TxHash.Hex(), bl.Index, err)
		}
		bundles = append(bundles, *b)
	}
	return bundles, nil
}

func (l *Listener) UnpackFundsDeposited(dl ethTypes.Log) (*FundsDeposited, error) {
	var d FundsDeposited
	err := l.spokePool.UnpackIntoInterface(&d, "FundsDeposited", dl.Data)
	if err != nil {
		return nil, err
	}
	if len(dl.Topics) < 4 {
		return nil, fmt.Errorf("deposit log missing topics")
	}

	// nolint:gosec
	d.DepositId = uint32(new(big.Int).SetBytes(dl.Topics[1].Bytes()).Uint64())
	d.OriginToken = common.BytesToAddress(dl.Topics[2].Bytes())
	d.Depositor = common.BytesToAddress(dl.Topics[3].Bytes())
	d.Position = position(dl)
	return &d, nil
}

func (l *Listener) UnpackFilledRelay(fl ethTypes.Log) (*FilledRelay, error) {
	var f FilledRelay
	err := l.spokePool.UnpackIntoInterface(&f, "FilledRelay", fl.Data)
	if err != nil {
		return nil, err
	}
	if len(fl.Topics) < 3 {
		return nil, fmt.Errorf("fill log missing topics")
	}

	f.Relayer = common.BytesToAddress(fl.Topics[1].Bytes())
	f.Depositor = common.BytesToAddress(fl.Topics[2].Bytes())
	f.Position = position(fl)
	return &f, nil
}

func (l *Listener) UnpackProposeRootBundle(bl ethTypes.Log) (*ProposeRootBundle, error) {
	var b ProposeRootBundle
	err := l.hubPool.UnpackIntoInterface(&b, "ProposeRootBundle", bl.Data)
	if err != nil {
		return nil, err
	}
	if len(bl.Topics) < 4 {
		return nil, fmt.Errorf("root bundle log missing topics")
	}

	b.PoolRebalanceRoot = bl.Topics[1]
	b.RelayerRefundRoot = bl.Topics[2]
	b.Proposer = common.BytesToAddress(bl.Topics[3].Bytes())
	b.Position = position(bl)
	return &b, nil
}

func position(l ethTypes.Log) Position {
	return Position{
		BlockNumber:      l.BlockNumber,
		TransactionIndex: l.TxIndex,
		LogIndex:         l.Index,
	}
}
