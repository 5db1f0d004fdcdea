// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
)

type HubPoolContract struct {
	contracts.Contract
	client client.Client
}

func NewHubPoolContract(
	client client.Client,
	address common.Address,
) *HubPoolContract {
	return &HubPoolContract{
		Contract: contracts.NewContract(address, consts.HubPoolABI, nil, client, nil),
		client:   client,
	}
}

// PoolRebalanceRoute returns the token the hub pool bridges l1Token to on the
// destination chain.
func (c *HubPoolContract) PoolRebalanceRoute(destinationChainId uint64, l1Token common.Address) (common.Address, error) {
	res, err := c.CallContract("poolRebalanceRoute", new(big.Int).SetUint64(destinationChainId), l1Token)
	if err != nil {
		return common.Address{}, err
	}

	out := *abi.ConvertType(res[0], new(common.Address)).(*common.Address)
	if out == (common.Address{}) {
		return common.Address{}, fmt.Errorf("rebalance route not configured for %s to chain %d", l1Token.Hex(), destinationChainId)
	}

	return out, nil
}
