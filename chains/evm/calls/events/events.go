// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	FundsDepositedSig    EventSig = "FundsDeposited(uint256,uint256,uint256,uint64,uint32,uint32,address,address,address)"
	FilledRelaySig       EventSig = "FilledRelay(uint256,uint256,uint256,uint256,uint256,uint256,uint64,uint64,uint64,uint32,address,address,address,address,bool)"
	ProposeRootBundleSig EventSig = "ProposeRootBundle(uint32,uint8,uint256[],bytes32,bytes32,bytes32,address)"
)

// Position locates a log on chain.
type Position struct {
	BlockNumber      uint64
	TransactionIndex uint
	LogIndex         uint
}

// FundsDeposited is the SpokePool deposit event. DepositId, OriginToken and
// Depositor are indexed.
type FundsDeposited struct {
	Position

	Amount             *big.Int
	OriginChainId      *big.Int
	DestinationChainId *big.Int
	RelayerFeePct      uint64
	DepositId          uint32
	QuoteTimestamp     uint32
	OriginToken        common.Address
	Recipient          common.Address
	Depositor          common.Address
}

// FilledRelay is the SpokePool fill event. Relayer and Depositor are indexed.
type FilledRelay struct {
	Position

	Amount               *big.Int
	TotalFilledAmount    *big.Int
	FillAmount           *big.Int
	RepaymentChainId     *big.Int
	OriginChainId        *big.Int
	DestinationChainId   *big.Int
	RelayerFeePct        uint64
	AppliedRelayerFeePct uint64
	RealizedLpFeePct     uint64
	DepositId            uint32
	DestinationToken     common.Address
	Relayer              common.Address
	Depositor            common.Address
	Recipient            common.Address
	IsSlowRelay          bool
}

// ProposeRootBundle is the HubPool root bundle proposal event. PoolRebalanceRoot,
// RelayerRefundRoot and Proposer are indexed.
type ProposeRootBundle struct {
	Position

	ChallengePeriodEndTimestamp  uint32
	PoolRebalanceLeafCount       uint8
	BundleEvaluationBlockNumbers []*big.Int
	PoolRebalanceRoot            [32]byte
	RelayerRefundRoot            [32]byte
	SlowRelayRoot                [32]byte
	Proposer                     common.Address
}
