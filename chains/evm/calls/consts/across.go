package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var HubPoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "destinationChainId",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "l1Token",
        "type": "address"
      }
    ],
    "name": "poolRebalanceRoute",
    "outputs": [
      {
        "internalType": "address",
        "name": "destinationToken",
        "type": "address"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {
        "indexed": false,
        "internalType": "uint32",
        "name": "challengePeriodEndTimestamp",
        "type": "uint32"
      },
      {
        "indexed": false,
        "internalType": "uint8",
        "name": "poolRebalanceLeafCount",
        "type": "uint8"
      },
      {
        "indexed": false,
        "internalType": "uint256[]",
        "name": "bundleEvaluationBlockNumbers",
        "type": "uint256[]"
      },
      {
        "indexed": true,
        "internalType": "bytes32",
        "name": "poolRebalanceRoot",
        "type": "bytes32"
      },
      {
        "indexed": true,
        "internalType": "bytes32",
        "name": "relayerRefundRoot",
        "type": "bytes32"
      },
      {
        "indexed": false,
        "internalType": "bytes32",
        "name": "slowRelayRoot",
        "type": "bytes32"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "proposer",
        "type": "address"
      }
    ],
    "name": "ProposeRootBundle",
    "type": "event"
  }
]
`))

var SpokePoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "anonymous": false,
    "inputs": [
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "amount",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "originChainId",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "destinationChainId",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint64",
        "name": "relayerFeePct",
        "type": "uint64"
      },
      {
        "indexed": true,
        "internalType": "uint32",
        "name": "depositId",
        "type": "uint32"
      },
      {
        "indexed": false,
        "internalType": "uint32",
        "name": "quoteTimestamp",
        "type": "uint32"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "originToken",
        "type": "address"
      },
      {
        "indexed": false,
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "depositor",
        "type": "address"
      }
    ],
    "name": "FundsDeposited",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "amount",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "totalFilledAmount",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "fillAmount",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "repaymentChainId",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "originChainId",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint256",
        "name": "destinationChainId",
        "type": "uint256"
      },
      {
        "indexed": false,
        "internalType": "uint64",
        "name": "relayerFeePct",
        "type": "uint64"
      },
      {
        "indexed": false,
        "internalType": "uint64",
        "name": "appliedRelayerFeePct",
        "type": "uint64"
      },
      {
        "indexed": false,
        "internalType": "uint64",
        "name": "realizedLpFeePct",
        "type": "uint64"
      },
      {
        "indexed": false,
        "internalType": "uint32",
        "name": "depositId",
        "type": "uint32"
      },
      {
        "indexed": false,
        "internalType": "address",
        "name": "destinationToken",
        "type": "address"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "relayer",
        "type": "address"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "depositor",
        "type": "address"
      },
      {
        "indexed": false,
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "indexed": false,
        "internalType": "bool",
        "name": "isSlowRelay",
        "type": "bool"
      }
    ],
    "name": "FilledRelay",
    "type": "event"
  }
]
`))
