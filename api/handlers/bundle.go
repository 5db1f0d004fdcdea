package handlers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/across-dataworker/config"
	"github.com/sprintertech/across-dataworker/dataworker"
	"github.com/sprintertech/across-dataworker/merkle"
	"github.com/sprintertech/across-dataworker/protocol/across"
)

const (
	SlowRelayTree     = "slowRelay"
	RelayerRefundTree = "relayerRefund"
	PoolRebalanceTree = "poolRebalance"
)

var errEmptyTree = errors.New("tree is empty")

type BundleFetcher interface {
	Bundle(id string) (*dataworker.Bundle, error)
}

type BlockRangeResponse struct {
	ChainId uint64 `json:"chainId"`
	Start   uint64 `json:"start"`
	End     uint64 `json:"end"`
}

type RootsResponse struct {
	PoolRebalanceRoot string `json:"poolRebalanceRoot"`
	RelayerRefundRoot string `json:"relayerRefundRoot"`
	SlowRelayRoot     string `json:"slowRelayRoot"`
}

type SlowRelayLeafResponse struct {
	Depositor          string  `json:"depositor"`
	Recipient          string  `json:"recipient"`
	DestinationToken   string  `json:"destinationToken"`
	Amount             *BigInt `json:"amount"`
	OriginChainId      uint64  `json:"originChainId"`
	DestinationChainId uint64  `json:"destinationChainId"`
	RealizedLpFeePct   *BigInt `json:"realizedLpFeePct"`
	RelayerFeePct      *BigInt `json:"relayerFeePct"`
	DepositId          uint32  `json:"depositId"`
}

type RelayerRefundLeafResponse struct {
	LeafId          uint32    `json:"leafId"`
	ChainId         uint64    `json:"chainId"`
	L2TokenAddress  string    `json:"l2TokenAddress"`
	AmountToReturn  *BigInt   `json:"amountToReturn"`
	RefundAddresses []string  `json:"refundAddresses"`
	RefundAmounts   []*BigInt `json:"refundAmounts"`
}

type PoolRebalanceLeafResponse struct {
	LeafId          uint8     `json:"leafId"`
	GroupIndex      uint8     `json:"groupIndex"`
	ChainId         uint64    `json:"chainId"`
	L1Tokens        []string  `json:"l1Tokens"`
	BundleLpFees    []*BigInt `json:"bundleLpFees"`
	NetSendAmounts  []*BigInt `json:"netSendAmounts"`
	RunningBalances []*BigInt `json:"runningBalances"`
	// NetSendAmountsInTokens are the net send amounts in token units, empty for tokens
	// without configured decimals.
	NetSendAmountsInTokens []string `json:"netSendAmountsInTokens"`
}

type BundleResponse struct {
	ID                  string                      `json:"id"`
	BlockRanges         []BlockRangeResponse        `json:"blockRanges"`
	Roots               RootsResponse               `json:"roots"`
	SlowRelayLeaves     []SlowRelayLeafResponse     `json:"slowRelayLeaves"`
	RelayerRefundLeaves []RelayerRefundLeafResponse `json:"relayerRefundLeaves"`
	PoolRebalanceLeaves []PoolRebalanceLeafResponse `json:"poolRebalanceLeaves"`
	DroppedFills        int                         `json:"droppedFills"`
}

type ProofResponse struct {
	Root     string      `json:"root"`
	LeafHash string      `json:"leafHash"`
	Proof    []string    `json:"proof"`
	Leaf     interface{} `json:"leaf"`
}

type BundleHandler struct {
	bundles    BundleFetcher
	tokens     config.TokenStore
	hubChainID uint64
}

func NewBundleHandler(bundles BundleFetcher, tokens config.TokenStore, hubChainID uint64) *BundleHandler {
	return &BundleHandler{
		bundles:    bundles,
		tokens:     tokens,
		hubChainID: hubChainID,
	}
}

// HandleBundle returns the roots and leaves of the requested bundle
func (h *BundleHandler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bundle, err := h.bundles.Bundle(vars["bundleId"])
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, h.bundleResponse(bundle))
}

// HandleProof returns the merkle proof of one leaf of the requested bundle
func (h *BundleHandler) HandleProof(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	leafIndex, err := strconv.Atoi(vars["leafIndex"])
	if err != nil || leafIndex < 0 {
		JSONError(w, fmt.Errorf("invalid leafIndex"), http.StatusBadRequest)
		return
	}

	bundle, err := h.bundles.Bundle(vars["bundleId"])
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	var resp *ProofResponse
	switch vars["tree"] {
	case SlowRelayTree:
		resp, err = proofResponse(bundle.SlowRelayTree, leafIndex, slowRelayLeafResponse)
	case RelayerRefundTree:
		resp, err = proofResponse(bundle.RelayerRefundTree, leafIndex, relayerRefundLeafResponse)
	case PoolRebalanceTree:
		resp, err = proofResponse(bundle.PoolRebalanceTree, leafIndex, h.poolRebalanceLeafResponse)
	default:
		JSONError(w, fmt.Errorf("invalid tree %s", vars["tree"]), http.StatusBadRequest)
		return
	}
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, resp)
}

func proofResponse[T any, R any](tree *merkle.Tree[T], index int, format func(T) R) (*ProofResponse, error) {
	if tree == nil {
		return nil, errEmptyTree
	}

	leaf, err := tree.Leaf(index)
	if err != nil {
		return nil, err
	}
	leafHash, err := tree.LeafHash(index)
	if err != nil {
		return nil, err
	}
	proof, err := tree.Proof(index)
	if err != nil {
		return nil, err
	}

	hexProof := make([]string, len(proof))
	for i, p := range proof {
		hexProof[i] = p.Hex()
	}
	return &ProofResponse{
		Root:     tree.Root().Hex(),
		LeafHash: leafHash.Hex(),
		Proof:    hexProof,
		Leaf:     format(leaf),
	}, nil
}

func (h *BundleHandler) bundleResponse(bundle *dataworker.Bundle) BundleResponse {
	roots := bundle.Roots()
	blockRanges := make([]BlockRangeResponse, 0, len(bundle.ChainIds))
	for _, chainId := range bundle.ChainIds {
		r := bundle.BlockRanges[chainId]
		blockRanges = append(blockRanges, BlockRangeResponse{ChainId: chainId, Start: r.Start, End: r.End})
	}

	return BundleResponse{
		ID:          bundle.ID().Hex(),
		BlockRanges: blockRanges,
		Roots: RootsResponse{
			PoolRebalanceRoot: roots.PoolRebalanceRoot.Hex(),
			RelayerRefundRoot: roots.RelayerRefundRoot.Hex(),
			SlowRelayRoot:     roots.SlowRelayRoot.Hex(),
		},
		SlowRelayLeaves:     leavesResponse(bundle.SlowRelayTree, slowRelayLeafResponse),
		RelayerRefundLeaves: leavesResponse(bundle.RelayerRefundTree, relayerRefundLeafResponse),
		PoolRebalanceLeaves: leavesResponse(bundle.PoolRebalanceTree, h.poolRebalanceLeafResponse),
		DroppedFills:        len(bundle.Warnings),
	}
}

func leavesResponse[T any, R any](tree *merkle.Tree[T], format func(T) R) []R {
	resp := make([]R, 0)
	if tree == nil {
		return resp
	}
	for _, leaf := range tree.Leaves() {
		resp = append(resp, format(leaf))
	}
	return resp
}

func slowRelayLeafResponse(leaf across.RelayData) SlowRelayLeafResponse {
	return SlowRelayLeafResponse{
		Depositor:          leaf.Depositor.Hex(),
		Recipient:          leaf.Recipient.Hex(),
		DestinationToken:   leaf.DestinationToken.Hex(),
		Amount:             NewBigInt(leaf.Amount),
		OriginChainId:      leaf.OriginChainId,
		DestinationChainId: leaf.DestinationChainId,
		RealizedLpFeePct:   NewBigInt(leaf.RealizedLpFeePct),
		RelayerFeePct:      NewBigInt(leaf.RelayerFeePct),
		DepositId:          leaf.DepositId,
	}
}

func relayerRefundLeafResponse(leaf dataworker.RelayerRefundLeaf) RelayerRefundLeafResponse {
	return RelayerRefundLeafResponse{
		LeafId:          leaf.LeafId,
		ChainId:         leaf.ChainId,
		L2TokenAddress:  leaf.L2TokenAddress.Hex(),
		AmountToReturn:  NewBigInt(leaf.AmountToReturn),
		RefundAddresses: hexAddresses(leaf.RefundAddresses),
		RefundAmounts:   bigInts(leaf.RefundAmounts),
	}
}

func (h *BundleHandler) poolRebalanceLeafResponse(leaf dataworker.PoolRebalanceLeaf) PoolRebalanceLeafResponse {
	inTokens := make([]string, len(leaf.NetSendAmounts))
	for i, amount := range leaf.NetSendAmounts {
		_, token, err := h.tokens.ConfigByAddress(h.hubChainID, leaf.L1Tokens[i])
		if err != nil {
			continue
		}
		inTokens[i] = decimal.NewFromBigInt(amount, -int32(token.Decimals)).String()
	}

	return PoolRebalanceLeafResponse{
		LeafId:                 leaf.LeafId,
		GroupIndex:             leaf.GroupIndex,
		ChainId:                leaf.ChainId,
		L1Tokens:               hexAddresses(leaf.L1Tokens),
		BundleLpFees:           bigInts(leaf.BundleLpFees),
		NetSendAmounts:         bigInts(leaf.NetSendAmounts),
		RunningBalances:        bigInts(leaf.RunningBalances),
		NetSendAmountsInTokens: inTokens,
	}
}

func hexAddresses(addresses []common.Address) []string {
	hex := make([]string, len(addresses))
	for i, a := range addresses {
		hex[i] = a.Hex()
	}
	return hex
}

func bigInts(values []*big.Int) []*BigInt {
	out := make([]*BigInt, len(values))
	for i, v := range values {
		out[i] = NewBigInt(v)
	}
	return out
}
