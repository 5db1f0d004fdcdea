package dataworker

import (
	"fmt"

	"github.com/sprintertech/across-dataworker/protocol/across"
)

// StaleSourceError is returned when a spoke pool client has not been updated. No
// accounting is done on partial cross-chain data.
type StaleSourceError struct {
	ChainId uint64
}

func (e *StaleSourceError) Error() string {
	return fmt.Sprintf("spoke pool client for chain %d not updated", e.ChainId)
}

// UnmatchedFillWarning records a fill with no matching deposit. The fill is dropped
// from every refund and balance.
type UnmatchedFillWarning struct {
	Fill across.FillWithBlock
}

func (w UnmatchedFillWarning) String() string {
	return fmt.Sprintf(
		"no deposit %s found for fill on chain %d at block %d",
		w.Fill.Key(), w.Fill.DestinationChainId, w.Fill.BlockNumber)
}

// MalformedLeafError is returned when a leaf's parallel arrays disagree in length
// or a field does not fit its on-chain type.
type MalformedLeafError struct {
	LeafIndex int
	Reason    string
}

func (e *MalformedLeafError) Error() string {
	return fmt.Sprintf("malformed leaf %d: %s", e.LeafIndex, e.Reason)
}

// DuplicateOrderingKeyError is returned when two entries tie on every sort key.
type DuplicateOrderingKeyError struct {
	Tree string
	Key  string
}

func (e *DuplicateOrderingKeyError) Error() string {
	return fmt.Sprintf("duplicate %s ordering key %s", e.Tree, e.Key)
}

// MissingReferenceFillError is returned when the slow fill excess of a deposit can't
// be computed.
type MissingReferenceFillError struct {
	Deposit across.DepositKey
	Reason  string
	Err     error
}

func (e *MissingReferenceFillError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deposit %s: %s: %s", e.Deposit, e.Reason, e.Err)
	}
	return fmt.Sprintf("deposit %s: %s", e.Deposit, e.Reason)
}

func (e *MissingReferenceFillError) Unwrap() error {
	return e.Err
}
