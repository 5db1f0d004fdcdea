package merkle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrNoLeaves = errors.New("no leaves to construct the merkle tree")

	// EmptyRoot is proposed in place of a root whose tree has no leaves.
	EmptyRoot = common.Hash{}
)

// HashFunc returns the canonical hash of a leaf. It has to be a pure function of
// the leaf so that independent builders agree on the root.
type HashFunc[T any] func(leaf T) (common.Hash, error)

// Tree is a binary keccak256 merkle tree with sorted pairs, verifiable with
// OpenZeppelin's MerkleProof. An unpaired node is promoted to the next layer as is.
type Tree[T any] struct {
	leaves []T
	layers [][]common.Hash
}

// NewTree hashes the leaves in the given order and builds the tree.
func NewTree[T any](leaves []T, hash HashFunc[T]) (*Tree[T], error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	hashes := make([]common.Hash, len(leaves))
	for i, leaf := range leaves {
		h, err := hash(leaf)
		if err != nil {
			return nil, fmt.Errorf("failed hashing leaf %d: %w", i, err)
		}
		hashes[i] = h
	}

	t := &Tree[T]{
		leaves: append([]T(nil), leaves...),
		layers: [][]common.Hash{hashes},
	}
	for layer := hashes; len(layer) > 1; {
		next := make([]common.Hash, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 == len(layer) {
				next = append(next, layer[i])
				continue
			}
			next = append(next, hashPair(layer[i], layer[i+1]))
		}
		t.layers = append(t.layers, next)
		layer = next
	}
	return t, nil
}

func (t *Tree[T]) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

func (t *Tree[T]) Len() int {
	return len(t.leaves)
}

// Leaves returns the leaves in tree order.
func (t *Tree[T]) Leaves() []T {
	return append([]T(nil), t.leaves...)
}

func (t *Tree[T]) Leaf(index int) (T, error) {
	var leaf T
	if index < 0 || index >= len(t.leaves) {
		return leaf, fmt.Errorf("leaf index %d out of range", index)
	}
	return t.leaves[index], nil
}

func (t *Tree[T]) LeafHash(index int) (common.Hash, error) {
	if index < 0 || index >= len(t.leaves) {
		return common.Hash{}, fmt.Errorf("leaf index %d out of range", index)
	}
	return t.layers[0][index], nil
}

// Proof returns the sibling hashes from the leaf up to the root.
func (t *Tree[T]) Proof(index int) ([]common.Hash, error) {
	if index < 0 || index >= len(t.leaves) {
		return nil, fmt.Errorf("leaf index %d out of range", index)
	}

	proof := make([]common.Hash, 0, len(t.layers)-1)
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := index ^ 1
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		index /= 2
	}
	return proof, nil
}

// Verify checks a proof produced by Proof against a root.
func Verify(leafHash common.Hash, proof []common.Hash, root common.Hash) bool {
	computed := leafHash
	for _, p := range proof {
		computed = hashPair(computed, p)
	}
	return computed == root
}

func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}
