package config

import (
	"fmt"
	"sort"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
)

// MaxLpFeePct is 100% in the 18 decimal fixed point used by fee percentages.
const MaxLpFeePct uint64 = 1_000_000_000_000_000_000

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
	// LpFeePct is the realized LP fee charged on deposits of the token.
	LpFeePct uint64
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
	LpFeePct uint64 `mapstructure:"lpFeePct"`
}

func (c RawTokenConfig) Validate(symbol string) error {
	if !common.IsHexAddress(c.Address) {
		return fmt.Errorf("invalid address %s for token %s", c.Address, symbol)
	}
	if c.LpFeePct >= MaxLpFeePct {
		return fmt.Errorf("lp fee pct %d of token %s is not below 1e18", c.LpFeePct, symbol)
	}
	return nil
}

// TokenStore holds token configs per chain and symbol.
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

// NewTokenStore builds the store of the hub pool's l1 tokens.
func NewTokenStore(hubChainID uint64, rawTokens map[string]RawTokenConfig) (TokenStore, error) {
	tokens := make(map[string]TokenConfig)
	for symbol, raw := range rawTokens {
		if err := defaults.Set(&raw); err != nil {
			return TokenStore{}, err
		}
		if err := raw.Validate(symbol); err != nil {
			return TokenStore{}, err
		}

		tokens[symbol] = TokenConfig{
			Address:  common.HexToAddress(raw.Address),
			Decimals: raw.Decimals,
			LpFeePct: raw.LpFeePct,
		}
	}

	return TokenStore{
		Tokens: map[uint64]map[string]TokenConfig{
			hubChainID: tokens,
		},
	}, nil
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// Addresses returns the token addresses of the chain in ascending order.
func (s *TokenStore) Addresses(chainID uint64) []common.Address {
	addresses := make([]common.Address, 0, len(s.Tokens[chainID]))
	for _, c := range s.Tokens[chainID] {
		addresses = append(addresses, c.Address)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Cmp(addresses[j]) < 0
	})
	return addresses
}
