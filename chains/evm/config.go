// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/across-dataworker/config"
	"github.com/sprintertech/across-dataworker/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	SpokePool       common.Address
	DeploymentBlock uint64
	// BlockRangeLimit is the largest block range queried for logs at once.
	BlockRangeLimit uint64
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	SpokePool                string `mapstructure:"spokePool"`
	DeploymentBlock          uint64 `mapstructure:"deploymentBlock"`
	BlockRangeLimit          uint64 `mapstructure:"blockRangeLimit" default:"10000"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if !common.IsHexAddress(c.SpokePool) {
		return fmt.Errorf("invalid spoke pool address %s for chain %d", c.SpokePool, *c.Id)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := config.DecodeChainConfig(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		SpokePool:          common.HexToAddress(c.SpokePool),
		DeploymentBlock:    c.DeploymentBlock,
		BlockRangeLimit:    c.BlockRangeLimit,
	}, nil
}
