package config_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/sprintertech/across-dataworker/config"
	"github.com/stretchr/testify/suite"
)

const (
	hubPool = "0xc186fA914353c44b2E33eBE05f21846F1048bEda"
	weth    = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
)

type GetConfigTestSuite struct {
	suite.Suite

	dir string
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *GetConfigTestSuite) writeConfig(raw map[string]interface{}) string {
	data, err := json.Marshal(raw)
	s.Nil(err)

	path := filepath.Join(s.dir, "config.json")
	err = os.WriteFile(path, data, 0600)
	s.Nil(err)
	return path
}

func validConfig() map[string]interface{} {
	return map[string]interface{}{
		"dataworker": map[string]interface{}{
			"hubPool":        hubPool,
			"logLevel":       "debug",
			"bundleInterval": 60,
		},
		"tokens": map[string]interface{}{
			"weth": map[string]interface{}{
				"address":  weth,
				"lpFeePct": 100000000000000,
			},
		},
		"chains": []interface{}{
			map[string]interface{}{
				"id":        1,
				"name":      "ethereum",
				"type":      "evm",
				"endpoint":  "ws://domain.com",
				"spokePool": "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
			},
		},
	}
}

func (s *GetConfigTestSuite) Test_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.dir, "missing.json"), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_InvalidHubPool() {
	raw := validConfig()
	raw["dataworker"].(map[string]interface{})["hubPool"] = "invalid"

	_, err := config.GetConfigFromFile(s.writeConfig(raw), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_NoTokens() {
	raw := validConfig()
	delete(raw, "tokens")

	_, err := config.GetConfigFromFile(s.writeConfig(raw), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_InvalidLpFee() {
	raw := validConfig()
	raw["tokens"].(map[string]interface{})["weth"].(map[string]interface{})["lpFeePct"] = uint64(config.MaxLpFeePct)

	_, err := config.GetConfigFromFile(s.writeConfig(raw), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_ValidConfig() {
	c, err := config.GetConfigFromFile(s.writeConfig(validConfig()), nil)

	s.Nil(err)
	s.Equal(common.HexToAddress(hubPool), c.DataworkerConfig.HubPool)
	s.Equal(uint64(1), c.DataworkerConfig.HubChainID)
	s.Equal(25, c.DataworkerConfig.MaxRefundsPerLeaf)
	s.Equal(zerolog.DebugLevel, c.DataworkerConfig.LogLevel)
	s.Equal(time.Minute, c.DataworkerConfig.BundleInterval)
	s.Equal(time.Hour, c.DataworkerConfig.BundleCacheTTL)
	s.Equal(":3000", c.DataworkerConfig.ApiAddr)
	s.Len(c.ChainConfigs, 1)

	token, err := c.Tokens.ConfigBySymbol(1, "weth")
	s.Nil(err)
	s.Equal(common.HexToAddress(weth), token.Address)
	s.Equal(uint8(18), token.Decimals)
	s.Equal(uint64(100000000000000), token.LpFeePct)
}

func (s *GetConfigTestSuite) Test_SharedConfigFillsMissingValues() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(validConfig())
	}))
	defer server.Close()

	shared, err := config.GetSharedConfigFromNetwork(server.URL)
	s.Nil(err)

	path := s.writeConfig(map[string]interface{}{
		"dataworker": map[string]interface{}{
			"id":                "dataworker-1",
			"maxRefundsPerLeaf": 10,
		},
	})
	c, err := config.GetConfigFromFile(path, shared)

	s.Nil(err)
	s.Equal("dataworker-1", c.DataworkerConfig.Id)
	s.Equal(10, c.DataworkerConfig.MaxRefundsPerLeaf)
	s.Equal(common.HexToAddress(hubPool), c.DataworkerConfig.HubPool)
	s.Len(c.ChainConfigs, 1)
}

func (s *GetConfigTestSuite) Test_SharedConfigUnavailable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := config.GetSharedConfigFromNetwork(server.URL)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) setValidEnv() {
	s.T().Setenv("DW_DATAWORKER_HUBPOOL", hubPool)
	s.T().Setenv("DW_DATAWORKER_MAXREFUNDSPERLEAF", "10")
	s.T().Setenv("DW_DATAWORKER_CHAINIDLIST", "10,1")
	s.T().Setenv("DW_TOKENS", `{"weth": {"address": "`+weth+`", "lpFeePct": 100000000000000}}`)
	s.T().Setenv("DW_CHAINS", `[{"id": 1, "name": "ethereum", "type": "evm", "endpoint": "ws://domain.com"}]`)
}

func (s *GetConfigTestSuite) Test_ENV_ValidConfig() {
	s.setValidEnv()

	c, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal(common.HexToAddress(hubPool), c.DataworkerConfig.HubPool)
	s.Equal(10, c.DataworkerConfig.MaxRefundsPerLeaf)
	s.Equal(uint64(1), c.DataworkerConfig.HubChainID)
	s.Equal(zerolog.InfoLevel, c.DataworkerConfig.LogLevel)
	s.Equal(5*time.Minute, c.DataworkerConfig.BundleInterval)
	s.Equal([]uint64{10, 1}, c.DataworkerConfig.ChainIdList)
	s.Len(c.ChainConfigs, 1)
	s.Equal("ethereum", c.ChainConfigs[0]["name"])

	token, err := c.Tokens.ConfigBySymbol(1, "weth")
	s.Nil(err)
	s.Equal(uint64(100000000000000), token.LpFeePct)
}

func (s *GetConfigTestSuite) Test_ENV_SharedConfigFillsMissingValues() {
	s.T().Setenv("DW_DATAWORKER_ID", "dataworker-2")
	var shared config.RawConfig
	data, _ := json.Marshal(validConfig())
	s.Nil(json.Unmarshal(data, &shared))

	c, err := config.GetConfigFromENV(&shared)

	s.Nil(err)
	s.Equal("dataworker-2", c.DataworkerConfig.Id)
	s.Equal(common.HexToAddress(hubPool), c.DataworkerConfig.HubPool)
	s.Equal(zerolog.DebugLevel, c.DataworkerConfig.LogLevel)
	s.Len(c.ChainConfigs, 1)
}

func (s *GetConfigTestSuite) Test_ENV_InvalidTokens() {
	s.setValidEnv()
	s.T().Setenv("DW_TOKENS", "weth")

	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_ENV_MissingHubPool() {
	s.setValidEnv()
	s.T().Setenv("DW_DATAWORKER_HUBPOOL", "")

	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_ChainIdListFromFile() {
	raw := validConfig()
	raw["dataworker"].(map[string]interface{})["chainIdList"] = []uint64{1, 10, 137}

	c, err := config.GetConfigFromFile(s.writeConfig(raw), nil)

	s.Nil(err)
	s.Equal([]uint64{1, 10, 137}, c.DataworkerConfig.ChainIdList)
}

type BundleChainIdsTestSuite struct {
	suite.Suite
}

func TestRunBundleChainIdsTestSuite(t *testing.T) {
	suite.Run(t, new(BundleChainIdsTestSuite))
}

func (s *BundleChainIdsTestSuite) Test_ConfigOrderWithoutList() {
	c := config.DataworkerConfig{}

	chainIds, err := c.BundleChainIds([]uint64{10, 1})

	s.Nil(err)
	s.Equal([]uint64{10, 1}, chainIds)
}

func (s *BundleChainIdsTestSuite) Test_ListOverridesConfigOrder() {
	c := config.DataworkerConfig{ChainIdList: []uint64{1, 10, 137}}

	chainIds, err := c.BundleChainIds([]uint64{137, 10, 1})

	s.Nil(err)
	s.Equal([]uint64{1, 10, 137}, chainIds)
}

func (s *BundleChainIdsTestSuite) Test_ListMissingConfiguredChain() {
	c := config.DataworkerConfig{ChainIdList: []uint64{1, 10}}

	_, err := c.BundleChainIds([]uint64{1, 10, 137})

	s.NotNil(err)
}

func (s *BundleChainIdsTestSuite) Test_ListWithUnconfiguredChain() {
	c := config.DataworkerConfig{ChainIdList: []uint64{1, 42161}}

	_, err := c.BundleChainIds([]uint64{1, 10})

	s.NotNil(err)
}

func (s *BundleChainIdsTestSuite) Test_ListWithDuplicateChain() {
	c := config.DataworkerConfig{ChainIdList: []uint64{1, 1}}

	_, err := c.BundleChainIds([]uint64{1, 10})

	s.NotNil(err)
}

type TokenStoreTestSuite struct {
	suite.Suite
}

func TestRunTokenStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

func (s *TokenStoreTestSuite) Test_InvalidAddress() {
	_, err := config.NewTokenStore(1, map[string]config.RawTokenConfig{
		"weth": {Address: "invalid"},
	})

	s.NotNil(err)
}

func (s *TokenStoreTestSuite) Test_Lookups() {
	usdc := "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	store, err := config.NewTokenStore(1, map[string]config.RawTokenConfig{
		"weth": {Address: weth, Decimals: 18},
		"usdc": {Address: usdc, Decimals: 6},
	})
	s.Nil(err)

	symbol, token, err := store.ConfigByAddress(1, common.HexToAddress(usdc))
	s.Nil(err)
	s.Equal("usdc", symbol)
	s.Equal(uint8(6), token.Decimals)

	_, _, err = store.ConfigByAddress(10, common.HexToAddress(usdc))
	s.NotNil(err)

	_, err = store.ConfigBySymbol(1, "dai")
	s.NotNil(err)

	s.Equal([]common.Address{common.HexToAddress(usdc), common.HexToAddress(weth)}, store.Addresses(1))
}
