package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName    = "config"
	ConfigURLFlagName = "config-url"
	LogLevelFlagName  = "log-level"

	// EnvConfigName selects the environment as config source instead of a file.
	EnvConfigName = "env"
	EnvPrefix     = "DW"

	envTokensKey = "envTokens"
	envChainsKey = "envChains"
)

type Config struct {
	DataworkerConfig DataworkerConfig
	Tokens           TokenStore
	ChainConfigs     []map[string]interface{}
}

type DataworkerConfig struct {
	Id                        string
	Env                       string
	LogLevel                  zerolog.Level
	HubChainID                uint64
	HubPool                   common.Address
	HubPoolDeploymentBlock    uint64
	MaxRefundsPerLeaf         int
	ApiAddr                   string
	HealthPort                uint16
	OpenTelemetryCollectorURL string
	BundleInterval            time.Duration
	BundleCacheTTL            time.Duration
	ChainIdList               []uint64
}

// BundleChainIds returns the chain order of the bundle evaluation block numbers. The
// configured chain ids are used in their config order if no chain id list is set;
// otherwise the list must hold every configured chain exactly once.
func (c DataworkerConfig) BundleChainIds(configured []uint64) ([]uint64, error) {
	if len(c.ChainIdList) == 0 {
		return configured, nil
	}
	if len(c.ChainIdList) != len(configured) {
		return nil, fmt.Errorf("chain id list %v does not match configured chains %v", c.ChainIdList, configured)
	}
	for i, chainId := range c.ChainIdList {
		if slices.Index(c.ChainIdList, chainId) != i {
			return nil, fmt.Errorf("duplicate chain %d in chain id list", chainId)
		}
		if !slices.Contains(configured, chainId) {
			return nil, fmt.Errorf("chain %d of chain id list is not configured", chainId)
		}
	}
	return c.ChainIdList, nil
}

type RawConfig struct {
	DataworkerConfig RawDataworkerConfig      `mapstructure:"dataworker" json:"dataworker"`
	Tokens           map[string]RawTokenConfig `mapstructure:"tokens" json:"tokens"`
	ChainConfigs     []map[string]interface{}  `mapstructure:"chains" json:"chains"`
}

type RawDataworkerConfig struct {
	Id                        string `mapstructure:"id" json:"id"`
	Env                       string `mapstructure:"env" json:"env" default:"local"`
	LogLevel                  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	HubChainID                uint64 `mapstructure:"hubChainId" json:"hubChainId" default:"1"`
	HubPool                   string `mapstructure:"hubPool" json:"hubPool"`
	HubPoolDeploymentBlock    uint64 `mapstructure:"hubPoolDeploymentBlock" json:"hubPoolDeploymentBlock"`
	MaxRefundsPerLeaf         int    `mapstructure:"maxRefundsPerLeaf" json:"maxRefundsPerLeaf" default:"25"`
	ApiAddr                   string `mapstructure:"apiAddr" json:"apiAddr" default:":3000"`
	HealthPort                uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	// seconds
	BundleInterval uint64 `mapstructure:"bundleInterval" json:"bundleInterval" default:"300"`
	BundleCacheTTL uint64 `mapstructure:"bundleCacheTTL" json:"bundleCacheTTL" default:"3600"`
	// ordered chain ids of the bundle evaluation block numbers, defaults to the chain config order
	ChainIdList []uint64 `mapstructure:"chainIdList" json:"chainIdList"`
}

func (c *RawConfig) Validate() error {
	if !common.IsHexAddress(c.DataworkerConfig.HubPool) {
		return fmt.Errorf("invalid hub pool address %s", c.DataworkerConfig.HubPool)
	}
	if c.DataworkerConfig.MaxRefundsPerLeaf < 1 {
		return fmt.Errorf("max refunds per leaf must be positive, got %d", c.DataworkerConfig.MaxRefundsPerLeaf)
	}
	if len(c.Tokens) == 0 {
		return fmt.Errorf("no tokens configured")
	}
	if len(c.ChainConfigs) == 0 {
		return fmt.Errorf("no chains configured")
	}
	return nil
}

// GetConfigFromFile reads the config file at path. Values missing from the file are
// taken from shared, which may be nil.
func GetConfigFromFile(path string, shared *RawConfig) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}
	return processRawConfig(raw, shared)
}

// GetConfigFromENV reads the config from DW_ prefixed environment variables named
// after the config keys, such as DW_DATAWORKER_HUBPOOL. Tokens and chains are JSON
// encoded in DW_TOKENS and DW_CHAINS. Values missing from the environment are taken
// from shared, which may be nil.
func GetConfigFromENV(shared *RawConfig) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	t := reflect.TypeOf(RawDataworkerConfig{})
	for i := 0; i < t.NumField(); i++ {
		if err := v.BindEnv("dataworker." + t.Field(i).Tag.Get("mapstructure")); err != nil {
			return nil, err
		}
	}
	if err := v.BindEnv(envTokensKey, EnvPrefix+"_TOKENS"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(envChainsKey, EnvPrefix+"_CHAINS"); err != nil {
		return nil, err
	}

	var raw RawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, err
	}
	if tokens := v.GetString(envTokensKey); tokens != "" {
		if err := json.Unmarshal([]byte(tokens), &raw.Tokens); err != nil {
			return nil, fmt.Errorf("invalid %s_TOKENS: %w", EnvPrefix, err)
		}
	}
	if chains := v.GetString(envChainsKey); chains != "" {
		if err := json.Unmarshal([]byte(chains), &raw.ChainConfigs); err != nil {
			return nil, fmt.Errorf("invalid %s_CHAINS: %w", EnvPrefix, err)
		}
	}
	return processRawConfig(raw, shared)
}

// GetSharedConfigFromNetwork fetches the JSON config shared by every dataworker
// instance.
func GetSharedConfigFromNetwork(url string) (*RawConfig, error) {
	resp, err := http.Get(url) // nolint:gosec
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching shared config", resp.StatusCode)
	}

	var raw RawConfig
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func processRawConfig(raw RawConfig, shared *RawConfig) (*Config, error) {
	if shared != nil {
		if err := mergo.Merge(&raw, *shared); err != nil {
			return nil, err
		}
	}
	if err := defaults.Set(&raw.DataworkerConfig); err != nil {
		return nil, err
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	logLevel, err := zerolog.ParseLevel(raw.DataworkerConfig.LogLevel)
	if err != nil {
		return nil, err
	}
	if flagLevel := viper.GetString(LogLevelFlagName); flagLevel != "" {
		logLevel, err = zerolog.ParseLevel(flagLevel)
		if err != nil {
			return nil, err
		}
	}

	tokens, err := NewTokenStore(raw.DataworkerConfig.HubChainID, raw.Tokens)
	if err != nil {
		return nil, err
	}

	return &Config{
		DataworkerConfig: DataworkerConfig{
			Id:                        raw.DataworkerConfig.Id,
			Env:                       raw.DataworkerConfig.Env,
			LogLevel:                  logLevel,
			HubChainID:                raw.DataworkerConfig.HubChainID,
			HubPool:                   common.HexToAddress(raw.DataworkerConfig.HubPool),
			HubPoolDeploymentBlock:    raw.DataworkerConfig.HubPoolDeploymentBlock,
			MaxRefundsPerLeaf:         raw.DataworkerConfig.MaxRefundsPerLeaf,
			ApiAddr:                   raw.DataworkerConfig.ApiAddr,
			HealthPort:                raw.DataworkerConfig.HealthPort,
			OpenTelemetryCollectorURL: raw.DataworkerConfig.OpenTelemetryCollectorURL,
			// nolint:gosec
			BundleInterval: time.Duration(raw.DataworkerConfig.BundleInterval) * time.Second,
			// nolint:gosec
			BundleCacheTTL: time.Duration(raw.DataworkerConfig.BundleCacheTTL) * time.Second,
			ChainIdList:    raw.DataworkerConfig.ChainIdList,
		},
		Tokens:       tokens,
		ChainConfigs: raw.ChainConfigs,
	}, nil
}

// DecodeChainConfig decodes a raw chain config into out and applies its defaults.
func DecodeChainConfig(chainConfig map[string]interface{}, out interface{}) error {
	if err := mapstructure.Decode(chainConfig, out); err != nil {
		return err
	}
	return defaults.Set(out)
}

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or \"env\" to read the environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ConfigURLFlagName, "", "URL of shared configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(ConfigURLFlagName))

	rootCMD.PersistentFlags().String(LogLevelFlagName, "", "Overrides the configured log level")
	_ = viper.BindPFlag(LogLevelFlagName, rootCMD.PersistentFlags().Lookup(LogLevelFlagName))
}
