// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/across-dataworker/api"
	"github.com/sprintertech/across-dataworker/api/handlers"
	"github.com/sprintertech/across-dataworker/cache"
	"github.com/sprintertech/across-dataworker/chains/evm"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/contracts"
	"github.com/sprintertech/across-dataworker/chains/evm/calls/events"
	"github.com/sprintertech/across-dataworker/config"
	"github.com/sprintertech/across-dataworker/dataworker"
	"github.com/sprintertech/across-dataworker/health"
	"github.com/sprintertech/across-dataworker/jobs"
	"github.com/sprintertech/across-dataworker/metrics"
	"github.com/sprintertech/across-dataworker/protocol/across"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/observability"
)

var Version string

type noopMetrics struct{}

func (noopMetrics) TrackClientUpdateFailure(chainId uint64) {}

func loadConfig() (*config.Config, error) {
	var shared *config.RawConfig
	var err error
	configURL := viper.GetString(config.ConfigURLFlagName)
	if configURL != "" {
		shared, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, err
		}
	}

	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == config.EnvConfigName {
		return config.GetConfigFromENV(shared)
	}
	return config.GetConfigFromFile(configFlag, shared)
}

// newBundleJob connects to every configured chain and wires the event clients into
// a bundle job. Bundle metrics are skipped when m is nil.
func newBundleJob(
	configuration *config.Config,
	m *metrics.DataworkerMetrics,
	bundleChn chan *dataworker.Bundle,
) (*jobs.BundleJob, error) {
	chainConfigs := make([]*evm.EVMConfig, 0, len(configuration.ChainConfigs))
	clients := make(map[uint64]*evmClient.EVMClient)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig)
				if err != nil {
					return nil, err
				}

				client, err := evmClient.NewEVMClient(c.GeneralChainConfig.Endpoint, nil)
				if err != nil {
					return nil, err
				}

				log.Info().Uint64("chain", *c.GeneralChainConfig.Id).Msgf("Registering EVM spoke pool %s", c.SpokePool.Hex())
				chainConfigs = append(chainConfigs, c)
				clients[*c.GeneralChainConfig.Id] = client
			}
		default:
			return nil, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}

	dwConfig := configuration.DataworkerConfig
	hubClient, ok := clients[dwConfig.HubChainID]
	if !ok {
		return nil, fmt.Errorf("hub chain %d not configured", dwConfig.HubChainID)
	}
	var hubConfig *evm.EVMConfig
	for _, c := range chainConfigs {
		if *c.GeneralChainConfig.Id == dwConfig.HubChainID {
			hubConfig = c
		}
	}

	hubPoolClient := across.NewHubPoolClient(
		dwConfig.HubChainID,
		dwConfig.HubPool,
		dwConfig.HubPoolDeploymentBlock,
		hubConfig.BlockRangeLimit,
		configuration.Tokens,
		contracts.NewHubPoolContract(hubClient, dwConfig.HubPool),
		events.NewListener(evm.NewConfirmedClient(hubClient, hubConfig.GeneralChainConfig.BlockConfirmations)),
	)

	configuredChainIds := make([]uint64, 0, len(chainConfigs))
	spokePoolClients := make(map[uint64]*across.SpokePoolClient)
	for _, c := range chainConfigs {
		chainID := *c.GeneralChainConfig.Id
		listener := events.NewListener(evm.NewConfirmedClient(clients[chainID], c.GeneralChainConfig.BlockConfirmations))
		spokePoolClients[chainID] = across.NewSpokePoolClient(chainID, c.SpokePool, c.DeploymentBlock, c.BlockRangeLimit, listener, hubPoolClient)
		configuredChainIds = append(configuredChainIds, chainID)
	}

	// the job passes its client order to the hub pool as the bundle chain id list
	chainIdList, err := dwConfig.BundleChainIds(configuredChainIds)
	if err != nil {
		return nil, err
	}
	spokeClients := make(map[uint64]dataworker.SpokePoolClient)
	eventClients := make([]jobs.EventClient, 0, len(chainIdList))
	for _, chainID := range chainIdList {
		spokeClients[chainID] = spokePoolClients[chainID]
		eventClients = append(eventClients, spokePoolClients[chainID])
	}

	var dwMetrics dataworker.Metrics
	var clientMetrics jobs.ClientMetrics = noopMetrics{}
	if m != nil {
		dwMetrics = m
		clientMetrics = m
	}
	dw := dataworker.NewDataworker(spokeClients, hubPoolClient, dwConfig.MaxRefundsPerLeaf, dwMetrics)
	return jobs.NewBundleJob(dw, eventClients, hubPoolClient, clientMetrics, bundleChn), nil
}

func Run() error {
	configuration, err := loadConfig()
	panicOnError(err)

	observability.ConfigureLogger(configuration.DataworkerConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	mp, err := observability.InitMetricProvider(context.Background(), configuration.DataworkerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataworkerMetrics, err := metrics.NewDataworkerMetrics(
		ctx,
		mp.Meter("dataworker-metric-provider"),
		configuration.DataworkerConfig.Env,
		configuration.DataworkerConfig.Id,
		Version)
	panicOnError(err)

	bundleChn := make(chan *dataworker.Bundle)
	bundleCache := cache.NewBundleCache(ctx, configuration.DataworkerConfig.BundleCacheTTL, bundleChn)

	bundleJob, err := newBundleJob(configuration, dataworkerMetrics, bundleChn)
	panicOnError(err)
	go bundleJob.Start(ctx, configuration.DataworkerConfig.BundleInterval)

	go health.StartHealthEndpoint(configuration.DataworkerConfig.HealthPort, bundleCache)

	bundleHandler := handlers.NewBundleHandler(bundleCache, configuration.Tokens, configuration.DataworkerConfig.HubChainID)
	go api.Serve(ctx, configuration.DataworkerConfig.ApiAddr, bundleHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started dataworker %s. Version: v%s", configuration.DataworkerConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

// BuildBundle builds the bundle following the latest proposed root bundle once, without
// serving it.
func BuildBundle(ctx context.Context) (*dataworker.Bundle, error) {
	configuration, err := loadConfig()
	if err != nil {
		return nil, err
	}

	observability.ConfigureLogger(configuration.DataworkerConfig.LogLevel, os.Stderr)

	bundleJob, err := newBundleJob(configuration, nil, nil)
	if err != nil {
		return nil, err
	}
	return bundleJob.Build(ctx)
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
