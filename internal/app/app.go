// Package app assembles the contract builder from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/codegen"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/deploy"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/evm"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	chrepo "github.com/goodnatureofminers/blockforge-backend/internal/contract/repository/clickhouse"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/service"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/wallet"
	"github.com/goodnatureofminers/blockforge-backend/internal/metrics"
	"go.uber.org/zap"
)

// ErrUnknownNetwork is returned for a network name outside model.KnownNetworks.
var ErrUnknownNetwork = errors.New("unknown network")

// Config is shared by the forge binaries.
type Config struct {
	Network            string        `long:"network" env:"FORGE_NETWORK" description:"target network" default:"passetHub"`
	RPCURL             string        `long:"rpc-url" env:"FORGE_RPC_URL" description:"override the network JSON-RPC url"`
	HardhatDir         string        `long:"hardhat-dir" env:"FORGE_HARDHAT_DIR" description:"hardhat project directory" default:"hardhat"`
	PrivateKey         string        `long:"private-key" env:"PRIVATE_KEY" description:"hex private key of the deployer account"`
	KeystoreDir        string        `long:"keystore-dir" env:"FORGE_KEYSTORE_DIR" description:"go-ethereum keystore directory"`
	KeystorePassphrase string        `long:"keystore-passphrase" env:"FORGE_KEYSTORE_PASSPHRASE" description:"keystore passphrase"`
	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"FORGE_CLICKHOUSE_DSN" description:"clickhouse dsn, empty disables the registry"`
	EventFlushSize     int           `long:"event-flush-size" env:"FORGE_EVENT_FLUSH_SIZE" description:"generation events per batch" default:"100"`
	EventFlushInterval time.Duration `long:"event-flush-interval" env:"FORGE_EVENT_FLUSH_INTERVAL" description:"generation event flush interval" default:"5s"`
	EventFlushRPS      int           `long:"event-flush-rps" env:"FORGE_EVENT_FLUSH_RPS" description:"generation event flushes per second" default:"10"`
}

// App holds the assembled builder and the components the binaries use directly.
type App struct {
	Service *service.Service
	Wallet  *wallet.Connector
	Client  *evm.Client
	Network model.Network

	repo   *chrepo.Repository
	events *service.EventSink
	logger *zap.Logger
}

// New wires every component cfg enables. The registry and event sink are
// skipped without a ClickHouse DSN.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*App, error) {
	network, ok := model.NetworkByName(cfg.Network)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, cfg.Network)
	}
	if cfg.RPCURL != "" {
		network.RPCURL = cfg.RPCURL
	}
	logger = logger.With(zap.String("network", network.Name))

	connector, err := newWallet(cfg, logger)
	if err != nil {
		return nil, err
	}

	client, err := evm.Dial(ctx, network.RPCURL, metrics.NewRPCClient(network.Name))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", network.RPCURL, err)
	}

	a := &App{
		Wallet:  connector,
		Client:  client,
		Network: network,
		logger:  logger,
	}

	hardhat := deploy.NewHardhat(cfg.HardhatDir, network, deploy.ExecRunner{},
		metrics.NewDeployer(network.Name, string(model.DeployHardhat)), logger)
	deps := generationDeps()
	deps.Hardhat = hardhat
	deps.RPC = evm.NewDeployer(hardhat, client, network,
		metrics.NewDeployer(network.Name, string(model.DeployRPC)), logger)
	deps.Wallet = connector

	if cfg.ClickhouseDSN != "" {
		repo, err := chrepo.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("open clickhouse: %w", err)
		}
		a.repo = repo
		a.events = service.NewEventSink(repo, service.EventSinkConfig{
			FlushSize:     cfg.EventFlushSize,
			FlushInterval: cfg.EventFlushInterval,
			FlushRPS:      cfg.EventFlushRPS,
		}, metrics.NewEventSink(), logger)
		deps.Registry = repo
		deps.Events = a.events
	} else {
		logger.Info("clickhouse dsn not set, deployment registry disabled")
	}

	a.Service = service.New(deps, logger)
	return a, nil
}

// NewOffline assembles the generation side only: catalog, generator, template
// bank and validation. It reads no wallet, network or registry settings, and
// its deploy and registry calls fail with service.ErrUnavailable.
func NewOffline(logger *zap.Logger) *App {
	return &App{
		Service: service.New(generationDeps(), logger),
		logger:  logger,
	}
}

func generationDeps() service.Deps {
	cat := catalog.Default()
	return service.Deps{
		Catalog:   cat,
		Generator: codegen.New(codegen.DefaultRules(), cat),
		Bank:      templates.DefaultBank(),
		Metrics:   metrics.NewGenerator(),
	}
}

func newWallet(cfg Config, logger *zap.Logger) (*wallet.Connector, error) {
	var exts []wallet.Extension
	if cfg.PrivateKey != "" {
		ext, err := wallet.NewPrivateKeyExtension("env", cfg.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("private key wallet: %w", err)
		}
		exts = append(exts, ext)
	}
	if cfg.KeystoreDir != "" {
		exts = append(exts, wallet.NewKeystoreExtension("keystore", wallet.OpenKeystore(cfg.KeystoreDir), cfg.KeystorePassphrase))
	}
	return wallet.NewConnector(logger, exts...), nil
}

// Start runs the background event sink, if any.
func (a *App) Start(ctx context.Context) {
	if a.events != nil {
		a.events.Start(ctx)
	}
}

// Close flushes pending events and releases connections.
func (a *App) Close() {
	if a.events != nil {
		a.events.Stop()
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.logger.Error("close clickhouse", zap.Error(err))
		}
	}
	if a.Client != nil {
		a.Client.Close()
	}
}
