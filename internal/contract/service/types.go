package service

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/evm"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/wallet"
)

type (
	// Registry persists deployment records.
	Registry interface {
		InsertDeployment(ctx context.Context, d model.Deployment) error
		DeploymentByAddress(ctx context.Context, address common.Address) (model.Deployment, error)
		ListDeployments(ctx context.Context, limit int) ([]model.Deployment, error)
	}

	// EventStore writes generation events in batches.
	EventStore interface {
		InsertGenerationEvents(ctx context.Context, events []model.GenerationEvent) error
	}

	// EventRecorder accepts generation events without blocking.
	EventRecorder interface {
		Record(event model.GenerationEvent)
	}

	// HardhatDeployer deploys through the Hardhat CLI.
	HardhatDeployer interface {
		Deploy(ctx context.Context, source, contractName string) (model.Deployment, error)
	}

	// RPCDeployer deploys by sending a signed transaction.
	RPCDeployer interface {
		Deploy(ctx context.Context, source, contractName string, signer evm.Signer) (model.Deployment, error)
	}

	// Wallet resolves accounts and signers.
	Wallet interface {
		Default(ctx context.Context) (model.Account, error)
		Lookup(ctx context.Context, address common.Address) (model.Account, error)
		SignerFor(account model.Account) (wallet.Signer, error)
	}

	// GeneratorMetrics records generation outcomes.
	GeneratorMetrics interface {
		ObserveGenerate(kind string, err error, started time.Time)
		ObserveDiagnostic(severity string)
	}

	// EventSinkMetrics records event sink flushes.
	EventSinkMetrics interface {
		ObserveFlush(err error, events int, started time.Time)
		ObserveDropped()
	}
)
