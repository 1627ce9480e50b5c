package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/blockforge-backend/internal/clock"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/deploy"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 2 * time.Second
	// gasMarginPercent is added on top of the node's estimate.
	gasMarginPercent = 20
)

var (
	// ErrConstructorArgs is returned for contracts whose constructor takes arguments.
	ErrConstructorArgs = errors.New("constructor arguments are not supported")
	// ErrDeployReverted is returned when the creation transaction was mined with a failed status.
	ErrDeployReverted = errors.New("contract creation reverted")
)

// Deployer deploys contracts by sending signed contract-creation transactions.
type Deployer struct {
	compiler     Compiler
	backend      Backend
	network      model.Network
	metrics      DeployMetrics
	logger       *zap.Logger
	pollInterval time.Duration
	now          func() time.Time
}

// NewDeployer creates an RPC deployer. Contracts are compiled by compiler and sent through backend.
func NewDeployer(compiler Compiler, backend Backend, network model.Network, metrics DeployMetrics, logger *zap.Logger) *Deployer {
	return &Deployer{
		compiler:     compiler,
		backend:      backend,
		network:      network,
		metrics:      metrics,
		logger:       logger.With(zap.String("network", network.Name)),
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
}

// Deploy compiles source, sends the creation transaction signed by signer and waits for its receipt.
func (d *Deployer) Deploy(ctx context.Context, source, contractName string, signer Signer) (model.Deployment, error) {
	if err := d.compiler.Compile(ctx, source, contractName); err != nil {
		return model.Deployment{}, err
	}
	artifact, code, err := d.load(contractName)
	if err != nil {
		return model.Deployment{}, err
	}

	tx, err := d.send(ctx, signer, code)
	if err != nil {
		return model.Deployment{}, fmt.Errorf("deploy %s: %w", contractName, err)
	}
	address := crypto.CreateAddress(signer.Address(), tx.Nonce())
	d.logger.Info("creation transaction sent",
		zap.String("contract", contractName),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("address", address.Hex()),
	)

	receipt, err := d.waitReceipt(ctx, tx.Hash())
	if err != nil {
		return model.Deployment{}, fmt.Errorf("deploy %s: %w", contractName, err)
	}
	if receipt.ContractAddress != (common.Address{}) {
		address = receipt.ContractAddress
	}

	deployment := model.Deployment{
		ID:           uuid.New(),
		Network:      d.network.Name,
		ContractName: contractName,
		Address:      address,
		TxHash:       tx.Hash(),
		GasUsed:      receipt.GasUsed,
		ExplorerURL:  d.network.AddressURL(address.Hex()),
		Source:       source,
		ABI:          string(artifact.ABI),
		Deployer:     signer.Address(),
		Method:       model.DeployRPC,
		CreatedAt:    d.now().UTC(),
	}
	if receipt.BlockNumber != nil {
		deployment.BlockNumber = receipt.BlockNumber.Uint64()
	}

	d.logger.Info("contract deployed",
		zap.String("contract", contractName),
		zap.String("address", address.Hex()),
		zap.Uint64("block", deployment.BlockNumber),
		zap.Uint64("gas_used", deployment.GasUsed),
	)
	return deployment, nil
}

func (d *Deployer) load(contractName string) (deploy.Artifact, []byte, error) {
	artifact, err := deploy.LoadArtifact(d.compiler.Dir(), contractName)
	if err != nil {
		return deploy.Artifact{}, nil, err
	}
	parsed, err := artifact.ParsedABI()
	if err != nil {
		return deploy.Artifact{}, nil, err
	}
	if len(parsed.Constructor.Inputs) > 0 {
		return deploy.Artifact{}, nil, fmt.Errorf("%s: %w", contractName, ErrConstructorArgs)
	}
	code, err := artifact.Code()
	if err != nil {
		return deploy.Artifact{}, nil, fmt.Errorf("%s: %w", contractName, err)
	}
	return artifact, code, nil
}

func (d *Deployer) send(ctx context.Context, signer Signer, code []byte) (signed *types.Transaction, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("send", err, started)
	}()

	chainID, err := d.chainID(ctx)
	if err != nil {
		return nil, err
	}
	from := signer.Address()
	nonce, err := d.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := d.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	gas, err := d.backend.EstimateGas(ctx, ethereum.CallMsg{From: from, GasPrice: gasPrice, Data: code})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * gasMarginPercent / 100

	signed, err = signer.SignTx(types.NewContractCreation(nonce, new(big.Int), gas, gasPrice, code), chainID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	if err := d.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}
	return signed, nil
}

func (d *Deployer) chainID(ctx context.Context) (*big.Int, error) {
	if d.network.ChainID != 0 {
		return new(big.Int).SetUint64(d.network.ChainID), nil
	}
	id, err := d.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	return id, nil
}

func (d *Deployer) waitReceipt(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("receipt", err, started)
	}()

	err = clock.Poll(ctx, d.pollInterval, func(ctx context.Context) (bool, error) {
		r, err := d.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if r.Status != types.ReceiptStatusSuccessful {
				return false, fmt.Errorf("tx %s: %w", hash.Hex(), ErrDeployReverted)
			}
			receipt = r
			return true, nil
		case errors.Is(err, ethereum.NotFound):
			d.logger.Debug("waiting for receipt", zap.String("tx", hash.Hex()))
			return false, nil
		default:
			return false, fmt.Errorf("receipt %s: %w", hash.Hex(), err)
		}
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
