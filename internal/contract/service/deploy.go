package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"go.uber.org/zap"
)

// DeployRequest describes a deployment.
type DeployRequest struct {
	Source string
	// ContractName defaults to the first contract declared in Source.
	ContractName string
	// Method defaults to DeployHardhat.
	Method model.DeployMethod
	// Account selects the signing account for DeployRPC; zero means the wallet default.
	Account common.Address
}

// Deploy validates, deploys and registers a contract. A registry failure is
// logged and does not fail an already successful deployment.
func (s *Service) Deploy(ctx context.Context, req DeployRequest) (model.Deployment, error) {
	report, err := s.Validate(req.Source)
	if err != nil {
		return model.Deployment{}, err
	}
	if req.ContractName == "" {
		req.ContractName = report.ContractName
	}
	if req.Method == "" {
		req.Method = model.DeployHardhat
	}

	logger := s.logger.With(zap.String("contract", req.ContractName), zap.String("method", string(req.Method)))
	logger.Info("deploying contract", zap.Uint64("gas_estimate", report.GasEstimate))

	var d model.Deployment
	switch req.Method {
	case model.DeployHardhat:
		if s.deps.Hardhat == nil {
			return model.Deployment{}, fmt.Errorf("hardhat deployer: %w", ErrUnavailable)
		}
		d, err = s.deps.Hardhat.Deploy(ctx, req.Source, req.ContractName)
	case model.DeployRPC:
		d, err = s.deployRPC(ctx, req)
	default:
		return model.Deployment{}, fmt.Errorf("%w: deploy method %q", ErrInvalidArgument, req.Method)
	}
	if err != nil {
		logger.Error("deployment failed", zap.Error(err))
		return model.Deployment{}, err
	}

	if s.deps.Registry != nil {
		if err := s.deps.Registry.InsertDeployment(ctx, d); err != nil {
			logger.Error("deployment not registered", zap.String("address", d.Address.Hex()), zap.Error(err))
		}
	}
	return d, nil
}

func (s *Service) deployRPC(ctx context.Context, req DeployRequest) (model.Deployment, error) {
	if s.deps.RPC == nil || s.deps.Wallet == nil {
		return model.Deployment{}, fmt.Errorf("rpc deployer: %w", ErrUnavailable)
	}

	var (
		account model.Account
		err     error
	)
	if req.Account == (common.Address{}) {
		account, err = s.deps.Wallet.Default(ctx)
	} else {
		account, err = s.deps.Wallet.Lookup(ctx, req.Account)
	}
	if err != nil {
		return model.Deployment{}, fmt.Errorf("select account: %w", err)
	}

	signer, err := s.deps.Wallet.SignerFor(account)
	if err != nil {
		return model.Deployment{}, fmt.Errorf("signer for %s: %w", account.Address.Hex(), err)
	}
	return s.deps.RPC.Deploy(ctx, req.Source, req.ContractName, signer)
}
