// Package service implements the contract builder operations shared by the API and the CLI.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/codegen"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/deploy"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
	"github.com/goodnatureofminers/blockforge-backend/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps are the collaborators of a Service. Catalog, Generator, Bank and Metrics are
// required; the rest may be nil, which disables the operations that need them.
type Deps struct {
	Catalog   *catalog.Catalog
	Generator *codegen.Generator
	Bank      *templates.Bank
	Metrics   GeneratorMetrics

	Hardhat  HardhatDeployer
	RPC      RPCDeployer
	Wallet   Wallet
	Registry Registry
	Events   EventRecorder
}

// Service is the contract builder.
type Service struct {
	deps   Deps
	logger *zap.Logger
	now    func() time.Time
}

// New creates a Service.
func New(deps Deps, logger *zap.Logger) *Service {
	return &Service{
		deps:   deps,
		logger: logger.Named("builder"),
		now:    time.Now,
	}
}

// Catalog returns every feature and block descriptor.
func (s *Service) Catalog() ([]model.Feature, []model.BlockDescriptor) {
	return s.deps.Catalog.Features(), s.deps.Catalog.Blocks()
}

// Toolbox renders the editor toolbox and block definitions for a feature selection.
func (s *Service) Toolbox(features []model.FeatureID) (catalog.ToolboxItem, []catalog.BlockDefinition, error) {
	toolbox, err := s.deps.Catalog.Toolbox(features)
	if err != nil {
		return catalog.ToolboxItem{}, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	defs, err := s.deps.Catalog.Definitions(features)
	if err != nil {
		return catalog.ToolboxItem{}, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return toolbox, defs, nil
}

// GenerateFromBlocks decodes a serialized editor workspace and generates its contract.
func (s *Service) GenerateFromBlocks(_ context.Context, contractName string, workspace []byte) (res codegen.Result, err error) {
	started := time.Now()
	defer func() {
		s.deps.Metrics.ObserveGenerate(string(model.GenerationBlocks), err, started)
	}()

	if contractName == "" {
		contractName = codegen.DefaultContractName
	}
	blocks, err := codegen.DecodeWorkspace(workspace)
	if err != nil {
		return codegen.Result{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	res = s.deps.Generator.Generate(contractName, blocks)
	for _, d := range res.Diagnostics {
		s.deps.Metrics.ObserveDiagnostic(string(d.Severity))
	}

	features := make([]string, 0, len(res.Features))
	for _, f := range res.Features {
		features = append(features, string(f))
	}
	s.record(model.GenerationBlocks, contractName, features, res.Blocks, len(res.Diagnostics), res.Source)

	s.logger.Debug("generated from blocks",
		zap.String("contract", contractName),
		zap.Int("blocks", res.Blocks),
		zap.Int("diagnostics", len(res.Diagnostics)),
	)
	return res, nil
}

// RenderTemplate renders the bank template of one feature.
func (s *Service) RenderTemplate(_ context.Context, id model.FeatureID, p templates.Params) (source string, err error) {
	started := time.Now()
	defer func() {
		s.deps.Metrics.ObserveGenerate(string(model.GenerationTemplate), err, started)
	}()

	source, err = s.deps.Bank.Render(id, p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	s.record(model.GenerationTemplate, p.ContractName, []string{string(id)}, 0, 0, source)
	return source, nil
}

// ComposeFeatures builds one contract from a feature selection.
func (s *Service) ComposeFeatures(_ context.Context, ids []model.FeatureID, p templates.Params) (source string, err error) {
	started := time.Now()
	defer func() {
		s.deps.Metrics.ObserveGenerate(string(model.GenerationCompose), err, started)
	}()

	source, err = s.deps.Bank.Compose(ids, p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	features := make([]string, 0, len(ids))
	for _, id := range ids {
		features = append(features, string(id))
	}
	s.record(model.GenerationCompose, p.ContractName, features, 0, 0, source)
	return source, nil
}

// Validate runs the pre-flight checks on source.
func (s *Service) Validate(source string) (deploy.Report, error) {
	report, err := deploy.Preflight(source)
	if err != nil {
		return deploy.Report{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return report, nil
}

// GetDeployment returns the latest deployment at address.
func (s *Service) GetDeployment(ctx context.Context, address common.Address) (model.Deployment, error) {
	if s.deps.Registry == nil {
		return model.Deployment{}, fmt.Errorf("deployment registry: %w", ErrUnavailable)
	}
	return s.deps.Registry.DeploymentByAddress(ctx, address)
}

// ListDeployments returns recent deployments, newest first.
func (s *Service) ListDeployments(ctx context.Context, limit int) ([]model.Deployment, error) {
	if s.deps.Registry == nil {
		return nil, fmt.Errorf("deployment registry: %w", ErrUnavailable)
	}
	return s.deps.Registry.ListDeployments(ctx, limit)
}

func (s *Service) record(kind model.GenerationKind, contractName string, features []string, blocks, diagnostics int, source string) {
	if s.deps.Events == nil {
		return
	}
	event := model.GenerationEvent{
		ID:           uuid.New(),
		Kind:         kind,
		ContractName: contractName,
		Features:     features,
		CreatedAt:    s.now().UTC(),
	}
	var err error
	if event.BlockCount, err = safe.Uint32(blocks); err != nil {
		s.logger.Warn("block count out of range", zap.Error(err))
	}
	if event.DiagnosticCount, err = safe.Uint32(diagnostics); err != nil {
		s.logger.Warn("diagnostic count out of range", zap.Error(err))
	}
	if event.SourceBytes, err = safe.Uint32(len(source)); err != nil {
		s.logger.Warn("source size out of range", zap.Error(err))
	}
	s.deps.Events.Record(event)
}
