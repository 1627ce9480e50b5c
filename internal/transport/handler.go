package transport

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/deploy"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/evm"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/service"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/wallet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthy = "healthy"

// BuilderHandler implements BuilderServer on top of the contract service.
type BuilderHandler struct {
	builder Builder
}

// NewBuilderHandler returns a BuilderHandler instance.
func NewBuilderHandler(builder Builder) *BuilderHandler {
	return &BuilderHandler{builder: builder}
}

// Health reports server health.
func (h *BuilderHandler) Health(_ context.Context, _ *HealthRequest) (*HealthResponse, error) {
	return &HealthResponse{Status: healthy}, nil
}

func (h *BuilderHandler) Catalog(_ context.Context, _ *CatalogRequest) (*CatalogResponse, error) {
	features, blocks := h.builder.Catalog()
	resp := &CatalogResponse{
		Features: make([]FeatureInfo, 0, len(features)),
		Blocks:   make([]BlockInfo, 0, len(blocks)),
	}
	for _, f := range features {
		resp.Features = append(resp.Features, featureInfo(f))
	}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, blockInfo(b))
	}
	return resp, nil
}

func (h *BuilderHandler) Toolbox(_ context.Context, req *ToolboxRequest) (*ToolboxResponse, error) {
	toolbox, defs, err := h.builder.Toolbox(featureIDs(req.Features))
	if err != nil {
		return nil, statusError(err)
	}
	return &ToolboxResponse{Toolbox: toolbox, Definitions: defs}, nil
}

func (h *BuilderHandler) GenerateFromBlocks(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if len(req.Workspace) == 0 {
		return nil, status.Error(codes.InvalidArgument, "workspace is required")
	}
	res, err := h.builder.GenerateFromBlocks(ctx, req.ContractName, req.Workspace)
	if err != nil {
		return nil, statusError(err)
	}
	features := make([]string, 0, len(res.Features))
	for _, f := range res.Features {
		features = append(features, string(f))
	}
	return &GenerateResponse{
		Source:      res.Source,
		Diagnostics: res.Diagnostics,
		Features:    features,
		Blocks:      res.Blocks,
	}, nil
}

func (h *BuilderHandler) RenderTemplate(ctx context.Context, req *TemplateRequest) (*SourceResponse, error) {
	source, err := h.builder.RenderTemplate(ctx, model.FeatureID(req.Template), req.Params)
	if err != nil {
		return nil, statusError(err)
	}
	return &SourceResponse{Source: source}, nil
}

func (h *BuilderHandler) ComposeFeatures(ctx context.Context, req *ComposeRequest) (*SourceResponse, error) {
	source, err := h.builder.ComposeFeatures(ctx, featureIDs(req.Features), req.Params)
	if err != nil {
		return nil, statusError(err)
	}
	return &SourceResponse{Source: source}, nil
}

func (h *BuilderHandler) Validate(_ context.Context, req *ValidateRequest) (*ValidateResponse, error) {
	report, err := h.builder.Validate(req.Source)
	if err != nil {
		return nil, statusError(err)
	}
	return &ValidateResponse{
		ContractName: report.ContractName,
		GasEstimate:  report.GasEstimate,
		Lines:        report.Lines,
		Functions:    report.Functions,
	}, nil
}

func (h *BuilderHandler) Deploy(ctx context.Context, req *DeployRequest) (*DeploymentResponse, error) {
	in := service.DeployRequest{
		Source:       req.Source,
		ContractName: req.ContractName,
		Method:       model.DeployMethod(strings.ToLower(req.Method)),
	}
	if req.Account != "" {
		account, err := parseAddress(req.Account)
		if err != nil {
			return nil, err
		}
		in.Account = account
	}
	d, err := h.builder.Deploy(ctx, in)
	if err != nil {
		return nil, statusError(err)
	}
	return &DeploymentResponse{Deployment: deploymentInfo(d)}, nil
}

func (h *BuilderHandler) GetDeployment(ctx context.Context, req *GetDeploymentRequest) (*DeploymentResponse, error) {
	address, err := parseAddress(req.Address)
	if err != nil {
		return nil, err
	}
	d, err := h.builder.GetDeployment(ctx, address)
	if err != nil {
		return nil, statusError(err)
	}
	return &DeploymentResponse{Deployment: deploymentInfo(d)}, nil
}

func (h *BuilderHandler) ListDeployments(ctx context.Context, req *ListDeploymentsRequest) (*ListDeploymentsResponse, error) {
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}
	list, err := h.builder.ListDeployments(ctx, req.Limit)
	if err != nil {
		return nil, statusError(err)
	}
	resp := &ListDeploymentsResponse{Deployments: make([]DeploymentInfo, 0, len(list))}
	for _, d := range list {
		resp.Deployments = append(resp.Deployments, deploymentInfo(d))
	}
	return resp, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// statusError converts a service error into a gRPC status error.
func statusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(errorCode(err), err.Error())
}

func errorCode(err error) codes.Code {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, evm.ErrConstructorArgs),
		errors.Is(err, deploy.ErrEmptySource),
		errors.Is(err, deploy.ErrMissingPragma),
		errors.Is(err, deploy.ErrMissingContract),
		errors.Is(err, deploy.ErrInvalidContractName),
		errors.Is(err, deploy.ErrContractNotDeclared):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrUnavailable),
		errors.Is(err, wallet.ErrNoExtensions),
		errors.Is(err, wallet.ErrNoAccounts):
		return codes.FailedPrecondition
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, wallet.ErrUnknownAccount),
		errors.Is(err, wallet.ErrUnknownExtension):
		return codes.NotFound
	case errors.Is(err, evm.ErrDeployReverted):
		return codes.Aborted
	default:
		return codes.Internal
	}
}
