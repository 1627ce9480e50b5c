package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/codegen"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/deploy"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/service"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
)

type (
	// Builder is the contract service behind the handler.
	Builder interface {
		Catalog() ([]model.Feature, []model.BlockDescriptor)
		Toolbox(features []model.FeatureID) (catalog.ToolboxItem, []catalog.BlockDefinition, error)
		GenerateFromBlocks(ctx context.Context, contractName string, workspace []byte) (codegen.Result, error)
		RenderTemplate(ctx context.Context, id model.FeatureID, p templates.Params) (string, error)
		ComposeFeatures(ctx context.Context, ids []model.FeatureID, p templates.Params) (string, error)
		Validate(source string) (deploy.Report, error)
		Deploy(ctx context.Context, req service.DeployRequest) (model.Deployment, error)
		GetDeployment(ctx context.Context, address common.Address) (model.Deployment, error)
		ListDeployments(ctx context.Context, limit int) ([]model.Deployment, error)
	}
)
