package transport

import (
	"encoding/json"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/catalog"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/codegen"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
)

// Request and response messages of the builder service. They travel as JSON
// over both gRPC and REST.
type (
	HealthRequest  struct{}
	HealthResponse struct {
		Status string `json:"status"`
	}

	CatalogRequest  struct{}
	CatalogResponse struct {
		Features []FeatureInfo `json:"features"`
		Blocks   []BlockInfo   `json:"blocks"`
	}

	FeatureInfo struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Blocks      []string `json:"blocks"`
	}

	BlockInfo struct {
		Type    string    `json:"type"`
		Message string    `json:"message"`
		Args    []ArgInfo `json:"args,omitempty"`
		Colour  string    `json:"colour"`
		Tooltip string    `json:"tooltip"`
		Feature string    `json:"feature,omitempty"`
	}

	ArgInfo struct {
		Kind    string `json:"kind"`
		Name    string `json:"name"`
		Default string `json:"default,omitempty"`
		Check   string `json:"check,omitempty"`
	}

	ToolboxRequest struct {
		Features []string `json:"features"`
	}
	ToolboxResponse struct {
		Toolbox     catalog.ToolboxItem       `json:"toolbox"`
		Definitions []catalog.BlockDefinition `json:"definitions"`
	}

	GenerateRequest struct {
		ContractName string          `json:"contract_name"`
		Workspace    json.RawMessage `json:"workspace"`
	}
	GenerateResponse struct {
		Source      string               `json:"source"`
		Diagnostics []codegen.Diagnostic `json:"diagnostics"`
		Features    []string             `json:"features"`
		Blocks      int                  `json:"blocks"`
	}

	TemplateRequest struct {
		Template string           `json:"template"`
		Params   templates.Params `json:"params"`
	}
	ComposeRequest struct {
		Features []string         `json:"features"`
		Params   templates.Params `json:"params"`
	}
	SourceResponse struct {
		Source string `json:"source"`
	}

	ValidateRequest struct {
		Source string `json:"source"`
	}
	ValidateResponse struct {
		ContractName string `json:"contract_name"`
		GasEstimate  uint64 `json:"gas_estimate"`
		Lines        int    `json:"lines"`
		Functions    int    `json:"functions"`
	}

	DeployRequest struct {
		Source       string `json:"source"`
		ContractName string `json:"contract_name,omitempty"`
		Method       string `json:"method,omitempty"`
		Account      string `json:"account,omitempty"`
	}
	DeploymentResponse struct {
		Deployment DeploymentInfo `json:"deployment"`
	}

	GetDeploymentRequest struct {
		Address string `json:"address"`
	}
	ListDeploymentsRequest struct {
		Limit int `json:"limit"`
	}
	ListDeploymentsResponse struct {
		Deployments []DeploymentInfo `json:"deployments"`
	}

	DeploymentInfo struct {
		ID           string    `json:"id"`
		Network      string    `json:"network"`
		ContractName string    `json:"contract_name"`
		Address      string    `json:"address"`
		TxHash       string    `json:"tx_hash,omitempty"`
		BlockNumber  uint64    `json:"block_number,omitempty"`
		GasUsed      uint64    `json:"gas_used,omitempty"`
		ExplorerURL  string    `json:"explorer_url,omitempty"`
		Source       string    `json:"source,omitempty"`
		ABI          string    `json:"abi,omitempty"`
		Deployer     string    `json:"deployer,omitempty"`
		Method       string    `json:"method"`
		CreatedAt    time.Time `json:"created_at"`
	}
)

func featureInfo(f model.Feature) FeatureInfo {
	blocks := make([]string, 0, len(f.Blocks))
	for _, b := range f.Blocks {
		blocks = append(blocks, string(b.Type))
	}
	return FeatureInfo{
		ID:          string(f.ID),
		Name:        f.Name,
		Description: f.Description,
		Category:    string(f.Category),
		Blocks:      blocks,
	}
}

func blockInfo(b model.BlockDescriptor) BlockInfo {
	args := make([]ArgInfo, 0, len(b.Args))
	for _, a := range b.Args {
		args = append(args, ArgInfo{Kind: string(a.Kind), Name: a.Name, Default: a.Default, Check: a.Check})
	}
	return BlockInfo{
		Type:    string(b.Type),
		Message: b.Message,
		Args:    args,
		Colour:  b.Colour,
		Tooltip: b.Tooltip,
		Feature: string(b.Feature),
	}
}

func deploymentInfo(d model.Deployment) DeploymentInfo {
	info := DeploymentInfo{
		ID:           d.ID.String(),
		Network:      d.Network,
		ContractName: d.ContractName,
		Address:      d.Address.Hex(),
		BlockNumber:  d.BlockNumber,
		GasUsed:      d.GasUsed,
		ExplorerURL:  d.ExplorerURL,
		Source:       d.Source,
		ABI:          d.ABI,
		Method:       string(d.Method),
		CreatedAt:    d.CreatedAt,
	}
	if d.TxHash != (common.Hash{}) {
		info.TxHash = d.TxHash.Hex()
	}
	if d.Deployer != (common.Address{}) {
		info.Deployer = d.Deployer.Hex()
	}
	return info
}

func featureIDs(ids []string) []model.FeatureID {
	out := make([]model.FeatureID, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.FeatureID(id))
	}
	return out
}
