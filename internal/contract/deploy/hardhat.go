// Package deploy compiles and deploys contracts through the Hardhat CLI.
package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ignitionModule = `const { buildModule } = require('@nomicfoundation/hardhat-ignition/modules');

module.exports = buildModule('%[1]sModule', (m) => {
  const contract = m.contract('%[1]s');
  return { contract };
});
`

// Hardhat deploys contracts by shelling out to a Hardhat project.
type Hardhat struct {
	dir     string
	network model.Network
	runner  Runner
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewHardhat creates a deployer for the Hardhat project in dir.
func NewHardhat(dir string, network model.Network, runner Runner, metrics Metrics, logger *zap.Logger) *Hardhat {
	return &Hardhat{
		dir:     dir,
		network: network,
		runner:  runner,
		metrics: metrics,
		logger:  logger.With(zap.String("network", network.Name)),
		now:     time.Now,
	}
}

// Dir returns the Hardhat project directory.
func (h *Hardhat) Dir() string { return h.dir }

// Compile writes source to contracts/<contractName>.sol and runs the Hardhat compiler.
func (h *Hardhat) Compile(ctx context.Context, source, contractName string) (err error) {
	if err := h.validate(source, contractName); err != nil {
		return err
	}

	started := time.Now()
	defer func() {
		h.metrics.Observe("compile", err, started)
	}()

	path := filepath.Join(h.dir, "contracts", contractName+".sol")
	if err := writeFile(path, source); err != nil {
		return err
	}
	h.logger.Info("compiling contract", zap.String("contract", contractName), zap.String("path", path))
	if _, err := h.runner.Run(ctx, h.dir, "npx", "hardhat", "compile"); err != nil {
		return fmt.Errorf("compile %s: %w", contractName, err)
	}
	return nil
}

// Deploy compiles source and deploys contractName with Hardhat Ignition.
// A zero exit without an address in the output is reported as ErrAddressNotFound.
func (h *Hardhat) Deploy(ctx context.Context, source, contractName string) (model.Deployment, error) {
	if err := h.Compile(ctx, source, contractName); err != nil {
		return model.Deployment{}, err
	}

	address, err := h.ignition(ctx, contractName)
	if err != nil {
		return model.Deployment{}, err
	}

	d := model.Deployment{
		ID:           uuid.New(),
		Network:      h.network.Name,
		ContractName: contractName,
		Address:      address,
		ExplorerURL:  h.network.AddressURL(address.Hex()),
		Source:       source,
		Method:       model.DeployHardhat,
		CreatedAt:    h.now().UTC(),
	}
	if a, err := LoadArtifact(h.dir, contractName); err != nil {
		h.logger.Warn("artifact not available, deployment recorded without abi", zap.String("contract", contractName), zap.Error(err))
	} else {
		d.ABI = string(a.ABI)
	}

	h.logger.Info("contract deployed",
		zap.String("contract", contractName),
		zap.String("address", address.Hex()),
		zap.String("explorer", d.ExplorerURL),
	)
	return d, nil
}

func (h *Hardhat) ignition(ctx context.Context, contractName string) (address common.Address, err error) {
	started := time.Now()
	defer func() {
		h.metrics.Observe("deploy", err, started)
	}()

	module := filepath.Join("ignition", "modules", contractName+"Module.js")
	if err := writeFile(filepath.Join(h.dir, module), fmt.Sprintf(ignitionModule, contractName)); err != nil {
		return address, err
	}

	h.logger.Info("deploying contract", zap.String("contract", contractName), zap.String("module", module))
	out, err := h.runner.Run(ctx, h.dir, "npx", "hardhat", "ignition", "deploy", "./"+filepath.ToSlash(module), "--network", h.network.Name)
	if err != nil {
		return address, fmt.Errorf("deploy %s: %w", contractName, err)
	}

	found, ok := ExtractAddress(string(out))
	if !ok {
		return address, fmt.Errorf("deploy %s: %w", contractName, ErrAddressNotFound)
	}
	return found, nil
}

func (h *Hardhat) validate(source, contractName string) (err error) {
	started := time.Now()
	defer func() {
		h.metrics.Observe("validate", err, started)
	}()
	return checkContract(source, contractName)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
