package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/google/uuid"
)

// DefaultListLimit bounds ListDeployments when no positive limit is given.
const DefaultListLimit = 50

const (
	deploymentColumns = `
	id,
	network,
	contract_name,
	address,
	tx_hash,
	block_number,
	gas_used,
	explorer_url,
	source,
	abi,
	deployer,
	method,
	created_at`

	deploymentByAddressQuery = `
SELECT` + deploymentColumns + `
FROM contract_deployments
WHERE lower(address) = ?
ORDER BY created_at DESC
LIMIT 1`

	listDeploymentsQuery = `
SELECT` + deploymentColumns + `
FROM contract_deployments
ORDER BY created_at DESC
LIMIT ?`
)

// DeploymentByAddress returns the latest deployment at address or model.ErrNotFound.
func (r *Repository) DeploymentByAddress(ctx context.Context, address common.Address) (d model.Deployment, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("deployment_by_address", err, start)
	}()

	rows, err := r.conn.Query(ctx, deploymentByAddressQuery, strings.ToLower(address.Hex()))
	if err != nil {
		return d, fmt.Errorf("query deployment by address: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return d, fmt.Errorf("iterate deployment by address: %w", err)
		}
		err = fmt.Errorf("%s: %w", address.Hex(), model.ErrNotFound)
		return d, err
	}
	if d, err = scanDeployment(rows); err != nil {
		return d, err
	}
	if err = rows.Err(); err != nil {
		return model.Deployment{}, fmt.Errorf("iterate deployment by address: %w", err)
	}
	return d, nil
}

// ListDeployments returns the most recent deployments, newest first.
func (r *Repository) ListDeployments(ctx context.Context, limit int) (list []model.Deployment, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_deployments", err, start)
	}()

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.conn.Query(ctx, listDeploymentsQuery, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query deployments: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		d, scanErr := scanDeployment(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		list = append(list, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deployments: %w", err)
	}
	return list, nil
}

func scanDeployment(rows Rows) (model.Deployment, error) {
	var (
		d                         model.Deployment
		id                        uuid.UUID
		address, txHash, deployer string
		method                    string
	)
	if err := rows.Scan(
		&id,
		&d.Network,
		&d.ContractName,
		&address,
		&txHash,
		&d.BlockNumber,
		&d.GasUsed,
		&d.ExplorerURL,
		&d.Source,
		&d.ABI,
		&deployer,
		&method,
		&d.CreatedAt,
	); err != nil {
		return model.Deployment{}, fmt.Errorf("scan deployment: %w", err)
	}

	d.ID = id
	d.Address = common.HexToAddress(address)
	if txHash != "" {
		d.TxHash = common.HexToHash(txHash)
	}
	if deployer != "" {
		d.Deployer = common.HexToAddress(deployer)
	}
	d.Method = model.DeployMethod(method)
	d.CreatedAt = d.CreatedAt.UTC()
	return d, nil
}
